/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: synth_test.go
Description: Unit tests for the value synthesizer. Tests preservation sampling
probabilities, structural recursion into objects and arrays, field-name hint
propagation, and fail-fast behavior on malformed schema trees.
*/

package synth_test

import (
	"math/rand"
	"testing"

	"github.com/kleascm/akaylee-mocksmith/pkg/schema"
	"github.com/kleascm/akaylee-mocksmith/pkg/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingProducer records the hints it was asked about and returns canned
// values per kind
type recordingProducer struct {
	hints []string
}

func (p *recordingProducer) Produce(fieldName string, kind schema.Kind) interface{} {
	p.hints = append(p.hints, fieldName)
	switch kind {
	case schema.KindString:
		return "fabricated"
	case schema.KindNumber:
		return 42.5
	case schema.KindBoolean:
		return true
	default:
		return nil
	}
}

func newTestSynthesizer(producer synth.Producer, opts ...synth.Option) *synth.Synthesizer {
	opts = append([]synth.Option{synth.WithRand(rand.New(rand.NewSource(1)))}, opts...)
	return synth.NewSynthesizer(producer, opts...)
}

func TestSynthesizeAlwaysPreservesAtProbabilityOne(t *testing.T) {
	node := &schema.Node{
		Kind:             schema.KindString,
		PreserveOriginal: true,
		OriginalValues:   []interface{}{"active", "pending"},
	}

	s := newTestSynthesizer(&recordingProducer{}, synth.WithPreserveProbability(1.0))
	for i := 0; i < 50; i++ {
		value, err := s.Synthesize(node, "status")
		require.NoError(t, err)
		assert.Contains(t, node.OriginalValues, value)
	}
}

func TestSynthesizeNeverPreservesAtProbabilityZero(t *testing.T) {
	node := &schema.Node{
		Kind:             schema.KindString,
		PreserveOriginal: true,
		OriginalValues:   []interface{}{"active"},
	}

	s := newTestSynthesizer(&recordingProducer{}, synth.WithPreserveProbability(0.0))
	for i := 0; i < 20; i++ {
		value, err := s.Synthesize(node, "status")
		require.NoError(t, err)
		assert.Equal(t, "fabricated", value)
	}
}

func TestSynthesizePreservedWithoutPoolFallsBack(t *testing.T) {
	node := &schema.Node{Kind: schema.KindString, PreserveOriginal: true}

	s := newTestSynthesizer(&recordingProducer{}, synth.WithPreserveProbability(1.0))
	value, err := s.Synthesize(node, "status")
	require.NoError(t, err)
	assert.Equal(t, "fabricated", value)
}

func TestSynthesizeObjectRecursion(t *testing.T) {
	node := schema.NewObject()
	node.Properties["name"] = &schema.Node{Kind: schema.KindString}
	node.Properties["age"] = &schema.Node{Kind: schema.KindNumber, Integer: true}

	producer := &recordingProducer{}
	s := newTestSynthesizer(producer)
	value, err := s.Synthesize(node, "")
	require.NoError(t, err)

	obj, ok := value.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "fabricated", obj["name"])
	// Integral schema positions coerce fabricated floats to ints
	assert.Equal(t, 42, obj["age"])

	// Property names are passed through as producer hints
	assert.ElementsMatch(t, []string{"name", "age"}, producer.hints)
}

func TestSynthesizeArrayLengthBounds(t *testing.T) {
	node := schema.NewArray(&schema.Node{Kind: schema.KindString})

	s := newTestSynthesizer(&recordingProducer{}, synth.WithArrayBounds(2, 4))
	for i := 0; i < 20; i++ {
		value, err := s.Synthesize(node, "tags")
		require.NoError(t, err)

		list, ok := value.([]interface{})
		require.True(t, ok)
		assert.GreaterOrEqual(t, len(list), 2)
		assert.LessOrEqual(t, len(list), 4)
	}
}

func TestSynthesizeNullLeaf(t *testing.T) {
	s := newTestSynthesizer(&recordingProducer{})
	value, err := s.Synthesize(&schema.Node{Kind: schema.KindNull}, "eSite")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestSynthesizeMalformedObjectFailsFast(t *testing.T) {
	node := &schema.Node{Kind: schema.KindObject} // no properties map

	s := newTestSynthesizer(&recordingProducer{})
	_, err := s.Synthesize(node, "root")
	require.Error(t, err)

	var malformed *schema.SchemaMalformedError
	assert.ErrorAs(t, err, &malformed)
}

func TestSynthesizeMalformedArrayFailsFast(t *testing.T) {
	node := &schema.Node{Kind: schema.KindArray} // no item schema

	s := newTestSynthesizer(&recordingProducer{})
	_, err := s.Synthesize(node, "items")

	var malformed *schema.SchemaMalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestSynthesizeRecordsCount(t *testing.T) {
	node := schema.NewObject()
	node.Properties["name"] = &schema.Node{Kind: schema.KindString}

	s := newTestSynthesizer(&recordingProducer{})
	records, err := s.SynthesizeRecords(node, 7)
	require.NoError(t, err)
	assert.Len(t, records, 7)
}

func TestHeuristicProducerKinds(t *testing.T) {
	p := synth.NewHeuristicProducerWithRand(rand.New(rand.NewSource(1)))

	assert.IsType(t, "", p.Produce("firstName", schema.KindString))
	assert.IsType(t, false, p.Produce("isActive", schema.KindBoolean))
	assert.Nil(t, p.Produce("eSite", schema.KindNull))

	_, isFloat := p.Produce("totalAmount", schema.KindNumber).(float64)
	assert.True(t, isFloat)
}

func TestHeuristicProducerDateShape(t *testing.T) {
	p := synth.NewHeuristicProducerWithRand(rand.New(rand.NewSource(1)))

	value := p.Produce("startDate", schema.KindString)
	s, ok := value.(string)
	require.True(t, ok)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, s)
}

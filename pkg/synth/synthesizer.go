/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: synthesizer.go
Description: Value synthesizer for the Akaylee Mocksmith. Walks an annotated
structural schema and emits one concrete synthetic document, sampling preserved
fields from their observed value pools and delegating scalar fabrication to a
pluggable realistic value producer.
*/

package synth

import (
	"math/rand"
	"time"

	"github.com/kleascm/akaylee-mocksmith/pkg/schema"
)

// Producer fabricates a plausible scalar value for a field. Implementations
// key off heuristic matches on the field name; the producer is a capability
// boundary, not part of the core decision logic.
type Producer interface {
	Produce(fieldName string, kind schema.Kind) interface{}
}

// DefaultPreserveProbability is the chance a preserved field is sampled from
// its observed values instead of fabricated
const DefaultPreserveProbability = 0.7

// Synthesizer emits synthetic values for a structural schema
type Synthesizer struct {
	producer Producer
	prob     float64
	minItems int
	maxItems int
	rng      *rand.Rand
}

// Option configures a Synthesizer
type Option func(*Synthesizer)

// WithPreserveProbability sets the preserved-value sampling probability,
// clamped to [0, 1]
func WithPreserveProbability(p float64) Option {
	return func(s *Synthesizer) {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		s.prob = p
	}
}

// WithArrayBounds sets the inclusive bounds for synthesized array lengths
func WithArrayBounds(min, max int) Option {
	return func(s *Synthesizer) {
		if min < 0 {
			min = 0
		}
		if max < min {
			max = min
		}
		s.minItems = min
		s.maxItems = max
	}
}

// WithRand sets the random source, letting tests run deterministically
func WithRand(rng *rand.Rand) Option {
	return func(s *Synthesizer) { s.rng = rng }
}

// NewSynthesizer creates a synthesizer over the given producer
func NewSynthesizer(producer Producer, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		producer: producer,
		prob:     DefaultPreserveProbability,
		minItems: 1,
		maxItems: 5,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize produces one concrete value for the schema node. fieldName is
// the hint handed to the producer for leaf fabrication. A structurally
// inconsistent node fails fast with a SchemaMalformedError: that is a pipeline
// bug, not bad input data.
func (s *Synthesizer) Synthesize(node *schema.Node, fieldName string) (interface{}, error) {
	if node == nil {
		return nil, &schema.SchemaMalformedError{Path: fieldName, Reason: "nil node"}
	}

	if node.PreserveOriginal && len(node.OriginalValues) > 0 {
		if s.rng.Float64() < s.prob {
			return node.OriginalValues[s.rng.Intn(len(node.OriginalValues))], nil
		}
	}

	switch node.Kind {
	case schema.KindObject:
		if node.Properties == nil {
			return nil, &schema.SchemaMalformedError{Path: fieldName, Reason: "object node without properties"}
		}
		out := make(map[string]interface{}, len(node.Properties))
		for name, child := range node.Properties {
			value, err := s.Synthesize(child, name)
			if err != nil {
				return nil, err
			}
			out[name] = value
		}
		return out, nil

	case schema.KindArray:
		if node.Items == nil {
			return nil, &schema.SchemaMalformedError{Path: fieldName, Reason: "array node without item schema"}
		}
		length := s.minItems
		if s.maxItems > s.minItems {
			length += s.rng.Intn(s.maxItems - s.minItems + 1)
		}
		out := make([]interface{}, 0, length)
		for i := 0; i < length; i++ {
			value, err := s.Synthesize(node.Items, fieldName)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil

	case schema.KindNumber:
		value := s.producer.Produce(fieldName, node.Kind)
		if node.Integer {
			if f, ok := value.(float64); ok {
				return int(f), nil
			}
		}
		return value, nil

	case schema.KindString, schema.KindBoolean, schema.KindNull:
		return s.producer.Produce(fieldName, node.Kind), nil

	default:
		return nil, &schema.SchemaMalformedError{Path: fieldName, Reason: "unknown kind " + string(node.Kind)}
	}
}

// SynthesizeRecords produces count independent documents from the schema
func (s *Synthesizer) SynthesizeRecords(node *schema.Node, count int) ([]interface{}, error) {
	records := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		record, err := s.Synthesize(node, "")
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

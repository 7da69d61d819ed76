/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer_test.go
Description: Unit tests for the structure analyzer. Tests value classification,
heterogeneous array unification, empty-array placeholders, and depth guard
totality on pathologically deep inputs.
*/

package schema_test

import (
	"testing"

	"github.com/kleascm/akaylee-mocksmith/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeScalarClassification(t *testing.T) {
	assert.Equal(t, schema.KindNull, schema.Analyze(nil, schema.DefaultMaxDepth).Kind)
	assert.Equal(t, schema.KindBoolean, schema.Analyze(true, schema.DefaultMaxDepth).Kind)
	assert.Equal(t, schema.KindNumber, schema.Analyze(3.14, schema.DefaultMaxDepth).Kind)
	assert.Equal(t, schema.KindString, schema.Analyze("hello", schema.DefaultMaxDepth).Kind)
}

func TestAnalyzeIntegerFlag(t *testing.T) {
	assert.True(t, schema.Analyze(float64(42), schema.DefaultMaxDepth).Integer)
	assert.True(t, schema.Analyze(7, schema.DefaultMaxDepth).Integer)
	assert.False(t, schema.Analyze(3.5, schema.DefaultMaxDepth).Integer)
}

func TestAnalyzeObject(t *testing.T) {
	value := map[string]interface{}{
		"name":   "Alice",
		"age":    float64(25),
		"active": true,
	}

	node := schema.Analyze(value, schema.DefaultMaxDepth)
	require.Equal(t, schema.KindObject, node.Kind)
	require.Len(t, node.Properties, 3)
	assert.Equal(t, schema.KindString, node.Properties["name"].Kind)
	assert.Equal(t, schema.KindNumber, node.Properties["age"].Kind)
	assert.Equal(t, schema.KindBoolean, node.Properties["active"].Kind)
}

func TestAnalyzeArrayUnification(t *testing.T) {
	value := []interface{}{
		map[string]interface{}{"a": float64(1)},
		map[string]interface{}{"b": "x"},
	}

	node := schema.Analyze(value, schema.DefaultMaxDepth)
	require.Equal(t, schema.KindArray, node.Kind)
	require.NotNil(t, node.Items)
	require.Equal(t, schema.KindObject, node.Items.Kind)

	// Heterogeneous elements unify into one item schema covering all properties
	require.Contains(t, node.Items.Properties, "a")
	require.Contains(t, node.Items.Properties, "b")
	assert.Equal(t, schema.KindNumber, node.Items.Properties["a"].Kind)
	assert.Equal(t, schema.KindString, node.Items.Properties["b"].Kind)
}

func TestAnalyzeEmptyArrayPlaceholder(t *testing.T) {
	node := schema.Analyze([]interface{}{}, schema.DefaultMaxDepth)
	require.Equal(t, schema.KindArray, node.Kind)
	require.NotNil(t, node.Items)
	assert.Equal(t, schema.KindObject, node.Items.Kind)
	assert.Empty(t, node.Items.Properties)
}

func TestAnalyzeDepthGuardTotality(t *testing.T) {
	// Build a value nested 1000 levels deep
	var value interface{} = "leaf"
	for i := 0; i < 1000; i++ {
		value = map[string]interface{}{"next": value}
	}

	node := schema.Analyze(value, 10)
	require.NotNil(t, node)

	depth := 0
	for node.Kind == schema.KindObject {
		node = node.Properties["next"]
		require.NotNil(t, node)
		depth++
	}
	assert.Equal(t, schema.KindString, node.Kind)
	assert.LessOrEqual(t, depth, 10)
}

func TestAnalyzeDepthExhaustedCollapsesToString(t *testing.T) {
	value := map[string]interface{}{"a": map[string]interface{}{"b": float64(1)}}

	node := schema.Analyze(value, 1)
	require.Equal(t, schema.KindObject, node.Kind)
	assert.Equal(t, schema.KindString, node.Properties["a"].Kind)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, schema.KindNull, schema.KindOf(nil))
	assert.Equal(t, schema.KindBoolean, schema.KindOf(false))
	assert.Equal(t, schema.KindNumber, schema.KindOf(1.5))
	assert.Equal(t, schema.KindString, schema.KindOf("s"))
	assert.Equal(t, schema.KindArray, schema.KindOf([]interface{}{}))
	assert.Equal(t, schema.KindObject, schema.KindOf(map[string]interface{}{}))
}

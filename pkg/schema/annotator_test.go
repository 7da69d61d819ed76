/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: annotator_test.go
Description: Unit tests for the preservation annotator. Tests observed-value
collection with first-occurrence ordering, per-level value scoping, array
flattening, root-array annotation, and silent skipping of mismatched examples.
*/

package schema_test

import (
	"testing"

	"github.com/kleascm/akaylee-mocksmith/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inferForTest(t *testing.T, examples []interface{}, preserve schema.PreserveSet) *schema.Node {
	t.Helper()
	require.NotEmpty(t, examples)

	node := schema.Analyze(examples[0], schema.DefaultMaxDepth)
	for _, example := range examples[1:] {
		node = schema.Merge(node, schema.Analyze(example, schema.DefaultMaxDepth))
	}
	schema.Annotate(node, examples, preserve)
	return node
}

func TestAnnotatePreservationCorrectness(t *testing.T) {
	examples := []interface{}{
		map[string]interface{}{"status": "active"},
		map[string]interface{}{"status": "pending"},
		map[string]interface{}{"status": "active"},
	}

	node := inferForTest(t, examples, schema.NewPreserveSet("status"))
	status := node.Properties["status"]
	require.NotNil(t, status)
	assert.True(t, status.PreserveOriginal)
	// First-occurrence order, duplicates removed
	assert.Equal(t, []interface{}{"active", "pending"}, status.OriginalValues)
}

func TestAnnotateNestedScoping(t *testing.T) {
	examples := []interface{}{
		map[string]interface{}{
			"id":    "A",
			"child": map[string]interface{}{"id": "B"},
		},
	}

	node := inferForTest(t, examples, schema.NewPreserveSet("id"))

	outer := node.Properties["id"]
	require.True(t, outer.PreserveOriginal)
	assert.Equal(t, []interface{}{"A"}, outer.OriginalValues)

	inner := node.Properties["child"].Properties["id"]
	require.True(t, inner.PreserveOriginal)
	assert.Equal(t, []interface{}{"B"}, inner.OriginalValues)
}

func TestAnnotateArrayScoping(t *testing.T) {
	examples := []interface{}{
		map[string]interface{}{
			"items": []interface{}{
				map[string]interface{}{"status": "a"},
				map[string]interface{}{"status": "b"},
			},
		},
		map[string]interface{}{
			"items": []interface{}{
				map[string]interface{}{"status": "c"},
			},
		},
	}

	node := inferForTest(t, examples, schema.NewPreserveSet("status"))
	status := node.Properties["items"].Items.Properties["status"]
	require.True(t, status.PreserveOriginal)
	assert.Equal(t, []interface{}{"a", "b", "c"}, status.OriginalValues)
}

func TestAnnotateRootArray(t *testing.T) {
	examples := []interface{}{
		map[string]interface{}{"status": "x"},
		map[string]interface{}{"status": "y"},
	}

	node := schema.NewArray(schema.Analyze(examples[0], schema.DefaultMaxDepth))
	schema.Annotate(node, examples, schema.NewPreserveSet("status"))

	status := node.Items.Properties["status"]
	require.True(t, status.PreserveOriginal)
	assert.Equal(t, []interface{}{"x", "y"}, status.OriginalValues)
}

func TestAnnotateEmptyPoolStillPreserved(t *testing.T) {
	// A preserved property with no observed values at this level keeps the
	// flag but gets no value pool; synthesis falls back to fabrication
	node := schema.NewObject()
	node.Properties["status"] = &schema.Node{Kind: schema.KindString}

	examples := []interface{}{map[string]interface{}{"other": "x"}}
	schema.Annotate(node, examples, schema.NewPreserveSet("status"))

	status := node.Properties["status"]
	assert.True(t, status.PreserveOriginal)
	assert.Empty(t, status.OriginalValues)
}

func TestAnnotateSkipsMismatchedExamples(t *testing.T) {
	examples := []interface{}{
		map[string]interface{}{"child": map[string]interface{}{"status": "ok"}},
		map[string]interface{}{"child": "not-an-object"},
		"not-even-a-mapping",
	}

	node := inferForTest(t, examples, schema.NewPreserveSet("status"))
	child := node.Properties["child"]
	require.Equal(t, schema.KindObject, child.Kind)

	status := child.Properties["status"]
	require.True(t, status.PreserveOriginal)
	assert.Equal(t, []interface{}{"ok"}, status.OriginalValues)
}

func TestAnnotateCollectsNullValues(t *testing.T) {
	examples := []interface{}{
		map[string]interface{}{"paymentNo": nil},
		map[string]interface{}{"paymentNo": "7"},
	}

	node := inferForTest(t, examples, schema.NewPreserveSet("paymentNo"))
	payment := node.Properties["paymentNo"]
	require.True(t, payment.PreserveOriginal)
	assert.Equal(t, []interface{}{nil, "7"}, payment.OriginalValues)
}

func TestAnnotateDedupByValueEquality(t *testing.T) {
	examples := []interface{}{
		map[string]interface{}{"status": map[string]interface{}{"code": float64(1)}},
		map[string]interface{}{"status": map[string]interface{}{"code": float64(1)}},
	}

	node := inferForTest(t, examples, schema.NewPreserveSet("status"))
	status := node.Properties["status"]
	require.True(t, status.PreserveOriginal)
	// Two structurally equal composite values collapse to one
	assert.Len(t, status.OriginalValues, 1)
}

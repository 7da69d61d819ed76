/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer.go
Description: Structure analyzer for the Akaylee Mocksmith. Recursively classifies
an arbitrary JSON-like value into a StructuralNode tree, unifying heterogeneous
array elements into a single item schema and guarding against unbounded nesting.
*/

package schema

import (
	"encoding/json"
	"math"
)

// DefaultMaxDepth is the recursion budget used when callers have no opinion.
// Substructure below the budget collapses to a string leaf.
const DefaultMaxDepth = 10

// Analyze classifies a value into a structural node, recursing up to maxDepth
// levels. It is total over the JSON data model: any combination of maps,
// slices, and scalars produces a node, never an error. Classification order is
// null, boolean, number, string, array, object.
func Analyze(value interface{}, maxDepth int) *Node {
	if maxDepth <= 0 {
		return &Node{Kind: KindString}
	}

	switch v := value.(type) {
	case nil:
		return &Node{Kind: KindNull}
	case bool:
		return &Node{Kind: KindBoolean}
	case float64:
		return &Node{Kind: KindNumber, Integer: v == math.Trunc(v) && !math.IsInf(v, 0)}
	case int:
		return &Node{Kind: KindNumber, Integer: true}
	case int64:
		return &Node{Kind: KindNumber, Integer: true}
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return &Node{Kind: KindNumber, Integer: true}
		}
		return &Node{Kind: KindNumber}
	case string:
		return &Node{Kind: KindString}
	case []interface{}:
		return analyzeArray(v, maxDepth)
	case map[string]interface{}:
		node := NewObject()
		for key, child := range v {
			node.Properties[key] = Analyze(child, maxDepth-1)
		}
		return node
	default:
		// Anything outside the JSON data model degrades to a string leaf
		return &Node{Kind: KindString}
	}
}

// analyzeArray unifies all element schemas into a single item schema. An empty
// array has nothing to classify, so its item schema is an empty object
// placeholder: merging it with a real item schema later lets the real
// properties survive the object union.
func analyzeArray(elements []interface{}, maxDepth int) *Node {
	if len(elements) == 0 {
		return NewArray(NewObject())
	}

	items := Analyze(elements[0], maxDepth-1)
	for _, element := range elements[1:] {
		items = Merge(items, Analyze(element, maxDepth-1))
	}
	return NewArray(items)
}

// KindOf classifies a raw value without building a node tree
func KindOf(value interface{}) Kind {
	switch value.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case float64, int, int64, json.Number:
		return KindNumber
	case string:
		return KindString
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		return KindObject
	default:
		return KindString
	}
}

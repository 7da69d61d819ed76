/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: annotator.go
Description: Preservation annotator for the Akaylee Mocksmith. Walks a merged
structural tree together with the original example documents and marks fields
from the preserve-set, attaching the literal set of values seen for that field
at that nesting level.
*/

package schema

import "reflect"

// PreserveSet holds the bare field names whose values must be sampled from
// real examples rather than fabricated. Owned by configuration; the annotator
// only ever reads it.
type PreserveSet map[string]struct{}

// NewPreserveSet builds a preserve-set from field names
func NewPreserveSet(names ...string) PreserveSet {
	set := make(PreserveSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether the field name is in the preserve-set
func (s PreserveSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the field names in the set
func (s PreserveSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// Annotate marks preserve-set fields on the structural tree in place,
// attaching the deduplicated values observed for each field in the examples.
// Sub-example lists are rebuilt at every nesting level, so a field's value
// pool is scoped to its own level and never polluted by sibling subtrees.
// Examples that do not have the expected shape at a given path are skipped.
func Annotate(node *Node, examples []interface{}, preserve PreserveSet) {
	if node == nil {
		return
	}

	switch node.Kind {
	case KindObject:
		for name, child := range node.Properties {
			if preserve.Contains(name) {
				child.PreserveOriginal = true
				if values := collectValues(name, examples); len(values) > 0 {
					child.OriginalValues = values
				}
			}

			switch child.Kind {
			case KindObject:
				if sub := extractSubExamples(name, examples); len(sub) > 0 {
					Annotate(child, sub, preserve)
				}
			case KindArray:
				if flat := flattenArrayExamples(name, examples); len(flat) > 0 {
					Annotate(child.Items, flat, preserve)
				}
			}
		}

	case KindArray:
		// Root-level array schema: the examples are already item-level values
		if len(examples) > 0 {
			Annotate(node.Items, examples, preserve)
		}
	}
}

// collectValues gathers example[name] across all object examples, keeping the
// first occurrence of each distinct value. A present key with a null value
// still counts as an observed value.
func collectValues(name string, examples []interface{}) []interface{} {
	var values []interface{}
	for _, example := range examples {
		obj, ok := example.(map[string]interface{})
		if !ok {
			continue
		}
		value, ok := obj[name]
		if !ok {
			continue
		}
		if !containsValue(values, value) {
			values = append(values, value)
		}
	}
	return values
}

// containsValue tests membership by value equality, not identity
func containsValue(values []interface{}, candidate interface{}) bool {
	for _, v := range values {
		if reflect.DeepEqual(v, candidate) {
			return true
		}
	}
	return false
}

// extractSubExamples pulls the non-null values stored under name from every
// object example, forming the example list for a nested object schema
func extractSubExamples(name string, examples []interface{}) []interface{} {
	var sub []interface{}
	for _, example := range examples {
		obj, ok := example.(map[string]interface{})
		if !ok {
			continue
		}
		if value, ok := obj[name]; ok && value != nil {
			sub = append(sub, value)
		}
	}
	return sub
}

// flattenArrayExamples concatenates every list found under name across the
// examples, flattening one level to produce item-level examples
func flattenArrayExamples(name string, examples []interface{}) []interface{} {
	var flat []interface{}
	for _, example := range examples {
		obj, ok := example.(map[string]interface{})
		if !ok {
			continue
		}
		if list, ok := obj[name].([]interface{}); ok {
			flat = append(flat, list...)
		}
	}
	return flat
}

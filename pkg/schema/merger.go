/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: merger.go
Description: Structure merger for the Akaylee Mocksmith. Combines two structural
nodes into a superset node, with the string kind treated as the weakest and the
left operand winning any remaining kind conflicts.
*/

package schema

// Merge combines two structural nodes into one node that is a structural
// superset of both. Neither operand is mutated. When kinds differ, a string
// node loses to any more specific kind; if neither side is a string, the left
// operand wins. Folding Merge left-to-right over a sequence of analyzed
// examples yields the union-of-all-shapes schema.
func Merge(a, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	if a.Kind != b.Kind {
		if a.Kind == KindString {
			return b
		}
		return a
	}

	switch a.Kind {
	case KindObject:
		merged := NewObject()
		for name, child := range a.Properties {
			merged.Properties[name] = child
		}
		for name, child := range b.Properties {
			if existing, ok := merged.Properties[name]; ok {
				merged.Properties[name] = Merge(existing, child)
			} else {
				merged.Properties[name] = child
			}
		}
		return merged

	case KindArray:
		return NewArray(Merge(a.Items, b.Items))

	case KindNumber:
		if a.Integer != b.Integer {
			// Integral on one side only: the unified kind is a plain float number
			return &Node{Kind: KindNumber}
		}
		return a

	default:
		// Leaf kinds carry no structural payload to merge
		return a
	}
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: node.go
Description: Structural schema node for the Akaylee Mocksmith. Defines the tagged
StructuralNode tree that describes shape and type at every path of an example
document, plus the preserve-original annotation fields used by synthesis.
*/

package schema

// Kind identifies the structural kind of a node
// Used for type classification and merging
type Kind string

const (
	KindNull    Kind = "null"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// IsLeaf reports whether the kind carries no nested structure
func (k Kind) IsLeaf() bool {
	switch k {
	case KindObject, KindArray:
		return false
	default:
		return true
	}
}

// Node describes the inferred structure at one position of a document tree.
// Kind and the structural payload (Properties, Items, Integer) are fixed when
// the analyzer builds the node; only the annotation fields (PreserveOriginal,
// OriginalValues) are mutated afterwards, and only by Annotate.
type Node struct {
	Kind       Kind             `json:"kind"`
	Properties map[string]*Node `json:"properties,omitempty"` // object children by field name
	Items      *Node            `json:"items,omitempty"`      // unified array item schema
	Integer    bool             `json:"integer,omitempty"`    // number: every observed value was integral

	PreserveOriginal bool          `json:"preserve_original,omitempty"`
	OriginalValues   []interface{} `json:"original_values,omitempty"` // first-seen order, no duplicates
}

// NewObject creates an object node with an empty property map
func NewObject() *Node {
	return &Node{Kind: KindObject, Properties: make(map[string]*Node)}
}

// NewArray creates an array node wrapping the given item schema
func NewArray(items *Node) *Node {
	return &Node{Kind: KindArray, Items: items}
}

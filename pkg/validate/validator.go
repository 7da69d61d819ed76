/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validator.go
Description: Output validator for the Akaylee Mocksmith. Checks a generated
document against an inferred structural schema, reporting kind mismatches,
unexpected properties, and preserved fields that drifted outside their
observed value pools.
*/

package validate

import (
	"fmt"
	"reflect"

	"github.com/kleascm/akaylee-mocksmith/pkg/schema"
)

// IssueKind classifies a validation finding
type IssueKind string

const (
	IssueKindMismatch       IssueKind = "kind-mismatch"
	IssueMissingProperty    IssueKind = "missing-property"
	IssueUnexpectedProperty IssueKind = "unexpected-property"
	IssuePreserveViolation  IssueKind = "preserve-violation"
	IssueMalformedSchema    IssueKind = "malformed-schema"
)

// Issue is one validation finding at a document path
type Issue struct {
	Path   string    `json:"path"`
	Kind   IssueKind `json:"kind"`
	Detail string    `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s at %q: %s", i.Kind, i.Path, i.Detail)
}

// Validate checks a document against the schema node, returning every finding.
// It never panics and never stops at the first issue.
func Validate(doc interface{}, node *schema.Node) []Issue {
	var issues []Issue
	validateAt(doc, node, "$", &issues)
	return issues
}

func validateAt(value interface{}, node *schema.Node, path string, issues *[]Issue) {
	if node == nil {
		*issues = append(*issues, Issue{Path: path, Kind: IssueMalformedSchema, Detail: "nil schema node"})
		return
	}

	valueKind := schema.KindOf(value)

	// A string schema is the weakest kind and accepts any scalar that the
	// depth guard may have collapsed
	if valueKind != node.Kind && !(node.Kind == schema.KindString && valueKind.IsLeaf()) {
		*issues = append(*issues, Issue{
			Path: path, Kind: IssueKindMismatch,
			Detail: fmt.Sprintf("expected %s, found %s", node.Kind, valueKind),
		})
		return
	}

	if node.PreserveOriginal && len(node.OriginalValues) > 0 {
		if !memberOf(node.OriginalValues, value) {
			*issues = append(*issues, Issue{
				Path: path, Kind: IssuePreserveViolation,
				Detail: "value is not one of the observed original values",
			})
		}
	}

	switch node.Kind {
	case schema.KindObject:
		if node.Properties == nil {
			*issues = append(*issues, Issue{Path: path, Kind: IssueMalformedSchema, Detail: "object node without properties"})
			return
		}
		obj, ok := value.(map[string]interface{})
		if !ok {
			return
		}
		for name, child := range node.Properties {
			childPath := path + "." + name
			childValue, present := obj[name]
			if !present {
				*issues = append(*issues, Issue{Path: childPath, Kind: IssueMissingProperty, Detail: "property absent from document"})
				continue
			}
			validateAt(childValue, child, childPath, issues)
		}
		for name := range obj {
			if _, known := node.Properties[name]; !known {
				*issues = append(*issues, Issue{Path: path + "." + name, Kind: IssueUnexpectedProperty, Detail: "property not in schema"})
			}
		}

	case schema.KindArray:
		if node.Items == nil {
			*issues = append(*issues, Issue{Path: path, Kind: IssueMalformedSchema, Detail: "array node without item schema"})
			return
		}
		list, ok := value.([]interface{})
		if !ok {
			return
		}
		for i, element := range list {
			validateAt(element, node.Items, fmt.Sprintf("%s[%d]", path, i), issues)
		}
	}
}

func memberOf(values []interface{}, candidate interface{}) bool {
	for _, v := range values {
		if reflect.DeepEqual(v, candidate) {
			return true
		}
	}
	return false
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error types for the Akaylee Mocksmith schema pipeline. A malformed
schema tree indicates a bug in analysis or merging, never bad input data, and
is reported loudly instead of being silently tolerated.
*/

package schema

import "fmt"

// SchemaMalformedError reports an internally inconsistent schema node, such as
// an object node without a property map or an unknown kind
type SchemaMalformedError struct {
	Path   string
	Reason string
}

func (e *SchemaMalformedError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed schema: %s", e.Reason)
	}
	return fmt.Sprintf("malformed schema at %q: %s", e.Path, e.Reason)
}

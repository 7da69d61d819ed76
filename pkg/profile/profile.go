/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: profile.go
Description: Corpus profiler for the Akaylee Mocksmith. Builds a per-field
profile of the example corpus: which dotted paths occur, which values are most
common at each path, and which entities the corpus contains. Fields named in
the PII exclusion set never contribute values to the profile.
*/

package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kleascm/akaylee-mocksmith/pkg/corpus"
)

// DefaultPIIFields are field names whose real values must never appear in a
// profile or report
var DefaultPIIFields = []string{
	"name", "firstName", "lastName", "id", "idNumber", "email", "phone", "address",
}

// TopValuesPerField caps how many distinct values are reported per path
const TopValuesPerField = 10

// Summary is a profile of an example corpus
type Summary struct {
	Entities  []string                 `json:"entities"`
	Fields    []string                 `json:"fields"`
	TopValues map[string][]interface{} `json:"top_values"`
}

// Profiler scans example documents into field profiles
type Profiler struct {
	pii       map[string]struct{}
	entityKey string
}

// NewProfiler creates a profiler excluding the given PII field names. The
// entity of each document is read from its top-level "entity" key.
func NewProfiler(piiFields ...string) *Profiler {
	if piiFields == nil {
		piiFields = DefaultPIIFields
	}
	pii := make(map[string]struct{}, len(piiFields))
	for _, field := range piiFields {
		pii[field] = struct{}{}
	}
	return &Profiler{pii: pii, entityKey: "entity"}
}

type valueCount struct {
	value interface{}
	key   string
	count int
}

type fieldProfile struct {
	counts []*valueCount
	index  map[string]*valueCount
}

// Profile summarizes the corpus documents
func (p *Profiler) Profile(docs []corpus.Document) *Summary {
	entities := make(map[string]struct{})
	fields := make(map[string]struct{})
	profiles := make(map[string]*fieldProfile)

	for _, doc := range docs {
		if obj, ok := doc.Value.(map[string]interface{}); ok {
			if entity, ok := obj[p.entityKey].(string); ok {
				entities[entity] = struct{}{}
			}
		}
		p.walk(doc.Value, "", fields, profiles)
	}

	summary := &Summary{
		Entities:  sortedSet(entities),
		Fields:    sortedSet(fields),
		TopValues: make(map[string][]interface{}, len(profiles)),
	}
	for path, fp := range profiles {
		sort.SliceStable(fp.counts, func(i, j int) bool {
			return fp.counts[i].count > fp.counts[j].count
		})
		top := fp.counts
		if len(top) > TopValuesPerField {
			top = top[:TopValuesPerField]
		}
		values := make([]interface{}, len(top))
		for i, vc := range top {
			values[i] = vc.value
		}
		summary.TopValues[path] = values
	}
	return summary
}

// walk flattens documents into dotted paths, counting leaf values. Array
// elements share their parent's path. PII-named fields are skipped entirely.
func (p *Profiler) walk(value interface{}, prefix string, fields map[string]struct{}, profiles map[string]*fieldProfile) {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, child := range v {
			if _, isPII := p.pii[key]; isPII {
				continue
			}
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			fields[path] = struct{}{}
			p.walk(child, path, fields, profiles)
		}
	case []interface{}:
		for _, element := range v {
			p.walk(element, prefix, fields, profiles)
		}
	default:
		if prefix == "" {
			return
		}
		leaf := prefix
		if i := strings.LastIndex(prefix, "."); i >= 0 {
			leaf = prefix[i+1:]
		}
		if _, isPII := p.pii[leaf]; isPII {
			return
		}
		p.count(prefix, value, profiles)
	}
}

func (p *Profiler) count(path string, value interface{}, profiles map[string]*fieldProfile) {
	fp, ok := profiles[path]
	if !ok {
		fp = &fieldProfile{index: make(map[string]*valueCount)}
		profiles[path] = fp
	}
	key := fmt.Sprintf("%T:%v", value, value)
	if vc, ok := fp.index[key]; ok {
		vc.count++
		return
	}
	vc := &valueCount{value: value, key: key, count: 1}
	fp.index[key] = vc
	fp.counts = append(fp.counts, vc)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

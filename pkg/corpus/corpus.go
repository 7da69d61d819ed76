/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: corpus.go
Description: Example corpus management for the Akaylee Mocksmith. Holds the
ordered set of parsed example documents handed to the inference pipeline, with
entity filtering and content fingerprinting for schema cache keys.
*/

package corpus

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Document is one parsed example with its provenance
type Document struct {
	Source string
	Value  interface{}
}

// Corpus is an ordered sequence of example documents. It is supplied fresh to
// each inference call and never mutated by the pipeline.
type Corpus struct {
	docs []Document
}

// New creates an empty corpus
func New() *Corpus {
	return &Corpus{}
}

// Add appends a document to the corpus
func (c *Corpus) Add(source string, value interface{}) {
	c.docs = append(c.docs, Document{Source: source, Value: value})
}

// Len reports the number of documents
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Documents returns the documents in order
func (c *Corpus) Documents() []Document {
	return c.docs
}

// Values returns the raw document values in order, the form the analyzer
// consumes
func (c *Corpus) Values() []interface{} {
	values := make([]interface{}, len(c.docs))
	for i, doc := range c.docs {
		values[i] = doc.Value
	}
	return values
}

// FilterByEntity keeps documents whose top-level key equals the wanted value.
// Non-object documents and documents without the key are dropped.
func (c *Corpus) FilterByEntity(key, want string) *Corpus {
	filtered := New()
	for _, doc := range c.docs {
		obj, ok := doc.Value.(map[string]interface{})
		if !ok {
			continue
		}
		if value, ok := obj[key].(string); ok && value == want {
			filtered.docs = append(filtered.docs, doc)
		}
	}
	return filtered
}

// Fingerprint derives a stable identity for the corpus content, used as the
// schema cache key. encoding/json serializes map keys in sorted order, so the
// fingerprint is insensitive to document key ordering.
func (c *Corpus) Fingerprint() (string, error) {
	return Fingerprint(c.Values())
}

// Fingerprint hashes a document sequence into a cache key
func Fingerprint(values []interface{}) (string, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint corpus: %w", err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(data)), nil
}

// Source supplies example documents from somewhere: a directory, a dataset
// URL, a documentation page
type Source interface {
	Name() string
	Description() string
	FetchExamples(ctx context.Context) ([]Document, error)
}

// Load gathers documents from all sources into one corpus. A failing source
// is a local failure: it is logged and skipped, never aborting the load.
func Load(ctx context.Context, logger *logrus.Logger, sources ...Source) *Corpus {
	c := New()
	for _, source := range sources {
		docs, err := source.FetchExamples(ctx)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"source": source.Name(),
				"error":  err,
			}).Warn("Example source failed, skipping")
			continue
		}
		c.docs = append(c.docs, docs...)
		logger.WithFields(logrus.Fields{
			"source":    source.Name(),
			"documents": len(docs),
		}).Debug("Example source loaded")
	}
	return c
}

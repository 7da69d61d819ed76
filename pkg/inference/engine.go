/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Main entry point for structural schema inference. Folds the
analyzer and merger over an example corpus, annotates preserve-set fields with
their observed values, and memoizes the result by corpus fingerprint.
*/

package inference

import (
	"fmt"

	"github.com/kleascm/akaylee-mocksmith/pkg/cache"
	"github.com/kleascm/akaylee-mocksmith/pkg/corpus"
	"github.com/kleascm/akaylee-mocksmith/pkg/schema"
	"github.com/sirupsen/logrus"
)

// Engine runs the analyze-merge-annotate pipeline over example corpora.
// The pipeline itself is pure call-and-return logic; the cache is the only
// shared mutable state and carries its own synchronization.
type Engine struct {
	cache    *cache.Cache
	preserve schema.PreserveSet
	maxDepth int
	logger   *logrus.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithCache sets the schema cache (default: in-memory store)
func WithCache(c *cache.Cache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithPreserveSet sets the preserve-set read by the annotator
func WithPreserveSet(set schema.PreserveSet) Option {
	return func(e *Engine) { e.preserve = set }
}

// WithMaxDepth sets the analyzer recursion budget
func WithMaxDepth(depth int) Option {
	return func(e *Engine) { e.maxDepth = depth }
}

// WithLogger sets the logger used for pipeline diagnostics
func WithLogger(logger *logrus.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an inference engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cache:    cache.New(cache.NewMemoryStore()),
		preserve: schema.NewPreserveSet(),
		maxDepth: schema.DefaultMaxDepth,
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InferStructure analyzes the structure across all examples, returning the
// unified annotated schema. Results are memoized under cacheKey; when
// cacheKey is empty a content fingerprint of the corpus is derived. An empty
// corpus yields an empty object schema.
func (e *Engine) InferStructure(examples []interface{}, cacheKey string) (*schema.Node, error) {
	if len(examples) == 0 {
		return schema.NewObject(), nil
	}

	key := cacheKey
	if key == "" {
		fp, err := corpus.Fingerprint(examples)
		if err != nil {
			return nil, fmt.Errorf("failed to derive cache key: %w", err)
		}
		key = fp
	}

	return e.cache.GetOrCompute(key, func() (*schema.Node, error) {
		node := e.inferUncached(examples)
		e.logger.WithFields(logrus.Fields{
			"examples": len(examples),
			"key":      key,
		}).Debug("Schema inferred")
		return node, nil
	})
}

// inferUncached runs the pipeline without touching the cache
func (e *Engine) inferUncached(examples []interface{}) *schema.Node {
	node := schema.Analyze(examples[0], e.maxDepth)
	for _, example := range examples[1:] {
		node = schema.Merge(node, schema.Analyze(example, e.maxDepth))
	}
	schema.Annotate(node, examples, e.preserve)
	return node
}

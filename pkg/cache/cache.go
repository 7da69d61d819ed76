/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cache.go
Description: Schema cache for the Akaylee Mocksmith. Memoizes inference results
by corpus fingerprint with at-most-once computation per fingerprint, per-key
synchronization for concurrent hosts, and a bypass mode for degraded operation.
*/

package cache

import (
	"fmt"
	"sync"

	"github.com/kleascm/akaylee-mocksmith/pkg/schema"
)

// Store is the backing store for cached schemas. Implementations must be safe
// for concurrent use.
type Store interface {
	Get(key string) (*schema.Node, bool, error)
	Set(key string, node *schema.Node) error
}

// CacheUnavailableError reports a failing backing store. Callers that want a
// degraded always-recompute mode can switch to a bypass cache.
type CacheUnavailableError struct {
	Key string
	Err error
}

func (e *CacheUnavailableError) Error() string {
	return fmt.Sprintf("schema cache unavailable for key %q: %v", e.Key, e.Err)
}

func (e *CacheUnavailableError) Unwrap() error { return e.Err }

// MemoryStore keeps schemas in process memory. No eviction, no TTL, no size
// bound: memoization lives as long as the process does, and unbounded growth
// is accepted scope for this subsystem.
type MemoryStore struct {
	mu      sync.RWMutex
	schemas map[string]*schema.Node
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{schemas: make(map[string]*schema.Node)}
}

// Get returns the stored node for key, if any
func (s *MemoryStore) Get(key string) (*schema.Node, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node, ok := s.schemas[key]
	return node, ok, nil
}

// Set stores or overwrites the node for key unconditionally
func (s *MemoryStore) Set(key string, node *schema.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas[key] = node
	return nil
}

// Len reports the number of cached schemas
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.schemas)
}

// Cache memoizes the inference pipeline by fingerprint. Concurrent
// GetOrCompute calls for the same fingerprint share a single computation;
// unrelated fingerprints never contend on each other's compute.
type Cache struct {
	store Store

	mu       sync.Mutex
	inflight map[string]*inflightEntry
}

type inflightEntry struct {
	once sync.Once
	node *schema.Node
	err  error
}

// New creates a cache over the given backing store
func New(store Store) *Cache {
	return &Cache{store: store, inflight: make(map[string]*inflightEntry)}
}

// NewBypass creates a cache that never stores anything and invokes the compute
// function on every call. Used when a backing store is failing.
func NewBypass() *Cache {
	return &Cache{inflight: make(map[string]*inflightEntry)}
}

// GetOrCompute returns the schema stored for fingerprint, computing and
// storing it on first request. For identical fingerprints the compute function
// runs at most once per process lifetime; a second call with a different
// compute function still returns the originally stored node.
func (c *Cache) GetOrCompute(fingerprint string, compute func() (*schema.Node, error)) (*schema.Node, error) {
	if c.store == nil {
		return compute()
	}

	if node, ok, err := c.store.Get(fingerprint); err != nil {
		return nil, &CacheUnavailableError{Key: fingerprint, Err: err}
	} else if ok {
		return node, nil
	}

	c.mu.Lock()
	entry, ok := c.inflight[fingerprint]
	if !ok {
		entry = &inflightEntry{}
		c.inflight[fingerprint] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		// A concurrent caller may have finished between the fast path and here
		if node, ok, err := c.store.Get(fingerprint); err != nil {
			entry.err = &CacheUnavailableError{Key: fingerprint, Err: err}
			return
		} else if ok {
			entry.node = node
			return
		}

		node, err := compute()
		if err != nil {
			entry.err = err
			return
		}
		if err := c.store.Set(fingerprint, node); err != nil {
			entry.err = &CacheUnavailableError{Key: fingerprint, Err: err}
			return
		}
		entry.node = node
	})

	if entry.err != nil {
		// Failed computations are not memoized; later calls may retry
		c.mu.Lock()
		delete(c.inflight, fingerprint)
		c.mu.Unlock()
	}

	return entry.node, entry.err
}

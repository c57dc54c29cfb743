package cache

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// KeyFunc formats a key for deduplicating concurrent creation.
// Distinct keys must format to distinct strings.
type KeyFunc[K any] func(K) string

// Memo is a thread-safe table of lazily created, never evicted values.
//
// Values are created at most once per key: concurrent GetOrCreate calls for
// the same missing key share one call to create and all observe the same
// value. Unlike a mutex-guarded create, creation of different keys proceeds
// in parallel.
//
// Memo must not be copied after creation (has mutex).
type Memo[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	flight  singleflight.Group
	key     KeyFunc[K]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemo creates an empty memo table.
func NewMemo[K comparable, V any](key KeyFunc[K]) *Memo[K, V] {
	return &Memo[K, V]{
		entries: make(map[K]V),
		key:     key,
	}
}

// Get returns the stored value for key.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	return v, ok
}

// GetOrCreate returns the stored value for key, calling create to produce it
// if it is missing. create runs outside the table lock.
func (m *Memo[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := m.Get(key); ok {
		m.hits.Add(1)
		return v
	}
	created := false
	res, _, _ := m.flight.Do(m.key(key), func() (any, error) {
		// A concurrent flight may have finished between Get and Do.
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		created = true
		m.misses.Add(1)
		v := create()
		m.mu.Lock()
		m.entries[key] = v
		m.mu.Unlock()
		return v, nil
	})
	// Callers that joined another caller's flight did not run create.
	if !created {
		m.hits.Add(1)
	}
	return res.(V)
}

// Len returns the number of stored values.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Stats returns memo statistics.
func (m *Memo[K, V]) Stats() Stats {
	hits, misses := m.hits.Load(), m.misses.Load()
	s := Stats{
		Len:    m.Len(),
		Hits:   hits,
		Misses: misses,
	}
	if total := hits + misses; total > 0 {
		s.HitRate = float64(hits) / float64(total)
	}
	return s
}

// Stats contains memo statistics.
type Stats struct {
	// Len is the number of stored values.
	Len int
	// Hits counts lookups that did not call create, including callers
	// that waited on a concurrent creation of the same key.
	Hits uint64
	// Misses counts calls to create.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
}

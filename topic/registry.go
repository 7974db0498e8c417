// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package topic provides a small directory that maps topic names to
// partition counts and assigns keys to partitions by hashing.
//
// It is a plain guarded map, intended as the lookup collaborator in a
// partitioned pipeline where every partition gets its own
// [code.hybscloud.com/ringq] ring. Unlike the rings it serves, the
// registry is ordinary locked code; it is nowhere near the hot path.
package topic

import (
	"errors"
	"hash/maphash"
	"sync"
)

// ErrNotFound indicates the named topic does not exist.
var ErrNotFound = errors.New("topic: not found")

// ErrExists indicates the named topic already exists.
var ErrExists = errors.New("topic: already exists")

// ErrInvalidPartitionCount indicates a topic was created with zero
// partitions.
var ErrInvalidPartitionCount = errors.New("topic: partition count must be positive")

// Registry maps topic names to partition counts and assigns keys to
// partitions. Safe for concurrent use by multiple goroutines.
type Registry struct {
	mu     sync.RWMutex
	seed   maphash.Seed
	topics map[string]uint32
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		seed:   maphash.MakeSeed(),
		topics: make(map[string]uint32),
	}
}

// Create registers a topic with the given number of partitions.
// Returns ErrExists if the topic is already registered and
// ErrInvalidPartitionCount if partitions is zero.
func (r *Registry) Create(name string, partitions uint32) error {
	if partitions == 0 {
		return ErrInvalidPartitionCount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.topics[name]; ok {
		return ErrExists
	}
	r.topics[name] = partitions
	return nil
}

// Delete removes a topic. Returns ErrNotFound if it does not exist.
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.topics[name]; !ok {
		return ErrNotFound
	}
	delete(r.topics, name)
	return nil
}

// PartitionCount returns the number of partitions of a topic.
// Returns ErrNotFound if the topic does not exist.
func (r *Registry) PartitionCount(name string) (uint32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.topics[name]
	if !ok {
		return 0, ErrNotFound
	}
	return n, nil
}

// Assign maps a key to one of the topic's partitions as
// hash(key) mod partitionCount. The same key always lands on the same
// partition for the lifetime of the registry.
// Returns ErrNotFound if the topic does not exist.
func (r *Registry) Assign(name, key string) (uint32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.topics[name]
	if !ok {
		return 0, ErrNotFound
	}
	return uint32(maphash.String(r.seed, key) % uint64(n)), nil
}

// Topics returns the names of all registered topics, in no particular
// order.
func (r *Registry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.topics))
	for name := range r.topics {
		names = append(names, name)
	}
	return names
}

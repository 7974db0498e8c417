// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// state holds the two index counters shared by a split producer/consumer
// pair. Each counter sits on its own cache line so that the producer's
// stores to head never invalidate the line carrying tail, and vice versa.
//
// head is the next write position and is advanced only by the producer.
// tail is the next read position and is advanced only by the consumer.
// Both are kept masked into [0, capacity). The slots holding live values
// are exactly [tail, head) modulo capacity; head == tail means empty.
// One slot stays permanently reserved, so full is (head+1)&mask == tail
// and the two conditions never collide.
type state struct {
	_    pad
	head atomix.Uint64 // next write position, producer-owned
	_    pad
	tail atomix.Uint64 // next read position, consumer-owned
	_    pad
}

// Ring is a bounded single-producer single-consumer FIFO queue.
//
// Based on Lamport's ring buffer with cached index optimization: the
// producer caches the consumer's read index and the consumer caches the
// producer's write index, so the hot path touches only thread-local
// state and issues a synchronizing load only when the cached view
// predicts full or empty.
//
// A Ring is inert until [Ring.Split] divides it into a [Producer] and a
// [Consumer]. Only Split can mint handles, and only once, so the type
// system admits exactly one writer and one reader per ring. Using
// additional goroutines on either handle is undefined behavior.
//
// Both halves share the backing storage; it is reclaimed by the garbage
// collector once the last of the two handles is dropped, no matter which
// one outlives the other.
//
// Memory: O(capacity) with minimal per-slot overhead
type Ring[T any] struct {
	shared *state
	buffer []T
	mask   uint64
	split  bool
}

// New creates a ring with the given capacity.
//
// The capacity must be greater than zero and an exact power of two;
// otherwise New returns an [InvalidCapacityError]. A ring holds at most
// capacity-1 elements: one slot is reserved to tell a full ring from an
// empty one using only the two index counters.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		return nil, &InvalidCapacityError{Capacity: capacity}
	}
	return &Ring[T]{
		shared: &state{},
		buffer: make([]T, capacity),
		mask:   uint64(capacity) - 1,
	}, nil
}

// Cap returns the configured capacity, including the reserved slot.
// The ring accepts at most Cap()-1 elements at a time.
func (r *Ring[T]) Cap() int {
	return len(r.buffer)
}

// Split divides the ring into its producer and consumer halves.
//
// The two handles share the ring's storage and index state. Move each
// to its own goroutine; neither handle may be used from more than one
// goroutine at a time. Split panics when called a second time: a ring
// admits exactly one producer and one consumer for its whole lifetime.
//
// Split itself is not safe for concurrent use; call it before handing
// the halves to their goroutines.
func (r *Ring[T]) Split() (*Producer[T], *Consumer[T]) {
	if r.split {
		panic("ringq: ring already split")
	}
	r.split = true

	p := &Producer[T]{shared: r.shared, buffer: r.buffer, mask: r.mask}
	c := &Consumer[T]{shared: r.shared, buffer: r.buffer, mask: r.mask}
	return p, c
}

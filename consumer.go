// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Consumer is the read half of a split [Ring].
//
// Exactly one goroutine may use a Consumer. It is the sole writer of the
// ring's tail index and keeps a cached copy of the producer's head index,
// refreshed only when the cache predicts an empty ring.
type Consumer[T any] struct {
	shared     *state
	buffer     []T
	mask       uint64
	cachedHead uint64
}

// Pop removes and returns the oldest element (consumer goroutine only).
//
// Returns (zero-value, [ErrEmpty]) if the ring is empty. The vacated
// slot is cleared so referenced objects become collectable as soon as
// the value leaves the ring. Pop is wait-free: it completes in a bounded
// number of steps regardless of the producer's progress.
func (c *Consumer[T]) Pop() (T, error) {
	tail := c.shared.tail.LoadRelaxed()

	if tail == c.cachedHead {
		c.cachedHead = c.shared.head.LoadAcquire()
		if tail == c.cachedHead {
			var zero T
			return zero, ErrEmpty
		}
	}

	elem := c.buffer[tail]
	var zero T
	c.buffer[tail] = zero
	c.shared.tail.StoreRelease((tail + 1) & c.mask)
	return elem, nil
}

// Len returns the number of elements currently in the ring.
//
// The result is an advisory snapshot: it mixes an acquire read of head
// with a relaxed read of tail and may be stale the instant it returns
// while the producer runs.
func (c *Consumer[T]) Len() int {
	head := c.shared.head.LoadAcquire()
	tail := c.shared.tail.LoadRelaxed()

	n := uint64(len(c.buffer))
	return int((head + n - tail) & c.mask)
}

// IsEmpty reports whether the ring is empty. Advisory, like
// [Consumer.Len].
func (c *Consumer[T]) IsEmpty() bool {
	return c.Len() == 0
}

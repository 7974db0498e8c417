// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Producer is the write half of a split [Ring].
//
// Exactly one goroutine may use a Producer. It is the sole writer of the
// ring's head index and keeps a cached copy of the consumer's tail index,
// refreshed only when the cache predicts a full ring.
type Producer[T any] struct {
	shared     *state
	buffer     []T
	mask       uint64
	cachedTail uint64
}

// Push adds an element to the ring (producer goroutine only).
//
// The element is copied into the ring's internal buffer; the caller
// retains the original either way. Returns [ErrFull] if the ring is
// full. Push is wait-free: it completes in a bounded number of steps
// regardless of the consumer's progress, and never blocks, spins, or
// allocates.
func (p *Producer[T]) Push(elem *T) error {
	head := p.shared.head.LoadRelaxed()
	next := (head + 1) & p.mask

	if next == p.cachedTail {
		p.cachedTail = p.shared.tail.LoadAcquire()
		if next == p.cachedTail {
			return ErrFull
		}
	}

	p.buffer[head] = *elem
	p.shared.head.StoreRelease(next)
	return nil
}

// RemainingCapacity returns how many elements can currently be pushed.
//
// The result is an advisory snapshot: it mixes a relaxed read of head
// with an acquire read of tail and may be stale the instant it returns
// while the consumer runs. It never exceeds Cap()-1.
func (p *Producer[T]) RemainingCapacity() int {
	head := p.shared.head.LoadRelaxed()
	tail := p.shared.tail.LoadAcquire()

	n := uint64(len(p.buffer))
	return int(n - 1 - ((head + n - tail) & p.mask))
}

// IsFull reports whether the ring is full. Advisory, like
// [Producer.RemainingCapacity].
func (p *Producer[T]) IsFull() bool {
	return p.RemainingCapacity() == 0
}

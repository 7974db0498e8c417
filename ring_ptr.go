// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "unsafe"

// RingPtr is a [Ring] for unsafe.Pointer values.
// Useful for zero-copy pointer passing between goroutines.
//
// Ownership semantics: the producer transfers ownership to the
// consumer. After pushing, the producer must not access the object.
type RingPtr struct {
	shared *state
	buffer []unsafe.Pointer
	mask   uint64
	split  bool
}

// NewPtr creates a ring of unsafe.Pointer values with the given
// capacity. The capacity must be greater than zero and an exact power
// of two; otherwise NewPtr returns an [InvalidCapacityError].
func NewPtr(capacity int) (*RingPtr, error) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		return nil, &InvalidCapacityError{Capacity: capacity}
	}
	return &RingPtr{
		shared: &state{},
		buffer: make([]unsafe.Pointer, capacity),
		mask:   uint64(capacity) - 1,
	}, nil
}

// Cap returns the configured capacity, including the reserved slot.
func (r *RingPtr) Cap() int {
	return len(r.buffer)
}

// Split divides the ring into its producer and consumer halves.
// Panics when called a second time.
func (r *RingPtr) Split() (*ProducerPtr, *ConsumerPtr) {
	if r.split {
		panic("ringq: ring already split")
	}
	r.split = true

	p := &ProducerPtr{shared: r.shared, buffer: r.buffer, mask: r.mask}
	c := &ConsumerPtr{shared: r.shared, buffer: r.buffer, mask: r.mask}
	return p, c
}

// ProducerPtr is the write half of a split [RingPtr].
type ProducerPtr struct {
	shared     *state
	buffer     []unsafe.Pointer
	mask       uint64
	cachedTail uint64
}

// Push adds a pointer to the ring (producer goroutine only).
// Returns [ErrFull] if the ring is full.
func (p *ProducerPtr) Push(elem unsafe.Pointer) error {
	head := p.shared.head.LoadRelaxed()
	next := (head + 1) & p.mask

	if next == p.cachedTail {
		p.cachedTail = p.shared.tail.LoadAcquire()
		if next == p.cachedTail {
			return ErrFull
		}
	}
	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to p.buffer[head] = elem
	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(p.buffer)), int(head)*ptrSize)) = elem
	p.shared.head.StoreRelease(next)
	return nil
}

// RemainingCapacity returns how many pointers can currently be pushed.
// Advisory snapshot, see [Producer.RemainingCapacity].
func (p *ProducerPtr) RemainingCapacity() int {
	head := p.shared.head.LoadRelaxed()
	tail := p.shared.tail.LoadAcquire()

	n := uint64(len(p.buffer))
	return int(n - 1 - ((head + n - tail) & p.mask))
}

// IsFull reports whether the ring is full. Advisory.
func (p *ProducerPtr) IsFull() bool {
	return p.RemainingCapacity() == 0
}

// ConsumerPtr is the read half of a split [RingPtr].
type ConsumerPtr struct {
	shared     *state
	buffer     []unsafe.Pointer
	mask       uint64
	cachedHead uint64
}

// Pop removes and returns the oldest pointer (consumer goroutine only).
// Returns (nil, [ErrEmpty]) if the ring is empty. The vacated slot is
// cleared so the pointed-to object does not outlive its transfer.
func (c *ConsumerPtr) Pop() (unsafe.Pointer, error) {
	tail := c.shared.tail.LoadRelaxed()

	if tail == c.cachedHead {
		c.cachedHead = c.shared.head.LoadAcquire()
		if tail == c.cachedHead {
			return nil, ErrEmpty
		}
	}
	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to elem := c.buffer[tail]; c.buffer[tail] = nil
	slot := (*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(c.buffer)), int(tail)*ptrSize))
	elem := *slot
	*slot = nil
	c.shared.tail.StoreRelease((tail + 1) & c.mask)
	return elem, nil
}

// Len returns the number of pointers currently in the ring. Advisory
// snapshot, see [Consumer.Len].
func (c *ConsumerPtr) Len() int {
	head := c.shared.head.LoadAcquire()
	tail := c.shared.tail.LoadRelaxed()

	n := uint64(len(c.buffer))
	return int((head + n - tail) & c.mask)
}

// IsEmpty reports whether the ring is empty. Advisory.
func (c *ConsumerPtr) IsEmpty() bool {
	return c.Len() == 0
}

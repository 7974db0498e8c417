// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// RingIndirect is a [Ring] for uintptr values.
//
// Useful for passing indices or handles instead of full objects, for
// example a buffer pool free-list where producers and consumers
// exchange pool positions.
type RingIndirect struct {
	shared *state
	buffer []uintptr
	mask   uint64
	split  bool
}

// NewIndirect creates a ring of uintptr values with the given capacity.
// The capacity must be greater than zero and an exact power of two;
// otherwise NewIndirect returns an [InvalidCapacityError].
func NewIndirect(capacity int) (*RingIndirect, error) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		return nil, &InvalidCapacityError{Capacity: capacity}
	}
	return &RingIndirect{
		shared: &state{},
		buffer: make([]uintptr, capacity),
		mask:   uint64(capacity) - 1,
	}, nil
}

// Cap returns the configured capacity, including the reserved slot.
func (r *RingIndirect) Cap() int {
	return len(r.buffer)
}

// Split divides the ring into its producer and consumer halves.
// Panics when called a second time.
func (r *RingIndirect) Split() (*ProducerIndirect, *ConsumerIndirect) {
	if r.split {
		panic("ringq: ring already split")
	}
	r.split = true

	p := &ProducerIndirect{shared: r.shared, buffer: r.buffer, mask: r.mask}
	c := &ConsumerIndirect{shared: r.shared, buffer: r.buffer, mask: r.mask}
	return p, c
}

// ProducerIndirect is the write half of a split [RingIndirect].
type ProducerIndirect struct {
	shared     *state
	buffer     []uintptr
	mask       uint64
	cachedTail uint64
}

// Push adds a value to the ring (producer goroutine only).
// Returns [ErrFull] if the ring is full.
func (p *ProducerIndirect) Push(elem uintptr) error {
	head := p.shared.head.LoadRelaxed()
	next := (head + 1) & p.mask

	if next == p.cachedTail {
		p.cachedTail = p.shared.tail.LoadAcquire()
		if next == p.cachedTail {
			return ErrFull
		}
	}

	p.buffer[head] = elem
	p.shared.head.StoreRelease(next)
	return nil
}

// RemainingCapacity returns how many values can currently be pushed.
// Advisory snapshot, see [Producer.RemainingCapacity].
func (p *ProducerIndirect) RemainingCapacity() int {
	head := p.shared.head.LoadRelaxed()
	tail := p.shared.tail.LoadAcquire()

	n := uint64(len(p.buffer))
	return int(n - 1 - ((head + n - tail) & p.mask))
}

// IsFull reports whether the ring is full. Advisory.
func (p *ProducerIndirect) IsFull() bool {
	return p.RemainingCapacity() == 0
}

// ConsumerIndirect is the read half of a split [RingIndirect].
type ConsumerIndirect struct {
	shared     *state
	buffer     []uintptr
	mask       uint64
	cachedHead uint64
}

// Pop removes and returns the oldest value (consumer goroutine only).
// Returns (0, [ErrEmpty]) if the ring is empty.
func (c *ConsumerIndirect) Pop() (uintptr, error) {
	tail := c.shared.tail.LoadRelaxed()

	if tail == c.cachedHead {
		c.cachedHead = c.shared.head.LoadAcquire()
		if tail == c.cachedHead {
			return 0, ErrEmpty
		}
	}

	elem := c.buffer[tail]
	c.shared.tail.StoreRelease((tail + 1) & c.mask)
	return elem, nil
}

// Len returns the number of values currently in the ring. Advisory
// snapshot, see [Consumer.Len].
func (c *ConsumerIndirect) Len() int {
	head := c.shared.head.LoadAcquire()
	tail := c.shared.tail.LoadRelaxed()

	n := uint64(len(c.buffer))
	return int((head + n - tail) & c.mask)
}

// IsEmpty reports whether the ring is empty. Advisory.
func (c *ConsumerIndirect) IsEmpty() bool {
	return c.Len() == 0
}

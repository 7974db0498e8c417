// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"errors"
	"testing"
	"unsafe"

	"code.hybscloud.com/ringq"
)

// =============================================================================
// Construction
// =============================================================================

// TestNewValidCapacity tests that every power of two up to 65536 is accepted
// and reported back by Cap, including the degenerate capacity 1.
func TestNewValidCapacity(t *testing.T) {
	for capacity := 1; capacity <= 65536; capacity *= 2 {
		r, err := ringq.New[int](capacity)
		if err != nil {
			t.Fatalf("New(%d): %v", capacity, err)
		}
		if r.Cap() != capacity {
			t.Fatalf("New(%d).Cap() = %d, want %d", capacity, r.Cap(), capacity)
		}
	}
}

// TestNewInvalidCapacity tests that zero, negatives, and non-powers of two
// are rejected with an InvalidCapacityError carrying the rejected value.
func TestNewInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -16, 3, 5, 6, 7, 9, 15, 100, 1000, 65535} {
		_, err := ringq.New[int](capacity)
		if err == nil {
			t.Fatalf("New(%d): want error, got nil", capacity)
		}
		var ice *ringq.InvalidCapacityError
		if !errors.As(err, &ice) {
			t.Fatalf("New(%d): got %T, want *InvalidCapacityError", capacity, err)
		}
		if ice.Capacity != capacity {
			t.Fatalf("New(%d): error carries capacity %d", capacity, ice.Capacity)
		}
	}
}

// TestSplitOnce tests that a ring can be split exactly once.
func TestSplitOnce(t *testing.T) {
	r, err := ringq.New[int](8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p, c := r.Split()
	if p == nil || c == nil {
		t.Fatal("Split returned nil handle")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second Split")
		}
	}()
	r.Split()
}

// =============================================================================
// Push / Pop
// =============================================================================

// TestPushPop tests the literal capacity-4 scenario: three pushes succeed,
// the fourth fails, popping one frees a slot, and FIFO order holds across
// the wrap.
func TestPushPop(t *testing.T) {
	r, err := ringq.New[int](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	producer, consumer := r.Split()

	for _, v := range []int{1, 2, 3} {
		if err := producer.Push(&v); err != nil {
			t.Fatalf("Push(%d): %v", v, err)
		}
	}

	// Ring holds Cap-1 elements; the fourth push must fail.
	v := 4
	if err := producer.Push(&v); !errors.Is(err, ringq.ErrFull) {
		t.Fatalf("Push on full: got %v, want ErrFull", err)
	}
	if !producer.IsFull() {
		t.Fatal("IsFull: got false, want true")
	}

	got, err := consumer.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if got != 1 {
		t.Fatalf("Pop: got %d, want 1", got)
	}

	if err := producer.Push(&v); err != nil {
		t.Fatalf("Push(4) after Pop: %v", err)
	}

	for _, want := range []int{2, 3, 4} {
		got, err := consumer.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if got != want {
			t.Fatalf("Pop: got %d, want %d", got, want)
		}
	}

	if _, err := consumer.Pop(); !errors.Is(err, ringq.ErrEmpty) {
		t.Fatalf("Pop on empty: got %v, want ErrEmpty", err)
	}
}

// TestPopEmpty tests that an untouched ring reports empty.
func TestPopEmpty(t *testing.T) {
	r, _ := ringq.New[string](16)
	_, consumer := r.Split()

	if !consumer.IsEmpty() {
		t.Fatal("IsEmpty: got false, want true")
	}
	if consumer.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", consumer.Len())
	}
	if _, err := consumer.Pop(); !errors.Is(err, ringq.ErrEmpty) {
		t.Fatalf("Pop on empty: got %v, want ErrEmpty", err)
	}
}

// TestRejectedPushLeavesValue tests that a failed Push does not disturb
// the caller's element.
func TestRejectedPushLeavesValue(t *testing.T) {
	r, _ := ringq.New[[]int](2)
	producer, _ := r.Split()

	first := []int{1}
	if err := producer.Push(&first); err != nil {
		t.Fatalf("Push: %v", err)
	}

	rejected := []int{7, 8, 9}
	if err := producer.Push(&rejected); !errors.Is(err, ringq.ErrFull) {
		t.Fatalf("Push on full: got %v, want ErrFull", err)
	}
	if len(rejected) != 3 || rejected[0] != 7 || rejected[2] != 9 {
		t.Fatalf("rejected element modified: %v", rejected)
	}
}

// TestSingleSlotRing tests the capacity-1 ring: usable capacity is zero,
// so every push fails and the ring is permanently full and empty at once.
func TestSingleSlotRing(t *testing.T) {
	r, err := ringq.New[int](1)
	if err != nil {
		t.Fatalf("New(1): %v", err)
	}
	producer, consumer := r.Split()

	if !consumer.IsEmpty() {
		t.Fatal("IsEmpty: got false, want true")
	}
	if !producer.IsFull() {
		t.Fatal("IsFull: got false, want true")
	}
	if producer.RemainingCapacity() != 0 {
		t.Fatalf("RemainingCapacity: got %d, want 0", producer.RemainingCapacity())
	}

	v := 42
	if err := producer.Push(&v); !errors.Is(err, ringq.ErrFull) {
		t.Fatalf("Push: got %v, want ErrFull", err)
	}
}

// TestZeroValueElement tests that the zero value is a valid element
// distinct from empty.
func TestZeroValueElement(t *testing.T) {
	r, _ := ringq.New[int](4)
	producer, consumer := r.Split()

	zero := 0
	if err := producer.Push(&zero); err != nil {
		t.Fatalf("Push(0): %v", err)
	}
	got, err := consumer.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if got != 0 {
		t.Fatalf("Pop: got %d, want 0", got)
	}
}

// TestZeroSizedElement tests rings of struct{} elements.
func TestZeroSizedElement(t *testing.T) {
	r, _ := ringq.New[struct{}](16)
	producer, consumer := r.Split()

	for i := range 15 {
		if err := producer.Push(&struct{}{}); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if !producer.IsFull() {
		t.Fatal("IsFull: got false, want true")
	}
	for i := range 15 {
		if _, err := consumer.Pop(); err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
	}
}

// =============================================================================
// Len / RemainingCapacity
// =============================================================================

// TestLenRemainingInvariant tests the single-threaded snapshot invariant
// Len() + RemainingCapacity() == Cap()-1 through fills, drains, and wraps.
func TestLenRemainingInvariant(t *testing.T) {
	const capacity = 16
	r, _ := ringq.New[int](capacity)
	producer, consumer := r.Split()

	check := func(step string, wantLen int) {
		t.Helper()
		if got := consumer.Len(); got != wantLen {
			t.Fatalf("%s: Len = %d, want %d", step, got, wantLen)
		}
		if got := consumer.Len() + producer.RemainingCapacity(); got != capacity-1 {
			t.Fatalf("%s: Len+RemainingCapacity = %d, want %d", step, got, capacity-1)
		}
	}

	check("initial", 0)
	for i := range capacity - 1 {
		v := i
		if err := producer.Push(&v); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
		check("fill", i+1)
	}
	for i := range capacity - 1 {
		if _, err := consumer.Pop(); err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		check("drain", capacity-2-i)
	}

	// Once more after wrapping past the array end.
	for i := range 10 {
		v := i
		if err := producer.Push(&v); err != nil {
			t.Fatalf("wrap Push(%d): %v", i, err)
		}
		check("wrap", i+1)
	}
}

// =============================================================================
// Error classification
// =============================================================================

// TestErrorClassification tests that ErrFull and ErrEmpty read as
// would-block signals under the iox taxonomy.
func TestErrorClassification(t *testing.T) {
	for _, err := range []error{ringq.ErrFull, ringq.ErrEmpty} {
		if !ringq.IsWouldBlock(err) {
			t.Fatalf("IsWouldBlock(%v): got false, want true", err)
		}
		if !ringq.IsSemantic(err) {
			t.Fatalf("IsSemantic(%v): got false, want true", err)
		}
		if !ringq.IsNonFailure(err) {
			t.Fatalf("IsNonFailure(%v): got false, want true", err)
		}
	}
	if !ringq.IsNonFailure(nil) {
		t.Fatal("IsNonFailure(nil): got false, want true")
	}

	ice := &ringq.InvalidCapacityError{Capacity: 15}
	if ringq.IsWouldBlock(ice) {
		t.Fatal("IsWouldBlock(InvalidCapacityError): got true, want false")
	}
}

// =============================================================================
// Indirect and Ptr variants
// =============================================================================

// TestIndirectBasic tests RingIndirect push/pop, full, empty, and the
// zero value.
func TestIndirectBasic(t *testing.T) {
	r, err := ringq.NewIndirect(4)
	if err != nil {
		t.Fatalf("NewIndirect: %v", err)
	}
	if r.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", r.Cap())
	}
	producer, consumer := r.Split()

	for i := range 3 {
		if err := producer.Push(uintptr(i + 100)); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if err := producer.Push(999); !errors.Is(err, ringq.ErrFull) {
		t.Fatalf("Push on full: got %v, want ErrFull", err)
	}

	for i := range 3 {
		val, err := consumer.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if val != uintptr(i+100) {
			t.Fatalf("Pop(%d): got %d, want %d", i, val, i+100)
		}
	}
	if _, err := consumer.Pop(); !errors.Is(err, ringq.ErrEmpty) {
		t.Fatalf("Pop on empty: got %v, want ErrEmpty", err)
	}

	// Zero is a valid value distinct from empty.
	if err := producer.Push(0); err != nil {
		t.Fatalf("Push(0): %v", err)
	}
	val, err := consumer.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if val != 0 {
		t.Fatalf("Pop: got %d, want 0", val)
	}
}

// TestIndirectInvalidCapacity tests constructor validation for the
// uintptr variant.
func TestIndirectInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, 3, 15} {
		if _, err := ringq.NewIndirect(capacity); err == nil {
			t.Fatalf("NewIndirect(%d): want error, got nil", capacity)
		}
	}
}

// TestPtrBasic tests RingPtr push/pop with pointer identity and nil.
func TestPtrBasic(t *testing.T) {
	r, err := ringq.NewPtr(8)
	if err != nil {
		t.Fatalf("NewPtr: %v", err)
	}
	producer, consumer := r.Split()

	vals := []int{100, 200, 300}
	for i := range vals {
		if err := producer.Push(unsafe.Pointer(&vals[i])); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	// Verify FIFO order and pointer identity
	for i := range vals {
		ptr, err := consumer.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if ptr != unsafe.Pointer(&vals[i]) {
			t.Fatalf("Pop(%d): pointer mismatch", i)
		}
	}

	// nil is a valid pointer value.
	if err := producer.Push(nil); err != nil {
		t.Fatalf("Push(nil): %v", err)
	}
	ptr, err := consumer.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if ptr != nil {
		t.Fatalf("Pop: got %v, want nil", ptr)
	}
}

// TestVariantSplitOnce tests the one-time split guard on the indirect
// and ptr variants.
func TestVariantSplitOnce(t *testing.T) {
	t.Run("Indirect", func(t *testing.T) {
		r, _ := ringq.NewIndirect(4)
		r.Split()
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic on second Split")
			}
		}()
		r.Split()
	})

	t.Run("Ptr", func(t *testing.T) {
		r, _ := ringq.NewPtr(4)
		r.Split()
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic on second Split")
			}
		}()
		r.Split()
	})
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrFull indicates the ring has no free slot (backpressure).
//
// ErrFull is a control flow signal, not a failure. The rejected element
// stays with the caller, and the ring remains fully usable; retry later
// with a wait strategy of your choosing (spin, yield, backoff, or
// higher-level backpressure).
//
// ErrFull wraps [iox.ErrWouldBlock] for ecosystem consistency, so both
// errors.Is(err, ErrFull) and [IsWouldBlock] match it.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for producer.Push(&item) != nil {
//	    backoff.Wait()  // Adaptive backpressure
//	}
//	backoff.Reset()
var ErrFull = fmt.Errorf("ringq: ring full: %w", iox.ErrWouldBlock)

// ErrEmpty indicates the ring holds no element.
//
// Like [ErrFull] it is an expected, recoverable outcome rather than a
// failure, and it wraps [iox.ErrWouldBlock].
var ErrEmpty = fmt.Errorf("ringq: ring empty: %w", iox.ErrWouldBlock)

// InvalidCapacityError reports a rejected ring capacity.
//
// Returned by the constructors at creation time only; Push and Pop never
// produce it. The capacity must be greater than zero and an exact power
// of two.
type InvalidCapacityError struct {
	Capacity int
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("ringq: invalid capacity %d: must be a power of two greater than zero", e.Capacity)
}

// IsWouldBlock reports whether err indicates the operation would block
// (ring full or empty). Delegates to [iox.IsWouldBlock] for wrapped
// error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrFull, or ErrEmpty.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

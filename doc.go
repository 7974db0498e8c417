// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides a bounded wait-free single-producer
// single-consumer queue with split ownership handles.
//
// A [Ring] is built once and then divided by [Ring.Split] into a
// [Producer] and a [Consumer], which are moved to their respective
// goroutines. The split-handle design makes the SPSC contract part of
// the API: there is no way to obtain a second producer or consumer for
// the same ring, so exclusivity is established by construction instead
// of runtime checks.
//
// # Quick Start
//
//	r, err := ringq.New[Record](1024)
//	if err != nil {
//	    // capacity was not a power of two
//	}
//	producer, consumer := r.Split()
//
//	go func() { // ingestion stage
//	    backoff := iox.Backoff{}
//	    for rec := range input {
//	        for producer.Push(&rec) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // writer stage
//	    backoff := iox.Backoff{}
//	    for {
//	        rec, err := consumer.Pop()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        write(rec)
//	    }
//	}()
//
// # Algorithm
//
// The ring is a Lamport ring buffer with cached index optimization.
// Two counters drive it: head, the next write position, advanced only
// by the producer, and tail, the next read position, advanced only by
// the consumer. Capacity is a power of two, so positions wrap with a
// bitmask, and one slot stays permanently reserved to tell a full ring
// (head+1 == tail) from an empty one (head == tail).
//
// Each half reads its own counter with a relaxed load, publishes it
// with a release store, and issues an acquire load of the other side's
// counter only when its cached copy predicts the operation would fail.
// In the steady state both Push and Pop therefore touch only
// thread-local state; full synchronization happens only at true
// full/empty boundaries. Both counters live on their own cache line so
// the two goroutines never contend on a line for unrelated writes.
//
// Push and Pop are wait-free: each completes in a bounded number of
// steps regardless of the other goroutine's scheduling, holds no locks,
// and allocates nothing on the hot path.
//
// # Full and Empty
//
// Push and Pop never block. They return [ErrFull] and [ErrEmpty], both
// classified as would-block conditions via [code.hybscloud.com/iox],
// and the ring stays fully usable afterwards. A rejected Push leaves
// the element with the caller. Compose your own wait strategy from
// failed attempts:
//
//	backoff := iox.Backoff{}
//	for producer.Push(&v) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Length and Remaining Capacity
//
// [Consumer.Len] and [Producer.RemainingCapacity] are advisory
// snapshots. Each mixes a relaxed read of the caller's own counter with
// an acquire read of the other side's, and the result may be stale the
// instant the call returns while the counterpart runs. With no
// concurrent mutation, Len() + RemainingCapacity() == Cap()-1 always
// holds.
//
// # Variants
//
// Three ring flavors cover different payload strategies:
//
//	New[T]        - generic type-safe ring for any element type
//	NewIndirect   - ring of uintptr values (pool indices, handles)
//	NewPtr        - ring of unsafe.Pointer (zero-copy pointer passing)
//
// # Thread Safety
//
// Exactly one goroutine may use the Producer and exactly one goroutine
// may use the Consumer. The performance guarantee depends on this
// exclusivity; adding a second writer or reader on either handle is
// undefined behavior including data corruption, and it is not defended
// against at runtime.
//
// Both handles reference the ring's backing storage. The storage is
// reclaimed by the garbage collector after the last handle is dropped,
// whichever half that is.
//
// # Partitioned Pipelines
//
// The [code.hybscloud.com/ringq/topic] subpackage provides a small
// directory that maps topic names to partition counts and assigns keys
// to partitions by hashing. A broker-like pipeline gives every
// partition its own ring: the ingestion stage holds the producers, each
// per-partition writer holds one consumer.
//
// # Race Detection
//
// Go's race detector is not designed for lock-free algorithm
// verification. It tracks explicit synchronization primitives but
// cannot observe happens-before relationships established through
// atomic memory orderings on separate variables, so it may report false
// positives for correct acquire/release protocols. Tests incompatible
// with race detection are skipped via [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering. Tests additionally use [code.hybscloud.com/spin]
// for CPU pause loops.
package ringq

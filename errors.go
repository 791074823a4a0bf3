// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pq

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// InvalidArgument is returned when a message or buffer argument is nil, out
// of range, or otherwise malformed, when NewQueue is given invalid Attrs, and
// when Close is called on a nil *Queue. The other Queue methods do not check
// for a nil receiver. Validation errors are reported before any queue state
// is touched.
var InvalidArgument = errors.New("pq: invalid argument")

// OutOfMemory names an allocation failure during queue creation. No function
// in this package returns it: NewQueue allocates with make, and a failed Go
// allocation panics instead of returning an error.
var OutOfMemory = errors.New("pq: out of memory")

// MessageTooBig is returned by a send when the message's Size exceeds the
// queue's MsgSize.
var MessageTooBig = errors.New("pq: message too big")

// ErrTimeout is returned by a timed send/receive whose deadline expired
// while its predicate (not-full / not-empty) remained unmet.
var ErrTimeout = errors.New("pq: timeout")

// TryAgain indicates a non-blocking operation could not proceed immediately:
// the queue was full (send) or empty (receive).
//
// TryAgain is a control flow signal, not a failure; the caller should retry
// later, fall back to a blocking variant, or apply backpressure. This is an
// alias for [iox.ErrWouldBlock] for ecosystem consistency.
var TryAgain = iox.ErrWouldBlock

// IsTryAgain reports whether err indicates the operation would have
// blocked. Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsTryAgain(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsTimeout reports whether err is (or wraps) [ErrTimeout].
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// PrimitiveError wraps a failure returned by an underlying mutex or
// condition-variable primitive. Go's sync.Mutex and sync.Cond never fail on
// their own, so in practice PrimitiveError is unreachable through the public
// API; it exists so the error taxonomy has a place for a primitive failure
// to surface without inventing a new sentinel, matching the source this
// package is ported from.
type PrimitiveError struct {
	Code error
}

func (e *PrimitiveError) Error() string {
	return fmt.Sprintf("pq: primitive error: %v", e.Code)
}

func (e *PrimitiveError) Unwrap() error {
	return e.Code
}

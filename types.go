// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pq

// Order selects the ordering discipline used by a Queue. It is fixed at
// creation and never changes for the lifetime of the queue.
type Order uint8

const (
	// PRIFO orders by descending priority; equal-priority messages are
	// returned in the order they were sent (FIFO within a priority band).
	PRIFO Order = iota
	// PRIOQ orders by descending priority using heap order; equal-priority
	// messages carry no FIFO guarantee.
	PRIOQ
	// FIFO ignores priority for ordering purposes; messages are returned in
	// the order they were sent. Priority is still carried on the message.
	FIFO
	// LIFO ignores priority for ordering purposes; messages are returned in
	// reverse of the order they were sent (a stack). Priority is still
	// carried on the message.
	LIFO
)

// String returns the name of the ordering discipline.
func (o Order) String() string {
	switch o {
	case PRIFO:
		return "PRIFO"
	case PRIOQ:
		return "PRIOQ"
	case FIFO:
		return "FIFO"
	case LIFO:
		return "LIFO"
	default:
		return "Order(unknown)"
	}
}

// maxIndex is the largest value a slot count, payload size, or priority may
// take: 2^16-1, matching the width of the original fixed-width counters.
const maxIndex = 1<<16 - 1

// Attrs describes the immutable configuration of a Queue. All fields are
// validated by NewQueue; a Queue never observes a change to its own Attrs.
type Attrs struct {
	// MaxMsg is the slot count (capacity), in [1, 65535].
	MaxMsg int
	// MsgSize is the maximum payload size in bytes, in [1, 65535].
	MsgSize int
	// MaxPrio is the highest priority value a message may carry, in
	// [0, 65535]. Higher values denote higher priority.
	MaxPrio uint32
	// Order selects the ordering discipline.
	Order Order
}

func (a Attrs) validate() error {
	if a.MaxMsg < 1 || a.MaxMsg > maxIndex {
		return InvalidArgument
	}
	if a.MsgSize < 1 || a.MsgSize > maxIndex {
		return InvalidArgument
	}
	if a.MaxPrio > maxIndex {
		return InvalidArgument
	}
	switch a.Order {
	case PRIFO, PRIOQ, FIFO, LIFO:
	default:
		return InvalidArgument
	}
	return nil
}

// Message is a value carried end to end through a Queue.
//
// On send, Payload[:Size] is copied into the queue's internal storage; the
// caller may reuse or discard Payload immediately after the call returns.
//
// On receive, Payload must be a caller-supplied buffer with capacity of at
// least the queue's MsgSize; the queue copies the delivered bytes into it
// and sets Size and Prio to describe what was written. No queue operation
// retains a reference to a caller's Payload slice past its own return.
type Message struct {
	Payload []byte
	Size    int
	Prio    uint32
}

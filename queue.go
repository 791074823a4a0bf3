// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pq

import "time"

// Queue is a bounded, thread-safe message queue. Any number of producers
// and consumers may call any operation on the same Queue concurrently.
//
// Invariants that hold after every operation returns:
//
//   - fill is always in [0, Attrs.MaxMsg].
//   - every occupied slot has size <= Attrs.MsgSize and prio <= Attrs.MaxPrio.
//   - the occupied prefix of the message store satisfies the ordering
//     discipline selected at creation (max-heap for PRIOQ, ascending sorted
//     with the highest priority last and FIFO ties for PRIFO, ring for FIFO,
//     stack for LIFO).
type Queue struct {
	attrs Attrs
	st    *store
	mon   *monitor

	fill int
	head int
	tail int
}

// NewQueue creates a queue with the given attributes. Every slot and its
// payload buffer are pre-allocated immediately; no allocation occurs on the
// send or receive fast path afterward.
//
// Returns InvalidArgument if attrs is malformed.
func NewQueue(attrs Attrs) (*Queue, error) {
	if err := attrs.validate(); err != nil {
		return nil, err
	}
	q := &Queue{
		attrs: attrs,
		st:    newStore(attrs.MaxMsg, attrs.MsgSize),
		mon:   newMonitor(),
	}
	return q, nil
}

// Close releases the queue's resources. Go's garbage collector reclaims the
// slot array and payload buffers once unreferenced, so Close has nothing to
// free on its own; it exists to mirror the create/destroy lifecycle and to
// give callers an explicit point to stop using the queue.
//
// Calling Close while other goroutines are blocked in a timed send/receive,
// or concurrently using the queue, is undefined behavior: the caller is
// responsible for quiescing the queue first.
//
// Returns InvalidArgument if q is nil.
func (q *Queue) Close() error {
	if q == nil {
		return InvalidArgument
	}
	return nil
}

func validateCommon(maxPrio uint32, msg Message) error {
	if msg.Payload == nil {
		return InvalidArgument
	}
	if msg.Prio > maxPrio {
		return InvalidArgument
	}
	return nil
}

// SendNonBlocking enqueues msg without blocking.
//
// Returns InvalidArgument if msg.Payload is nil or msg.Prio exceeds
// Attrs.MaxPrio, MessageTooBig if msg.Size exceeds Attrs.MsgSize, or
// TryAgain if the queue is full.
func (q *Queue) SendNonBlocking(msg Message) error {
	if err := validateCommon(q.attrs.MaxPrio, msg); err != nil {
		return err
	}
	if msg.Size > q.attrs.MsgSize {
		return MessageTooBig
	}

	q.mon.mu.Lock()
	defer q.mon.mu.Unlock()

	if q.fill == q.attrs.MaxMsg {
		return TryAgain
	}
	q.insert(msg.Payload[:msg.Size], msg.Prio)
	q.mon.signalNotEmpty()
	return nil
}

// RecvNonBlocking dequeues into msg without blocking. msg.Payload must be a
// caller-supplied buffer with capacity at least Attrs.MsgSize; on success
// msg.Size and msg.Prio are set to describe what was written into it.
//
// Returns InvalidArgument if msg.Payload is nil, or TryAgain if the queue
// is empty.
func (q *Queue) RecvNonBlocking(msg *Message) error {
	if msg == nil || msg.Payload == nil {
		return InvalidArgument
	}

	q.mon.mu.Lock()
	defer q.mon.mu.Unlock()

	if q.fill == 0 {
		return TryAgain
	}
	q.remove(msg)
	q.mon.signalNotFull()
	return nil
}

// SendTimed enqueues msg, blocking while the queue is full.
//
// timeout == TimeoutZero behaves exactly like SendNonBlocking. timeout ==
// TimeoutInf blocks until room is available. Any other value is a deadline
// relative to the moment SendTimed enters the monitor; if it expires while
// the queue remains full, SendTimed returns ErrTimeout.
func (q *Queue) SendTimed(msg Message, timeout Timeout) error {
	if timeout == TimeoutZero {
		return q.SendNonBlocking(msg)
	}
	if err := validateCommon(q.attrs.MaxPrio, msg); err != nil {
		return err
	}
	if msg.Size > q.attrs.MsgSize {
		return MessageTooBig
	}

	q.mon.mu.Lock()
	defer q.mon.mu.Unlock()

	infinite := timeout == TimeoutInf
	deadline := deadlineFrom(time.Now(), timeout)

	predicate := func() bool { return q.fill < q.attrs.MaxMsg }
	if err := q.mon.waitFor(q.mon.notFull, &q.mon.waitingToSend, infinite, deadline, predicate); err != nil {
		return err
	}

	q.insert(msg.Payload[:msg.Size], msg.Prio)
	q.mon.signalNotEmpty()
	return nil
}

// RecvTimed dequeues into msg, blocking while the queue is empty. msg.Payload
// must be a caller-supplied buffer with capacity at least Attrs.MsgSize.
//
// timeout == TimeoutZero behaves exactly like RecvNonBlocking. timeout ==
// TimeoutInf blocks until a message is available. Any other value is a
// deadline relative to the moment RecvTimed enters the monitor; if it
// expires while the queue remains empty, RecvTimed returns ErrTimeout.
func (q *Queue) RecvTimed(msg *Message, timeout Timeout) error {
	if timeout == TimeoutZero {
		return q.RecvNonBlocking(msg)
	}
	if msg == nil || msg.Payload == nil {
		return InvalidArgument
	}

	q.mon.mu.Lock()
	defer q.mon.mu.Unlock()

	infinite := timeout == TimeoutInf
	deadline := deadlineFrom(time.Now(), timeout)

	predicate := func() bool { return q.fill > 0 }
	if err := q.mon.waitFor(q.mon.notEmpty, &q.mon.waitingToRecv, infinite, deadline, predicate); err != nil {
		return err
	}

	q.remove(msg)
	q.mon.signalNotFull()
	return nil
}

// Fill reports the current number of messages in the queue.
func (q *Queue) Fill() int {
	q.mon.mu.Lock()
	defer q.mon.mu.Unlock()
	return q.fill
}

// Waiting reports the number of goroutines currently blocked in a timed
// send and a timed receive, respectively. It exists for test
// synchronization checkpoints; production code must not make decisions
// based on these counts, since they are only meaningful while the monitor
// is held.
func (q *Queue) Waiting() (waitingToSend, waitingToRecv int) {
	q.mon.mu.Lock()
	defer q.mon.mu.Unlock()
	return q.mon.waitingToSend, q.mon.waitingToRecv
}

// insert dispatches to the ordering strategy selected at creation. Assumes
// q.fill < q.attrs.MaxMsg and the monitor is held.
func (q *Queue) insert(payload []byte, prio uint32) {
	switch q.attrs.Order {
	case PRIOQ:
		q.insertPrioq(payload, prio)
	case PRIFO:
		q.insertPrifo(payload, prio)
	case FIFO:
		q.insertFifo(payload, prio)
	case LIFO:
		q.insertLifo(payload, prio)
	}
}

// remove dispatches to the ordering strategy selected at creation. Assumes
// q.fill > 0 and the monitor is held.
func (q *Queue) remove(msg *Message) {
	switch q.attrs.Order {
	case PRIOQ:
		q.removePrioq(msg)
	case PRIFO:
		q.removePrifo(msg)
	case FIFO:
		q.removeFifo(msg)
	case LIFO:
		q.removeLifo(msg)
	}
}

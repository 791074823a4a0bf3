// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pq provides a bounded, thread-safe message queue supporting four
// interchangeable ordering disciplines.
//
// # Orderings
//
//   - PRIFO: priority-first, ties broken by insertion order (FIFO within a
//     priority band).
//   - PRIOQ: priority-first, ties broken by heap order (no FIFO guarantee
//     within a priority band).
//   - FIFO: first-in-first-out; priority is carried but not consulted.
//   - LIFO: last-in-first-out (stack); priority is carried but not consulted.
//
// # Quick Start
//
//	q, err := pq.NewQueue(pq.Attrs{
//	    MaxMsg:  64,
//	    MsgSize: 256,
//	    MaxPrio: 9,
//	    Order:   pq.PRIFO,
//	})
//	if err != nil {
//	    // handle err
//	}
//	defer q.Close()
//
//	err = q.SendNonBlocking(pq.Message{Payload: []byte("hello"), Size: 5, Prio: 1})
//	if pq.IsTryAgain(err) {
//	    // queue full
//	}
//
//	var got pq.Message
//	got.Payload = make([]byte, 256)
//	err = q.RecvNonBlocking(&got)
//
// # Blocking variants
//
// SendTimed and RecvTimed accept a [Timeout] expressed as a scalar multiple
// of 1/[Resolution] seconds. [TimeoutZero] behaves exactly like the
// non-blocking variant; [TimeoutInf] blocks until the operation can proceed.
// Any other value is a deadline relative to the moment the call enters the
// queue's monitor.
//
//	err = q.SendTimed(msg, pq.Timeout(500)) // wait up to 500ms
//
// # Concurrency
//
// Any number of producers and consumers may call any operation on the same
// Queue concurrently. A single mutex plus two condition variables (one per
// direction) coordinate blocking callers; see [Queue] for the invariants
// that hold across every interleaving.
//
// # Non-goals
//
// Persistence, inter-process transport, dynamic reconfiguration of capacity
// or ordering, priority aging, and message copy elision are out of scope.
// Messages are always copied in on send and copied out on receive.
package pq

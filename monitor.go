// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pq

import (
	"sync"
	"time"
)

// monitor is the mutual-exclusion and signalling core shared by every
// Queue: one mutex protecting all mutable queue state, plus two condition
// variables associated with the predicates "not full" and "not empty".
//
// Go's sync.Mutex is not reentrant. The design does not require
// reentrance — no queue operation calls another queue operation while
// holding the monitor — so a plain mutex is sufficient.
type monitor struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	waitingToSend int
	waitingToRecv int
}

func newMonitor() *monitor {
	m := &monitor{}
	m.notFull = sync.NewCond(&m.mu)
	m.notEmpty = sync.NewCond(&m.mu)
	return m
}

// signalNotEmpty wakes exactly one blocked receiver, if any. Caller must
// hold m.mu. A single successful insert satisfies at most one receiver, so
// Signal (not Broadcast) is sufficient.
func (m *monitor) signalNotEmpty() {
	if m.waitingToRecv > 0 {
		m.notEmpty.Signal()
	}
}

// signalNotFull wakes exactly one blocked sender, if any. Caller must hold
// m.mu.
func (m *monitor) signalNotFull() {
	if m.waitingToSend > 0 {
		m.notFull.Signal()
	}
}

// waitFor blocks on cond, rechecking predicate after every wakeup, until
// either predicate reports true or the deadline passes. Caller must hold
// m.mu; waitFor releases it only inside cond.Wait.
//
// When infinite is true, deadline is ignored and the wait has no timeout.
// Otherwise a one-shot timer broadcasts cond at the deadline so that a
// waiter blocked past its deadline is woken; a spurious wakeup (or a wakeup
// racing the timer) that finds predicate still false re-enters the wait
// against the same, un-reset deadline.
func (m *monitor) waitFor(cond *sync.Cond, waiting *int, infinite bool, deadline time.Time, predicate func() bool) error {
	var timer *time.Timer
	if !infinite {
		d := time.Until(deadline)
		if d < 0 {
			d = 0
		}
		timer = time.AfterFunc(d, func() {
			m.mu.Lock()
			cond.Broadcast()
			m.mu.Unlock()
		})
		defer timer.Stop()
	}

	for {
		if predicate() {
			return nil
		}
		if !infinite && !time.Now().Before(deadline) {
			return ErrTimeout
		}
		*waiting++
		cond.Wait()
		*waiting--
	}
}

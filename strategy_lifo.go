// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pq

// insertLifo pushes onto the stack. Assumes q.fill < q.attrs.MaxMsg and the
// monitor is held. Priority is carried on the message but never consulted
// for ordering.
//
// Complexity: O(1).
func (q *Queue) insertLifo(payload []byte, prio uint32) {
	i := q.fill
	q.st.put(i, payload, prio)
	q.fill++
}

// removeLifo pops the stack. Assumes q.fill > 0 and the monitor is held.
//
// Complexity: O(1).
func (q *Queue) removeLifo(msg *Message) {
	q.fill--
	n, prio := q.st.take(q.fill, msg.Payload)
	msg.Size, msg.Prio = n, prio
}

// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pq

// insertPrifo inserts into the ascending-by-priority sorted array. Assumes
// q.fill < q.attrs.MaxMsg and the monitor is held.
//
// The insertion point is the first slot whose stored priority is greater
// than or equal to the new message's priority: a new message therefore lands
// at the lowest index of its priority band, below the older messages of the
// same priority, so removing from the tail (index fill-1) yields the highest
// priority first, FIFO within a band.
//
// Complexity: O(N).
func insertPrifoIndex(q *Queue, prio uint32) int {
	i := 0
	for ; i < q.fill; i++ {
		if q.st.prioAt(i) >= prio {
			break
		}
	}
	return i
}

func (q *Queue) insertPrifo(payload []byte, prio uint32) {
	at := insertPrifoIndex(q, prio)
	rotate := q.fill - at
	q.st.shiftUpFrom(at, rotate)
	q.st.put(at, payload, prio)
	q.fill++
}

// removePrifo removes the tail of the sorted array: the highest priority is
// stored last. Assumes q.fill > 0 and the monitor is held.
//
// Complexity: O(1).
func (q *Queue) removePrifo(msg *Message) {
	q.fill--
	n, prio := q.st.take(q.fill, msg.Payload)
	msg.Size, msg.Prio = n, prio
}

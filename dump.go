// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pq

import (
	"fmt"
	"io"
)

// Dump writes the queue's configuration and each occupied slot's priority,
// size, and payload bytes, in slot-index order, to w. It acquires the
// monitor for the duration of the write, so a slow writer blocks every
// concurrent sender and receiver; this is a diagnostic aid, not a fast path.
func (q *Queue) Dump(w io.Writer) error {
	q.mon.mu.Lock()
	defer q.mon.mu.Unlock()

	if _, err := fmt.Fprintf(w, "queue %p (%d messages of %d bytes, order=%s)\n",
		q, q.attrs.MaxMsg, q.attrs.MsgSize, q.attrs.Order); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "fill=%d\n", q.fill); err != nil {
		return err
	}
	for i := 0; i < q.attrs.MaxMsg; i++ {
		off := i
		if q.attrs.Order == FIFO {
			off = (i - q.head + q.attrs.MaxMsg) % q.attrs.MaxMsg
		}
		if off >= q.fill {
			continue
		}
		sl := &q.st.slots[i]
		if _, err := fmt.Fprintf(w, "%3d: prio %d, size %d { % x }\n", i, sl.prio, sl.size, sl.buf[:sl.size]); err != nil {
			return err
		}
	}
	return nil
}

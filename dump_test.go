// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pq_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/qmon/pq"
)

func TestDump(t *testing.T) {
	q := mustQueue(t, pq.Attrs{MaxMsg: 2, MsgSize: 4, MaxPrio: 1, Order: pq.FIFO})
	if err := q.SendNonBlocking(pq.Message{Payload: []byte("hi"), Size: 2, Prio: 1}); err != nil {
		t.Fatalf("send: %v", err)
	}

	var buf bytes.Buffer
	if err := q.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "fill=1") {
		t.Fatalf("Dump output missing fill: %q", out)
	}
	if !strings.Contains(out, "prio 1") {
		t.Fatalf("Dump output missing priority: %q", out)
	}
}

// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pq

import "testing"

func TestStoreSwapSelfIsNoop(t *testing.T) {
	s := newStore(4, 8)
	s.put(0, []byte("abc"), 7)
	before := s.slots[0]
	s.swap(0, 0)
	after := s.slots[0]
	if before.size != after.size || before.prio != after.prio || string(before.buf) != string(after.buf) {
		t.Fatalf("swap(i,i) mutated slot: before %+v, after %+v", before, after)
	}
}

func TestStoreSwapExchangesRecords(t *testing.T) {
	s := newStore(4, 8)
	s.put(0, []byte("first"), 1)
	s.put(1, []byte("second"), 2)

	s.swap(0, 1)

	dst := make([]byte, 8)
	n, prio := s.take(0, dst)
	if string(dst[:n]) != "second" || prio != 2 {
		t.Fatalf("slot 0 after swap: got %q prio %d", dst[:n], prio)
	}
	n, prio = s.take(1, dst)
	if string(dst[:n]) != "first" || prio != 1 {
		t.Fatalf("slot 1 after swap: got %q prio %d", dst[:n], prio)
	}
}

func TestStoreShiftUpFromPreservesBufferOwnership(t *testing.T) {
	s := newStore(5, 8)
	s.put(0, []byte("a"), 0)
	s.put(1, []byte("b"), 1)
	s.put(2, []byte("c"), 2)

	// Shift slots [0,3) up by one, as PRIFO insertion would before writing
	// a new message into slot 0.
	s.shiftUpFrom(0, 3)

	dst := make([]byte, 8)
	for i, want := range []string{"a", "b", "c"} {
		n, _ := s.take(i+1, dst)
		if string(dst[:n]) != want {
			t.Fatalf("slot %d after shift: got %q, want %q", i+1, dst[:n], want)
		}
	}

	// Every slot must still own a distinct buffer of the configured size.
	seen := make(map[*byte]bool)
	for i := range s.slots {
		if len(s.slots[i].buf) != 8 {
			t.Fatalf("slot %d buffer capacity: got %d, want 8", i, len(s.slots[i].buf))
		}
		ptr := &s.slots[i].buf[0]
		if seen[ptr] {
			t.Fatalf("slot %d shares a buffer with another slot", i)
		}
		seen[ptr] = true
	}
}

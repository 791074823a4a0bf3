// Copyright (c) 2026 pq authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pq

// Builder creates queues with fluent configuration, mirroring the Attrs
// record one field at a time. It is equivalent to building an Attrs value
// directly; use whichever reads better at the call site.
//
// Example:
//
//	q, err := pq.New(64, 256).MaxPrio(9).PRIFO().Build()
type Builder struct {
	attrs Attrs
}

// New creates a Builder with the given slot count and per-message payload
// capacity. The default ordering is PRIFO and the default MaxPrio is 0.
func New(maxMsg, msgSize int) *Builder {
	return &Builder{attrs: Attrs{MaxMsg: maxMsg, MsgSize: msgSize, Order: PRIFO}}
}

// MaxPrio sets the highest priority value a message may carry.
func (b *Builder) MaxPrio(maxPrio uint32) *Builder {
	b.attrs.MaxPrio = maxPrio
	return b
}

// Order sets the ordering discipline directly.
func (b *Builder) Order(order Order) *Builder {
	b.attrs.Order = order
	return b
}

// PRIFO selects priority-first ordering with FIFO ties.
func (b *Builder) PRIFO() *Builder { b.attrs.Order = PRIFO; return b }

// PRIOQ selects priority-first ordering with heap-order ties.
func (b *Builder) PRIOQ() *Builder { b.attrs.Order = PRIOQ; return b }

// FIFO selects first-in-first-out ordering.
func (b *Builder) FIFO() *Builder { b.attrs.Order = FIFO; return b }

// LIFO selects last-in-first-out (stack) ordering.
func (b *Builder) LIFO() *Builder { b.attrs.Order = LIFO; return b }

// Attrs returns the configured attributes without creating a queue.
func (b *Builder) Attrs() Attrs {
	return b.attrs
}

// Build creates the queue, returning InvalidArgument if the configuration
// is malformed.
func (b *Builder) Build() (*Queue, error) {
	return NewQueue(b.attrs)
}

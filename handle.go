// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package mpmc

import "sync"

// Producer is a shared-ownership handle for sending values into a
// Ring. It may be cloned and shared across goroutines freely; each
// clone is an independent handle that must eventually be Closed.
type Producer[T any] struct {
	r      *ring[T]
	closed sync.Once
}

// Consumer is a shared-ownership handle for receiving values out of a
// Ring. It may be cloned and shared across goroutines freely; each
// clone is an independent handle that must eventually be Closed.
type Consumer[T any] struct {
	r      *ring[T]
	closed sync.Once
}

// New creates a capacity-N queue and returns one Producer and one
// Consumer handle against it. capacity must be at least 1.
//
// Additional handles on either side are obtained by calling Clone on
// the returned Producer or Consumer; the queue stays alive as long as
// at least one handle of either kind is outstanding.
func New[T any](capacity uint64) (*Producer[T], *Consumer[T]) {
	if capacity < 1 {
		panic("mpmc: capacity must be at least 1")
	}

	r := newRing[T](capacity)
	r.producers.Add(1)
	r.consumers.Add(1)

	return &Producer[T]{r: r}, &Consumer[T]{r: r}
}

// Send deposits value into the queue, blocking the calling goroutine
// until a slot is free. It returns a *SendError[T] carrying value back
// if the consumer side has fully hung up.
func (p *Producer[T]) Send(value T) error {
	return p.r.write(value)
}

// TrySend attempts to deposit value without blocking. It returns a
// *SendError[T] carrying value back if the queue is full (would-block)
// or the consumer side has fully hung up.
func (p *Producer[T]) TrySend(value T) error {
	return p.r.tryWrite(value)
}

// Clone returns a new, independent Producer handle against the same
// queue. The queue's producer count is incremented accordingly.
func (p *Producer[T]) Clone() *Producer[T] {
	p.r.producers.Add(1)
	return &Producer[T]{r: p.r}
}

// Close releases this handle. If it is the last live Producer handle,
// the consumer side's readable gate is signalled unconditionally so
// that any Consumer parked in a blocking Recv re-checks the hang-up
// condition and unwinds with an error instead of sleeping forever.
//
// Close is idempotent: calling it more than once on the same handle
// has no additional effect.
func (p *Producer[T]) Close() error {
	p.closed.Do(func() {
		if p.r.producers.Add(-1) == 0 {
			p.r.readable.set()
		}
	})
	return nil
}

// Recv extracts the next value from the queue, blocking the calling
// goroutine until one is available. It returns a *RecvError if the
// producer side has fully hung up and no value remains reachable.
func (c *Consumer[T]) Recv() (T, error) {
	return c.r.read()
}

// TryRecv attempts to extract a value without blocking. It returns a
// *RecvError with CauseWouldBlock if the queue is empty, or
// CauseHungUp if the producer side has fully hung up.
func (c *Consumer[T]) TryRecv() (T, error) {
	return c.r.tryRead()
}

// Clone returns a new, independent Consumer handle against the same
// queue. The queue's consumer count is incremented accordingly.
func (c *Consumer[T]) Clone() *Consumer[T] {
	c.r.consumers.Add(1)
	return &Consumer[T]{r: c.r}
}

// Close releases this handle. If it is the last live Consumer handle,
// the producer side's writable gate is signalled unconditionally so
// that any Producer parked in a blocking Send re-checks the hang-up
// condition and unwinds with an error instead of sleeping forever.
//
// Close is idempotent: calling it more than once on the same handle
// has no additional effect.
func (c *Consumer[T]) Close() error {
	c.closed.Do(func() {
		if c.r.consumers.Add(-1) == 0 {
			c.r.writable.set()
		}
	})
	return nil
}

// Iter returns a blocking iterator view that borrows this Consumer: it
// yields values until the queue hangs up, at which point it fuses
// (every subsequent step also reports end-of-stream).
func (c *Consumer[T]) Iter() *Iter[T] {
	return newIter(c)
}

// TryIter returns a draining iterator view that borrows this Consumer:
// it yields values until the queue is empty or hung up, at which point
// it fuses.
func (c *Consumer[T]) TryIter() *TryIter[T] {
	return newTryIter(c)
}

// IntoIter consumes this Consumer handle and returns a blocking
// iterator view that owns it: the handle is Closed automatically once
// the iterator fuses. An iterator that is discarded before it fuses
// does not Close the handle.
func (c *Consumer[T]) IntoIter() *Iter[T] {
	it := newIter(c)
	it.owns = true
	return it
}

// IntoTryIter consumes this Consumer handle and returns a draining
// iterator view that owns it, analogous to IntoIter.
func (c *Consumer[T]) IntoTryIter() *TryIter[T] {
	it := newTryIter(c)
	it.owns = true
	return it
}

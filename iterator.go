// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package mpmc

// Iter is a lazy, fused sequence over a Consumer's blocking Recv: each
// step calls Recv, yielding a value on success and terminating on any
// error (the queue has hung up). Once terminated, it stays terminated
// even if a producer later enqueues more items.
type Iter[T any] struct {
	c    *Consumer[T]
	owns bool
	done bool
}

func newIter[T any](c *Consumer[T]) *Iter[T] {
	return &Iter[T]{c: c}
}

// Next advances the iterator. The second return value is false once
// the iterator has fused; it is never true again afterward.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}

	v, err := it.c.Recv()
	if err != nil {
		it.done = true
		if it.owns {
			_ = it.c.Close()
		}
		return zero, false
	}
	return v, true
}

// All returns a range-over-func sequence equivalent to repeatedly
// calling Next, for use with Go's "for v := range it.All()" iteration
// form.
func (it *Iter[T]) All() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TryIter is a lazy, fused sequence over a Consumer's non-blocking
// TryRecv: each step calls TryRecv, yielding a value on success and
// terminating on any error (the queue is empty, or has hung up). Once
// terminated, it stays terminated.
type TryIter[T any] struct {
	c    *Consumer[T]
	owns bool
	done bool
}

func newTryIter[T any](c *Consumer[T]) *TryIter[T] {
	return &TryIter[T]{c: c}
}

// Next advances the iterator. The second return value is false once
// the iterator has fused; it is never true again afterward.
func (it *TryIter[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}

	v, err := it.c.TryRecv()
	if err != nil {
		it.done = true
		if it.owns {
			_ = it.c.Close()
		}
		return zero, false
	}
	return v, true
}

// All returns a range-over-func sequence equivalent to repeatedly
// calling Next.
func (it *TryIter[T]) All() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

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

// gate is a level-triggered wait primitive: a single boolean predicate
// guarded by a mutex and signalled through a condition variable. It is
// the Go realization of the Gate described by the design: the
// standard-library sync.Mutex/sync.Cond pair is the direct counterpart
// of parking_lot's Mutex/Condvar used by the original implementation;
// no third-party synchronization primitive in the surrounding module
// set does anything this pair doesn't already do correctly.
type gate struct {
	mu   sync.Mutex
	cond *sync.Cond
	set_ bool
}

func newGate(initial bool) *gate {
	g := &gate{set_: initial}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// wait blocks the calling goroutine until the predicate is true. It
// re-checks under the lock after every wakeup, so a spurious wakeup
// (or a wakeup racing a reset by another goroutine) never lets a
// caller proceed against a false predicate.
func (g *gate) wait() {
	g.mu.Lock()
	for !g.set_ {
		g.cond.Wait()
	}
	g.mu.Unlock()
}

// set makes the predicate true and wakes exactly one waiter. Waking
// only one (never Broadcast) matters for correctness here: the Ring
// treats each value transferred as one unit of work, and waking every
// parked goroutine for one unit of progress would cause a thundering
// herd where all but one goroutine re-block immediately.
func (g *gate) set() {
	g.mu.Lock()
	g.set_ = true
	g.mu.Unlock()
	g.cond.Signal()
}

// reset makes the predicate false. It never wakes anyone.
func (g *gate) reset() {
	g.mu.Lock()
	g.set_ = false
	g.mu.Unlock()
}

// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

package mpmc

import "sync/atomic"

// slot is one storage cell plus its occupancy flag, the elementary
// unit of the ring. A slot holds a live value if and only if occupied
// is true. Reads and writes of data are only ever performed by
// whichever side currently has logical ownership of the slot, which
// Ring establishes through the cursor-claim protocol before touching
// data at all.
//
// Go's garbage collector retires the value held in data once the
// owning Ring becomes unreachable, which is this module's realization
// of "the Slot's destructor drops the value iff occupied"; there is
// no manual placement-new/drop pair to write by hand the way the
// original Rust implementation needs one.
type slot[T any] struct {
	occupied atomic.Bool
	data     T
}

// isOccupied reads the occupancy flag. The atomic load pairs with the
// release-store in setOccupied(true) performed by the depositing
// producer, making the value written into data visible to whichever
// consumer observes occupied to be true.
func (s *slot[T]) isOccupied() bool {
	return s.occupied.Load()
}

// setOccupied flips the occupancy flag. Setting it true publishes the
// value just written into data; setting it false publishes that the
// cell has been drained and may be reused by a future producer.
func (s *slot[T]) setOccupied(v bool) {
	s.occupied.Store(v)
}

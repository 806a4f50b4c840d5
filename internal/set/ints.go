// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set

import "math/bits"

// Bits represents a set of bit positions within the range of 0..63.
// Its value is the union of the bits it contains.
type Bits uint64

// Add inserts every bit set in v.
func (bs *Bits) Add(v uint64) {
	*(*uint64)(bs) |= v
}

// Overlaps reports whether any bit set in v is already in the set.
func (bs *Bits) Overlaps(v uint64) bool {
	return uint64(*bs)&v != 0
}

// LowestUnset returns the lowest position below width that is not in the set.
func (bs *Bits) LowestUnset(width int) (uint64, bool) {
	n := uint64(bits.TrailingZeros64(^uint64(*bs)))
	if n >= uint64(width) {
		return 0, false
	}
	return n, true
}

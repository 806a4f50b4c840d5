// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package set provides simple set data structures for bit positions and
// string types.
//
// Bits collects the bits claimed by flag values:
//
//	// Add inserts every bit set in v.
//	func (*Bits) Add(v uint64)
//
//	// Overlaps reports whether any bit set in v is already in the set.
//	func (*Bits) Overlaps(v uint64) bool
//
//	// LowestUnset returns the lowest position below width not in the set.
//	func (*Bits) LowestUnset(width int) (uint64, bool)
//
// Strings collects names:
//
//	func (*Strings) Len() int
//	func (*Strings) Set(string)
//	func (*Strings) Sorted() []string
package set

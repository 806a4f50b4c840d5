// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set

import "sort"

// Strings represents a set of strings.
type Strings map[string]struct{}

func (ss *Strings) Len() int {
	return len(*ss)
}
func (ss *Strings) Set(s string) {
	if *ss == nil {
		*ss = make(map[string]struct{})
	}
	(*ss)[s] = struct{}{}
}

// Sorted returns the elements in increasing order.
func (ss *Strings) Sorted() []string {
	out := make([]string, 0, len(*ss))
	for s := range *ss {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testflags holds generated flag types used to test the behavior of
// generated code.
package testflags

//go:generate go run github.com/golang/bitflags/cmd/flagsgen perm.flags access.flags

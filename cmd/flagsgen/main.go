// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The flagsgen binary generates Go bit-flag types from declaration files.
//
// It is typically invoked from a go:generate directive:
//
//	//go:generate flagsgen perm.flags
//
// which writes perm_flags.go next to perm.flags.
package main

import (
	"context"
	"go/scanner"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		scanner.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

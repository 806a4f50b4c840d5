// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors implements functions to manipulate errors.
package errors

import (
	"errors"
	"fmt"
)

// New formats a string according to the format specifier and arguments and
// returns an error that has a "flagsgen" prefix.
//
// The %w verb is supported; the resulting error unwraps to the wrapped value.
func New(f string, x ...interface{}) error {
	for i := 0; i < len(x); i++ {
		if e, ok := x[i].(*prefixError); ok {
			x[i] = bareError{e} // avoid "flagsgen: " prefix when chaining
		}
	}
	err := fmt.Errorf(f, x...)
	return &prefixError{s: err.Error(), err: errors.Unwrap(err)}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool { return errors.As(err, target) }

type prefixError struct {
	s   string
	err error
}

func (e *prefixError) Error() string { return "flagsgen: " + e.s }
func (e *prefixError) Unwrap() error { return e.err }

// bareError prints a prefixError without its prefix but keeps it in the chain.
type bareError struct{ e *prefixError }

func (e bareError) Error() string { return e.e.s }
func (e bareError) Unwrap() error { return e.e }

// ErrOutOfDate is reported by check mode when a generated file differs from
// what the generator would write.
var ErrOutOfDate = New("generated file is out of date")

func OutOfDate(name string) error {
	return New("%v: %w", name, ErrOutOfDate)
}

func UnsupportedInput(name string) error {
	return New("%v: unsupported declaration file extension (want .flags, .yaml or .yml)", name)
}

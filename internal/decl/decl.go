// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decl parses and validates bit-flag declaration files.
//
// A declaration file names a Go package and declares one or more flag types.
// Two syntaxes are supported. Files ending in .flags use Go's lexical
// syntax:
//
//	package fsperm
//
//	// Perm is a set of file permissions.
//	flags Perm uint8 {
//		Read = 1 << 0
//		Write = 1 << 1
//		Exec
//		ReadWrite = Read | Write
//	}
//
// Files ending in .yaml or .yml carry the same information as a document
// with "package" and "flags" keys.
//
// A flag without a value is assigned the lowest power of two not used by any
// flag declared before it. Explicit values may overlap; overlapping flags are
// aliases and are not reported.
package decl

import (
	"go/scanner"
	"go/token"
	"io/ioutil"
	"path/filepath"

	"github.com/golang/bitflags/internal/errors"
	"github.com/golang/bitflags/internal/logflags"
)

// Underlying is the unsigned integer type backing a flag type.
type Underlying string

const (
	Uint8  Underlying = "uint8"
	Uint16 Underlying = "uint16"
	Uint32 Underlying = "uint32"
	Uint64 Underlying = "uint64"
	Uint   Underlying = "uint"
)

// Width returns the number of usable bits, or 0 if u is not supported.
//
// uint is treated as 32 bits wide so that generated code compiles on every
// platform.
func (u Underlying) Width() int {
	switch u {
	case Uint8:
		return 8
	case Uint16:
		return 16
	case Uint32, Uint:
		return 32
	case Uint64:
		return 64
	}
	return 0
}

// Mask returns the value with every usable bit set.
func (u Underlying) Mask() uint64 {
	if u.Width() == 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(u.Width()) - 1
}

// A File is a parsed declaration file.
type File struct {
	Name    string // file name as given to the parser
	Package string // Go package name
	Flags   []*Flags

	pkgPos token.Position
}

// Flags is a single flag type declaration.
type Flags struct {
	Name   string
	Type   Underlying
	Doc    []string // doc comment lines, without comment markers
	Values []*Value
	Pos    token.Position
}

// All returns the union of every declared value.
func (f *Flags) All() uint64 {
	var all uint64
	for _, v := range f.Values {
		all |= v.Value
	}
	return all
}

// A Value is a named flag within a declaration.
type Value struct {
	Name  string
	Expr  string // value expression as written; empty when auto-assigned
	Value uint64
	Doc   []string
	Pos   token.Position

	expr exprSource
}

// Auto reports whether the value was assigned by the generator.
func (v *Value) Auto() bool { return v.Expr == "" }

// Suffixes of the package-level functions generated for a flag type named T:
// TEmpty, TAll, TFromBits, TFromBitsTruncate and TOf.
const (
	EmptySuffix            = "Empty"
	AllSuffix              = "All"
	FromBitsSuffix         = "FromBits"
	FromBitsTruncateSuffix = "FromBitsTruncate"
	OfSuffix               = "Of"
)

var helperSuffixes = []string{EmptySuffix, AllSuffix, FromBitsSuffix, FromBitsTruncateSuffix, OfSuffix}

// localNames are the receiver, parameter and variable names of the generated
// functions and methods. A flag type may not use one of them as its name,
// since the bodies refer to the type by name.
var localNames = map[string]bool{
	"f":      true,
	"bits":   true,
	"other":  true,
	"others": true,
	"flags":  true,
	"value":  true,
	"b":      true,
	"seen":   true,
	"v":      true,
	"rest":   true,
}

// ParseFile reads and parses the named declaration file.
func ParseFile(filename string) (*File, error) {
	src, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.New("%w", err)
	}
	return Parse(filename, src)
}

// Parse parses a declaration file. The syntax is chosen by the extension
// of filename.
//
// Diagnostics are returned as a scanner.ErrorList sorted by position.
func Parse(filename string, src []byte) (*File, error) {
	var (
		f    *File
		errs scanner.ErrorList
	)
	switch filepath.Ext(filename) {
	case ".flags":
		f = parseFlags(filename, src, &errs)
	case ".yaml", ".yml":
		f = parseYAML(filename, src, &errs)
	default:
		return nil, errors.UnsupportedInput(filename)
	}
	if f != nil && len(errs) == 0 {
		check(f, &errs)
	}
	if len(errs) > 0 {
		errs.Sort()
		return nil, errs
	}
	if logflags.Decl() {
		logflags.DeclLogger().Debugf("parsed %s: package %s, %d declarations", filename, f.Package, len(f.Flags))
	}
	return f, nil
}

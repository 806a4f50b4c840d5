// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package internal_genflags is internal to the flagsgen command and
// generates the Go source for bit-flag types.
package internal_genflags

import (
	"fmt"
	"path/filepath"

	"github.com/golang/bitflags/flaggen"
	"github.com/golang/bitflags/internal/logflags"
)

// Standard library dependencies.
const (
	strconvPackage = flaggen.GoImportPath("strconv")
	stringsPackage = flaggen.GoImportPath("strings")
)

// GenerateFile generates the contents of a _flags.go file.
func GenerateFile(gen *flaggen.Generator, f *flaggen.File) *flaggen.GeneratedFile {
	if logflags.Gen() {
		logflags.GenLogger().Debugf("generating %s from %s", f.GeneratedFilename, f.Desc.Name)
	}

	g := gen.NewGeneratedFile(f.GeneratedFilename, f.GoImportPath)
	if header := gen.Header(); len(header) > 0 {
		for _, line := range header {
			if line == "" {
				g.P("//")
			} else {
				g.P("// ", line)
			}
		}
		g.P()
	}
	g.P("// Code generated by flagsgen. DO NOT EDIT.")
	g.P("// source: ", filepath.ToSlash(f.Desc.Name))
	g.P()
	g.P("package ", f.GoPackageName)
	g.P()

	for _, flags := range f.Flags {
		genFlags(gen, g, flags)
	}
	return g
}

// genFlags generates the type, constants, functions and methods of a
// single flag type.
func genFlags(gen *flaggen.Generator, g *flaggen.GeneratedFile, flags *flaggen.Flags) {
	typ := flags.GoIdent
	bits := flags.Desc.Type

	g.PrintLeadingComments(flags.Location)
	g.P("type ", typ, " ", bits)
	g.P()
	if len(flags.Values) > 0 {
		g.P("const (")
		for _, v := range flags.Values {
			g.PrintLeadingComments(v.Location)
			g.P(v.GoIdent, " ", typ, " = ", literal(v.Desc.Value))
		}
		g.P(")")
		g.P()
	}

	genConstructors(g, flags)
	genQueries(g, flags)
	genOperations(g, flags)
	genMutators(g, flags)
	genString(g, flags)
}

// literal formats a flag value as it appears in generated code.
func literal(v uint64) string {
	return fmt.Sprintf("%#x", v)
}

func genConstructors(g *flaggen.GeneratedFile, flags *flaggen.Flags) {
	typ := flags.GoIdent
	bits := flags.Desc.Type

	g.P("// ", flags.Empty, " returns the set with no flags.")
	g.P("func ", flags.Empty, "() ", typ, " {")
	g.P("return 0")
	g.P("}")
	g.P()

	g.P("// ", flags.All, " returns the set of every declared flag.")
	g.P("func ", flags.All, "() ", typ, " {")
	g.P("return ", literal(flags.Desc.All()))
	g.P("}")
	g.P()

	g.P("// ", flags.FromBits, " converts bits to a ", typ, ".")
	g.P("// It reports false if bits has a bit that no declared flag sets.")
	g.P("func ", flags.FromBits, "(bits ", bits, ") (", typ, ", bool) {")
	g.P("if f := ", flags.FromBitsTruncate, "(bits); f.Bits() == bits {")
	g.P("return f, true")
	g.P("}")
	g.P("return 0, false")
	g.P("}")
	g.P()

	g.P("// ", flags.FromBitsTruncate, " converts bits to a ", typ, ", dropping bits")
	g.P("// that no declared flag sets.")
	g.P("func ", flags.FromBitsTruncate, "(bits ", bits, ") ", typ, " {")
	g.P("return ", typ, "(bits) & ", flags.All, "()")
	g.P("}")
	g.P()

	g.P("// ", flags.Of, " returns the union of flags.")
	g.P("func ", flags.Of, "(flags ...", typ, ") ", typ, " {")
	g.P("return ", flags.Empty, "().Union(flags...)")
	g.P("}")
	g.P()
}

func genQueries(g *flaggen.GeneratedFile, flags *flaggen.Flags) {
	typ := flags.GoIdent

	g.P("// Bits returns the underlying bits of f.")
	g.P("func (f ", typ, ") Bits() ", flags.Desc.Type, " {")
	g.P("return ", flags.Desc.Type, "(f)")
	g.P("}")
	g.P()

	g.P("// IsEmpty reports whether no flag is set in f.")
	g.P("func (f ", typ, ") IsEmpty() bool {")
	g.P("return f == 0")
	g.P("}")
	g.P()

	g.P("// IsAll reports whether every declared flag is set in f.")
	g.P("func (f ", typ, ") IsAll() bool {")
	g.P("return f == ", flags.All, "()")
	g.P("}")
	g.P()

	g.P("// Contains reports whether every flag set in other is also set in f.")
	g.P("func (f ", typ, ") Contains(other ", typ, ") bool {")
	g.P("return f&other == other")
	g.P("}")
	g.P()

	g.P("// Intersects reports whether f and other have a flag in common.")
	g.P("func (f ", typ, ") Intersects(other ", typ, ") bool {")
	g.P("return f&other != 0")
	g.P("}")
	g.P()
}

func genOperations(g *flaggen.GeneratedFile, flags *flaggen.Flags) {
	typ := flags.GoIdent

	g.P("// Union returns the flags set in f or in any of others.")
	g.P("func (f ", typ, ") Union(others ...", typ, ") ", typ, " {")
	g.P("for _, other := range others {")
	g.P("f |= other")
	g.P("}")
	g.P("return f")
	g.P("}")
	g.P()

	g.P("// Intersect returns the flags set in both f and other.")
	g.P("func (f ", typ, ") Intersect(other ", typ, ") ", typ, " {")
	g.P("return f & other")
	g.P("}")
	g.P()

	g.P("// Difference returns the flags set in f but not in other.")
	g.P("func (f ", typ, ") Difference(other ", typ, ") ", typ, " {")
	g.P("return f &^ other")
	g.P("}")
	g.P()

	g.P("// SymmetricDifference returns the flags set in exactly one of f and other.")
	g.P("func (f ", typ, ") SymmetricDifference(other ", typ, ") ", typ, " {")
	g.P("return f ^ other")
	g.P("}")
	g.P()

	g.P("// Complement returns the declared flags that are not set in f.")
	g.P("func (f ", typ, ") Complement() ", typ, " {")
	g.P("return ^f & ", flags.All, "()")
	g.P("}")
	g.P()
}

func genMutators(g *flaggen.GeneratedFile, flags *flaggen.Flags) {
	typ := flags.GoIdent

	g.P("// Insert sets the flags in other.")
	g.P("func (f *", typ, ") Insert(other ", typ, ") {")
	g.P("*f |= other")
	g.P("}")
	g.P()

	g.P("// Remove clears the flags in other.")
	g.P("func (f *", typ, ") Remove(other ", typ, ") {")
	g.P("*f &^= other")
	g.P("}")
	g.P()

	g.P("// Toggle flips the flags in other.")
	g.P("func (f *", typ, ") Toggle(other ", typ, ") {")
	g.P("*f ^= other")
	g.P("}")
	g.P()

	g.P("// Set inserts other if value is true and removes it otherwise.")
	g.P("func (f *", typ, ") Set(other ", typ, ", value bool) {")
	g.P("if value {")
	g.P("f.Insert(other)")
	g.P("} else {")
	g.P("f.Remove(other)")
	g.P("}")
	g.P("}")
	g.P()

	g.P("// Clear removes every flag from f.")
	g.P("func (f *", typ, ") Clear() {")
	g.P("*f = 0")
	g.P("}")
	g.P()

	g.P("// Extend inserts each of flags.")
	g.P("func (f *", typ, ") Extend(flags ...", typ, ") {")
	g.P("*f = f.Union(flags...)")
	g.P("}")
	g.P()
}

// genString generates a String method printing the names of the set flags.
// Flags with no bits are never printed, and a flag whose bits are already
// covered by printed flags is skipped so that aliases print once. Leftover
// bits are printed in hexadecimal.
func genString(g *flaggen.GeneratedFile, flags *flaggen.Flags) {
	typ := flags.GoIdent

	g.P("// String returns the names of the flags set in f, such as \"", typ.GoName, "(A | B)\".")
	g.P("func (f ", typ, ") String() string {")
	g.P("var b ", stringsPackage.Ident("Builder"))
	g.P("b.WriteString(", fmt.Sprintf("%q", typ.GoName+"("), ")")
	g.P("var seen ", typ)
	g.P("for _, v := range [...]struct {")
	g.P("name  string")
	g.P("value ", typ)
	g.P("}{")
	for _, v := range flags.Values {
		g.P("{", fmt.Sprintf("%q", v.GoIdent.GoName), ", ", literal(v.Desc.Value), "},")
	}
	g.P("} {")
	g.P("if v.value == 0 || f&v.value != v.value || seen&v.value == v.value {")
	g.P("continue")
	g.P("}")
	g.P("if seen != 0 {")
	g.P("b.WriteString(\" | \")")
	g.P("}")
	g.P("b.WriteString(v.name)")
	g.P("seen |= v.value")
	g.P("}")
	g.P("if rest := f &^ seen; rest != 0 {")
	g.P("if seen != 0 {")
	g.P("b.WriteString(\" | \")")
	g.P("}")
	g.P("b.WriteString(\"0x\")")
	g.P("b.WriteString(", strconvPackage.Ident("FormatUint"), "(uint64(rest), 16))")
	g.P("}")
	g.P("b.WriteString(\")\")")
	g.P("return b.String()")
	g.P("}")
	g.P()
}

// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decl

import (
	"fmt"
	"go/constant"
	"go/scanner"
	"go/token"
	"go/types"
	"math/bits"

	"github.com/golang/bitflags/internal/logflags"
	"github.com/golang/bitflags/internal/set"
)

// checker validates a parsed file and assigns flag values.
type checker struct {
	file *File
	errs *scanner.ErrorList

	// Identifiers declared at package scope by the generated file.
	scope map[string]token.Position
}

func check(f *File, errs *scanner.ErrorList) {
	c := &checker{
		file:  f,
		errs:  errs,
		scope: make(map[string]token.Position),
	}
	if !validIdent(f.Package) {
		c.errorf(f.pkgPos, "invalid package name %q", f.Package)
	}
	for _, d := range f.Flags {
		c.checkFlags(d)
	}
}

func (c *checker) errorf(pos token.Position, format string, args ...interface{}) {
	c.errs.Add(pos, fmt.Sprintf(format, args...))
}

func validIdent(name string) bool {
	return token.IsIdentifier(name) && name != "_"
}

// declare records a package-scope identifier and reports a collision.
// Predeclared identifiers are refused since generated code relies on them.
func (c *checker) declare(name string, pos token.Position, what string) {
	if types.Universe.Lookup(name) != nil {
		c.errorf(pos, "%s %s shadows predeclared identifier", what, name)
		return
	}
	if prev, ok := c.scope[name]; ok {
		c.errorf(pos, "%s %s redeclared in this package (previous declaration at %v)", what, name, prev)
		return
	}
	c.scope[name] = pos
}

func (c *checker) checkFlags(d *Flags) {
	log := logflags.DeclLogger()

	if !validIdent(d.Name) {
		c.errorf(d.Pos, "invalid flag type name %q", d.Name)
		return
	}
	if localNames[d.Name] {
		c.errorf(d.Pos, "flag type name %s is reserved for generated code", d.Name)
		return
	}
	width := d.Type.Width()
	if width == 0 {
		c.errorf(d.Pos, "flag type %s: unsupported underlying type %q (want uint8, uint16, uint32, uint64 or uint)", d.Name, d.Type)
		return
	}
	c.declare(d.Name, d.Pos, "flag type")
	for _, suffix := range helperSuffixes {
		c.declare(d.Name+suffix, d.Pos, "generated function")
	}

	var (
		used  set.Bits
		seen  = make(map[string]token.Position)
		scope = make(map[string]constant.Value)
	)
	for _, v := range d.Values {
		if !validIdent(v.Name) {
			c.errorf(v.Pos, "invalid flag name %q", v.Name)
			continue
		}
		if prev, ok := seen[v.Name]; ok {
			c.errorf(v.Pos, "duplicate flag name %s in %s (previous declaration at %v)", v.Name, d.Name, prev)
			continue
		}
		seen[v.Name] = v.Pos
		c.declare(v.Name, v.Pos, "flag")

		if v.Auto() {
			n, ok := used.LowestUnset(width)
			if !ok {
				c.errorf(v.Pos, "no unused bit left in %s for flag %s", d.Type, v.Name)
				continue
			}
			v.Value = uint64(1) << n
			if logflags.Decl() {
				log.Debugf("%v: flag %s.%s assigned bit %d", v.Pos, d.Name, v.Name, n)
			}
		} else {
			val, ok := c.evalValue(d, v, scope)
			if !ok {
				continue
			}
			v.Value = val
			if logflags.Decl() && used.Overlaps(val) {
				log.Debugf("%v: flag %s.%s = %#x overlaps earlier flags", v.Pos, d.Name, v.Name, val)
			}
		}
		used.Add(v.Value)
		scope[v.Name] = constant.MakeUint64(v.Value)
	}
}

func (c *checker) evalValue(d *Flags, v *Value, scope map[string]constant.Value) (uint64, bool) {
	n := len(*c.errs)
	e := &evaluator{
		src:   v.expr,
		scope: scope,
		width: d.Type.Width(),
		errs:  c.errs,
	}
	x := e.eval()
	if x == nil || len(*c.errs) > n {
		return 0, false
	}
	val, ok := constant.Uint64Val(x)
	if !ok || constant.Sign(x) < 0 || bits.Len64(val) > d.Type.Width() {
		c.errorf(v.Pos, "flag %s: value %v overflows %s", v.Name, x, d.Type)
		return 0, false
	}
	return val, true
}

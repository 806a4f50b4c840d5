// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decl

import (
	"fmt"
	"go/constant"
	"go/scanner"
	"go/token"
	"strings"
)

// exprSource is the token sequence of a value expression.
type exprSource struct {
	items    []item
	position func(token.Pos) token.Position
}

func (src exprSource) text() string {
	var b strings.Builder
	for i, it := range src.items {
		if i > 0 && src.items[i-1].pos+token.Pos(len(src.items[i-1].text())) < it.pos {
			b.WriteByte(' ')
		}
		b.WriteString(it.text())
	}
	return b.String()
}

func (it item) text() string {
	if it.lit != "" {
		return it.lit
	}
	return it.tok.String()
}

// maxShift bounds shift counts so that evaluation stays cheap.
const maxShift = 64

// evaluator evaluates a value expression with Go constant semantics over the
// names in scope. Unary ^ is the complement within the declaration's width.
type evaluator struct {
	src   exprSource
	i     int
	scope map[string]constant.Value
	width int
	errs  *scanner.ErrorList
	bad   bool
}

func (e *evaluator) peek() item {
	if e.i < len(e.src.items) {
		return e.src.items[e.i]
	}
	return item{pos: e.end(), tok: token.EOF}
}

func (e *evaluator) end() token.Pos {
	if n := len(e.src.items); n > 0 {
		last := e.src.items[n-1]
		return last.pos + token.Pos(len(last.text()))
	}
	return token.NoPos
}

func (e *evaluator) next() item {
	it := e.peek()
	if e.i < len(e.src.items) {
		e.i++
	}
	return it
}

func (e *evaluator) errorf(pos token.Pos, format string, args ...interface{}) {
	if !e.bad {
		e.errs.Add(e.src.position(pos), fmt.Sprintf(format, args...))
	}
	e.bad = true
}

// eval returns the value of the whole expression, or nil after reporting an
// error.
func (e *evaluator) eval() constant.Value {
	v := e.binary(token.LowestPrec + 1)
	if it := e.peek(); it.tok != token.EOF {
		e.errorf(it.pos, "unexpected %v in flag value", describe(it))
	}
	if e.bad {
		return nil
	}
	return v
}

func describe(it item) string {
	if it.tok.IsOperator() {
		return "'" + it.tok.String() + "'"
	}
	return it.text()
}

func binaryAllowed(tok token.Token) bool {
	switch tok {
	case token.MUL, token.QUO, token.REM, token.SHL, token.SHR, token.AND, token.AND_NOT,
		token.ADD, token.SUB, token.OR, token.XOR:
		return true
	}
	return false
}

func (e *evaluator) binary(prec1 int) constant.Value {
	x := e.unary()
	for {
		op := e.peek()
		prec := op.tok.Precedence()
		if prec < prec1 {
			return x
		}
		if !binaryAllowed(op.tok) {
			e.errorf(op.pos, "operator %v not allowed in flag value", op.tok)
			return nil
		}
		e.next()
		y := e.binary(prec + 1)
		x = e.apply(op, x, y)
	}
}

func (e *evaluator) apply(op item, x, y constant.Value) constant.Value {
	if x == nil || y == nil {
		return nil
	}
	switch op.tok {
	case token.SHL, token.SHR:
		s, ok := constant.Uint64Val(y)
		if !ok || constant.Sign(y) < 0 {
			e.errorf(op.pos, "invalid shift count %v", y)
			return nil
		}
		if s > maxShift {
			e.errorf(op.pos, "shift count %d too large", s)
			return nil
		}
		return constant.Shift(x, op.tok, uint(s))
	case token.QUO, token.REM:
		if constant.Sign(y) == 0 {
			e.errorf(op.pos, "division by zero")
			return nil
		}
		if op.tok == token.QUO {
			return constant.BinaryOp(x, token.QUO_ASSIGN, y) // integer division
		}
	}
	return constant.BinaryOp(x, op.tok, y)
}

func (e *evaluator) unary() constant.Value {
	it := e.next()
	switch it.tok {
	case token.ADD, token.SUB, token.XOR:
		x := e.unary()
		if x == nil {
			return nil
		}
		prec := uint(0)
		if it.tok == token.XOR {
			prec = uint(e.width)
		}
		return constant.UnaryOp(it.tok, x, prec)
	case token.LPAREN:
		x := e.binary(token.LowestPrec + 1)
		if closing := e.next(); closing.tok != token.RPAREN {
			e.errorf(closing.pos, "expected ')', found %v", describe(closing))
			return nil
		}
		return x
	case token.INT:
		v := constant.MakeFromLiteral(it.lit, token.INT, 0)
		if v.Kind() == constant.Unknown {
			e.errorf(it.pos, "invalid integer literal %s", it.lit)
			return nil
		}
		return v
	case token.IDENT:
		v, ok := e.scope[it.lit]
		if !ok {
			e.errorf(it.pos, "undefined: %s", it.lit)
			return nil
		}
		return v
	case token.EOF:
		e.errorf(it.pos, "missing flag value")
		return nil
	case token.FLOAT, token.IMAG, token.CHAR, token.STRING:
		e.errorf(it.pos, "flag value must be an integer, found %s", it.lit)
		return nil
	}
	e.errorf(it.pos, "expected flag value, found %v", describe(it))
	return nil
}

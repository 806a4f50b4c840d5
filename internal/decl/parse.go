// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decl

import (
	"fmt"
	"go/scanner"
	"go/token"
)

// flagsKeyword introduces a declaration. It is an identifier to the Go
// scanner, so it is matched by literal.
const flagsKeyword = "flags"

type parser struct {
	file  *token.File
	items []item
	i     int
	errs  *scanner.ErrorList
}

// parseFlags parses the .flags syntax:
//
//	File      = "package" ident ";" { FlagsDecl ";" } .
//	FlagsDecl = "flags" ident ident "{" [ ValueSpec { ";" ValueSpec } [ ";" ] ] "}" .
//	ValueSpec = ident [ "=" Expr ] .
func parseFlags(filename string, src []byte, errs *scanner.ErrorList) *File {
	fset := token.NewFileSet()
	p := &parser{
		file: fset.AddFile(filename, -1, len(src)),
		errs: errs,
	}
	p.items = scanItems(p.file, src, func(pos token.Position, msg string) { errs.Add(pos, msg) })
	if len(*errs) > 0 {
		return nil
	}

	f := &File{Name: filename}
	if _, ok := p.expect(token.PACKAGE); !ok {
		return nil
	}
	name, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	f.Package = name.lit
	f.pkgPos = p.file.Position(name.pos)
	p.expectSemi()

	for p.peek().tok != token.EOF {
		if d := p.parseDecl(); d != nil {
			f.Flags = append(f.Flags, d)
		}
	}
	return f
}

func (p *parser) peek() item {
	return p.items[p.i]
}

func (p *parser) next() item {
	it := p.items[p.i]
	if it.tok != token.EOF {
		p.i++
	}
	return it
}

func (p *parser) errorf(pos token.Pos, format string, args ...interface{}) {
	p.errs.Add(p.file.Position(pos), fmt.Sprintf(format, args...))
}

func (p *parser) expect(tok token.Token) (item, bool) {
	it := p.next()
	if it.tok != tok {
		p.errorf(it.pos, "expected %v, found %v", describeToken(tok), it)
		return it, false
	}
	return it, true
}

func describeToken(tok token.Token) string {
	switch tok {
	case token.IDENT:
		return "identifier"
	case token.SEMICOLON:
		return "newline"
	}
	return "'" + tok.String() + "'"
}

func (p *parser) expectSemi() {
	switch p.peek().tok {
	case token.SEMICOLON:
		p.next()
	case token.RBRACE, token.EOF:
	default:
		it := p.next()
		p.errorf(it.pos, "expected newline, found %v", it)
		p.skipLine()
	}
}

// skipLine advances past the next semicolon, stopping early at a closing
// brace so that the enclosing declaration can finish.
func (p *parser) skipLine() {
	for {
		switch p.peek().tok {
		case token.SEMICOLON:
			p.next()
			return
		case token.RBRACE, token.EOF:
			return
		}
		p.next()
	}
}

// skipDecl advances past the closing brace of the current declaration.
func (p *parser) skipDecl() {
	for {
		switch p.next().tok {
		case token.RBRACE:
			if p.peek().tok == token.SEMICOLON {
				p.next()
			}
			return
		case token.EOF:
			return
		}
	}
}

func (p *parser) parseDecl() *Flags {
	kw := p.next()
	if kw.tok != token.IDENT || kw.lit != flagsKeyword {
		p.errorf(kw.pos, "expected %q, found %v", flagsKeyword, kw)
		p.skipDecl()
		return nil
	}
	name, ok := p.expect(token.IDENT)
	if !ok {
		p.skipDecl()
		return nil
	}
	typ, ok := p.expect(token.IDENT)
	if !ok {
		p.skipDecl()
		return nil
	}
	if _, ok := p.expect(token.LBRACE); !ok {
		p.skipDecl()
		return nil
	}
	d := &Flags{
		Name: name.lit,
		Type: Underlying(typ.lit),
		Doc:  kw.doc,
		Pos:  p.file.Position(name.pos),
	}
	for {
		switch p.peek().tok {
		case token.RBRACE:
			p.next()
			p.expectSemi()
			return d
		case token.EOF:
			p.errorf(p.peek().pos, "expected '}', found EOF")
			return d
		case token.SEMICOLON:
			p.next() // empty line inside braces
			continue
		}
		if v := p.parseValue(); v != nil {
			d.Values = append(d.Values, v)
		}
	}
}

func (p *parser) parseValue() *Value {
	name := p.next()
	if name.tok != token.IDENT {
		p.errorf(name.pos, "expected flag name, found %v", name)
		p.skipLine()
		return nil
	}
	v := &Value{
		Name: name.lit,
		Doc:  name.doc,
		Pos:  p.file.Position(name.pos),
	}
	if p.peek().tok == token.ASSIGN {
		p.next()
		start := p.i
		depth := 0
	loop:
		for {
			switch p.peek().tok {
			case token.LPAREN:
				depth++
			case token.RPAREN:
				depth--
			case token.SEMICOLON, token.EOF:
				break loop
			case token.RBRACE:
				if depth <= 0 {
					break loop
				}
			}
			p.next()
		}
		if p.i == start {
			it := p.peek()
			p.errorf(it.pos, "missing value for flag %s, found %v", v.Name, it)
			p.skipLine()
			return nil
		}
		v.expr = exprSource{items: p.items[start:p.i:p.i], position: p.file.Position}
		v.Expr = v.expr.text()
	}
	p.expectSemi()
	return v
}

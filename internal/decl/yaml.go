// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decl

import (
	"bytes"
	"errors"
	"fmt"
	"go/scanner"
	"go/token"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// The YAML syntax. Nodes are kept where diagnostics need a position.
type (
	yamlFile struct {
		Package yaml.Node   `yaml:"package"`
		Flags   []yamlFlags `yaml:"flags"`
	}
	yamlFlags struct {
		Name   yaml.Node   `yaml:"name"`
		Type   yaml.Node   `yaml:"type"`
		Doc    string      `yaml:"doc"`
		Values []yamlValue `yaml:"values"`
	}
	yamlValue struct {
		Name  yaml.Node `yaml:"name"`
		Value yaml.Node `yaml:"value"`
		Doc   string    `yaml:"doc"`
	}
)

func parseYAML(filename string, src []byte, errs *scanner.ErrorList) *File {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc yamlFile
	if err := dec.Decode(&doc); err != nil {
		var te *yaml.TypeError
		switch {
		case err == io.EOF:
			errs.Add(token.Position{Filename: filename}, "empty declaration file")
		case errors.As(err, &te):
			for _, msg := range te.Errors {
				errs.Add(yamlErrorPos(filename, msg))
			}
		default:
			errs.Add(yamlErrorPos(filename, err.Error()))
		}
		return nil
	}

	y := &yamlParser{filename: filename, errs: errs}
	f := &File{
		Name:    filename,
		Package: y.scalar(&doc.Package, "package"),
		pkgPos:  y.pos(&doc.Package),
	}
	if doc.Package.Kind == 0 {
		errs.Add(token.Position{Filename: filename, Line: 1, Column: 1}, "missing package")
	}
	for i := range doc.Flags {
		yf := &doc.Flags[i]
		d := &Flags{
			Name: y.scalar(&yf.Name, "flag type name"),
			Type: Underlying(y.scalar(&yf.Type, "underlying type")),
			Doc:  docLines(yf.Doc),
			Pos:  y.pos(&yf.Name),
		}
		if yf.Name.Kind == 0 {
			errs.Add(d.Pos, "flag type without a name")
		}
		for j := range yf.Values {
			if v := y.value(&yf.Values[j]); v != nil {
				d.Values = append(d.Values, v)
			}
		}
		f.Flags = append(f.Flags, d)
	}
	return f
}

type yamlParser struct {
	filename string
	errs     *scanner.ErrorList
}

func (y *yamlParser) pos(n *yaml.Node) token.Position {
	return token.Position{Filename: y.filename, Line: n.Line, Column: n.Column}
}

// scalar returns the value of an optional string node.
func (y *yamlParser) scalar(n *yaml.Node, what string) string {
	switch n.Kind {
	case 0:
		return ""
	case yaml.ScalarNode:
		return n.Value
	}
	y.errs.Add(y.pos(n), fmt.Sprintf("%s must be a scalar", what))
	return ""
}

func (y *yamlParser) value(yv *yamlValue) *Value {
	v := &Value{
		Name: y.scalar(&yv.Name, "flag name"),
		Doc:  docLines(yv.Doc),
		Pos:  y.pos(&yv.Name),
	}
	if yv.Name.Kind == 0 {
		y.errs.Add(y.pos(&yv.Value), "flag without a name")
		return nil
	}
	n := &yv.Value
	switch {
	case n.Kind == 0 || n.Tag == "!!null":
		return v // auto-assigned
	case n.Kind != yaml.ScalarNode:
		y.errs.Add(y.pos(n), fmt.Sprintf("value of flag %s must be a scalar", v.Name))
		return nil
	case strings.TrimSpace(n.Value) == "":
		y.errs.Add(y.pos(n), fmt.Sprintf("missing value for flag %s", v.Name))
		return nil
	}

	// Positions inside the expression are offsets from the node's column.
	col := n.Column
	if n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
		col++
	}
	position := func(p token.Position) token.Position {
		return token.Position{Filename: y.filename, Line: n.Line, Column: col + p.Offset}
	}
	src := []byte(n.Value)
	file := token.NewFileSet().AddFile(y.filename, -1, len(src))
	before := len(*y.errs)
	items := scanItems(file, src, func(pos token.Position, msg string) { y.errs.Add(position(pos), msg) })
	if len(*y.errs) > before {
		return nil
	}
	for len(items) > 0 {
		last := items[len(items)-1]
		if last.tok != token.EOF && !(last.tok == token.SEMICOLON && last.lit == "\n") {
			break
		}
		items = items[:len(items)-1]
	}
	v.expr = exprSource{
		items:    items,
		position: func(p token.Pos) token.Position { return position(file.Position(p)) },
	}
	v.Expr = v.expr.text()
	return v
}

func docLines(doc string) []string {
	doc = strings.TrimRight(doc, "\n")
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}

// yamlErrorPos splits a yaml.v3 message of the form "yaml: line N: msg".
// Unknown field errors are reported as unknown keys.
func yamlErrorPos(filename, msg string) (token.Position, string) {
	msg = strings.TrimPrefix(msg, "yaml: ")
	pos := token.Position{Filename: filename}
	var line int
	if _, err := fmt.Sscanf(msg, "line %d:", &line); err == nil {
		pos.Line = line
		msg = strings.TrimSpace(msg[strings.Index(msg, ":")+1:])
	}
	var key string
	if _, err := fmt.Sscanf(msg, "field %s not found in type", &key); err == nil {
		msg = fmt.Sprintf("unknown key %q", key)
	}
	return pos, msg
}

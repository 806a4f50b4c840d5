// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decl

import (
	"go/scanner"
	"go/token"
	"strings"
)

// An item is a scanned token. Comments are not items; a comment group that
// ends on the line directly above a token becomes that token's doc.
type item struct {
	pos token.Pos
	tok token.Token
	lit string
	doc []string
}

func (it item) String() string {
	switch {
	case it.tok == token.SEMICOLON && it.lit == "\n":
		return "newline"
	case it.tok == token.EOF:
		return "EOF"
	case it.lit != "":
		return it.lit
	}
	return "'" + it.tok.String() + "'"
}

// scanItems tokenizes src, which has already been added to file.
func scanItems(file *token.File, src []byte, eh scanner.ErrorHandler) []item {
	var s scanner.Scanner
	s.Init(file, src, eh, scanner.ScanComments)

	var (
		items    []item
		group    []string
		groupEnd int // line of the last comment in group
		lastLine int // line of the last token
	)
	for {
		pos, tok, lit := s.Scan()
		line := file.Line(pos)
		if tok == token.COMMENT {
			if line == lastLine {
				continue // trailing comment
			}
			if len(group) > 0 && line > groupEnd+1 {
				group = nil
			}
			if strings.HasPrefix(lit, "//") {
				group = append(group, commentText(lit))
			}
			groupEnd = file.Line(pos + token.Pos(len(lit)) - 1)
			continue
		}
		it := item{pos: pos, tok: tok, lit: lit}
		if len(group) > 0 && line == groupEnd+1 {
			it.doc = group
		}
		group = nil
		lastLine = line
		items = append(items, it)
		if tok == token.EOF {
			return items
		}
	}
}

// commentText strips the comment marker and a single leading space.
func commentText(lit string) string {
	s := strings.TrimPrefix(lit, "//")
	s = strings.TrimPrefix(s, " ")
	return strings.TrimRight(s, " \t\r")
}

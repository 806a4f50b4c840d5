// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package goldentest compares the output of a flag generator to golden files.
package goldentest

import (
	"context"
	"go/ast"
	"go/format"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/golang/bitflags/flaggen"
)

// A Generator generates the outputs for a set of declaration files.
type Generator func(ctx context.Context, paths []string) ([]*flaggen.Output, error)

// Run executes golden tests.
//
// Every declaration file under testdata is generated, one run per directory,
// and each output is compared with the file of the same name already on disk.
func Run(t *testing.T, regenerate bool, gen Generator) {
	// Find all the declaration files we need to generate. We assume that each
	// directory contains the files for a single package.
	packages := map[string][]string{}
	err := filepath.Walk("testdata", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		switch filepath.Ext(path) {
		case ".flags", ".yaml", ".yml":
			dir := filepath.Dir(path)
			packages[dir] = append(packages[dir], path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	var dirs []string
	for dir := range packages {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		t.Run(filepath.ToSlash(dir), func(t *testing.T) {
			Check(t, regenerate, gen, packages[dir]...)
		})
	}
}

// Check generates the named declaration files together and compares each
// output with the file of the same name. Outputs are compared after gofmt
// formatting, so golden files need not be byte-identical. The outputs must
// also type-check.
func Check(t *testing.T, regenerate bool, gen Generator, paths ...string) {
	t.Helper()
	outs, err := gen(context.Background(), paths)
	if err != nil {
		t.Fatalf("generating %v: %v", paths, err)
	}
	if len(outs) == 0 {
		t.Fatalf("generating %v: no output", paths)
	}
	TypeCheck(t, outs)
	for _, out := range outs {
		if regenerate {
			// If --regenerate set, just rewrite the golden files.
			if err := ioutil.WriteFile(out.Filename, out.Content, 0666); err != nil {
				t.Error(err)
			}
			continue
		}

		want, err := ioutil.ReadFile(out.Filename)
		if err != nil {
			t.Error(err)
			continue
		}
		if diff := cmp.Diff(normalize(t, out.Filename, want), normalize(t, out.Filename, out.Content)); diff != "" {
			t.Errorf("golden file differs: %v (-want +got):\n%s", out.Filename, diff)
		}
	}
}

// TypeCheck parses the outputs and type-checks them, one package per
// output directory.
func TypeCheck(t *testing.T, outs []*flaggen.Output) {
	t.Helper()
	fset := token.NewFileSet()
	packages := map[string][]*ast.File{}
	for _, out := range outs {
		f, err := parser.ParseFile(fset, out.Filename, out.Content, 0)
		if err != nil {
			t.Errorf("parsing %v: %v", out.Filename, err)
			continue
		}
		dir := filepath.Dir(out.Filename)
		packages[dir] = append(packages[dir], f)
	}

	var dirs []string
	for dir := range packages {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		files := packages[dir]
		conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
		if _, err := conf.Check(files[0].Name.Name, fset, files, nil); err != nil {
			t.Errorf("type-checking %v: %v", dir, err)
		}
	}
}

func normalize(t *testing.T, name string, src []byte) string {
	t.Helper()
	b, err := format.Source(src)
	if err != nil {
		t.Errorf("%v: %v", name, err)
		return string(src)
	}
	return string(b)
}

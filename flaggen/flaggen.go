// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flaggen provides support for writing bit-flag code generators.
//
// A generator loads declaration files (see package decl), which New turns
// into Files describing the Go identifiers each declaration produces. The
// generator then writes Go source into GeneratedFiles, whose contents are
// collected with Outputs.
package flaggen

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/scanner"
	"go/token"
	"go/types"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/golang/bitflags/internal/decl"
	"github.com/golang/bitflags/internal/errors"
	"github.com/golang/bitflags/internal/logflags"
)

// DefaultSuffix is appended to a declaration file's base name to name its
// generated file when Options.Suffix is empty.
const DefaultSuffix = "_flags.go"

// Run loads the named declaration files, invokes the generator function, and
// returns the generated outputs.
//
// Passing a nil options is equivalent to passing a zero-valued one.
func Run(ctx context.Context, opts *Options, paths []string, f func(*Generator) error) ([]*Output, error) {
	files, err := Load(ctx, paths)
	if err != nil {
		return nil, err
	}
	gen, err := New(files, opts)
	if err != nil {
		return nil, err
	}
	if err := f(gen); err != nil {
		gen.Error(err)
	}
	return gen.Outputs()
}

// Load parses the named declaration files concurrently.
//
// Diagnostics from every file are combined into a single sorted
// scanner.ErrorList. Other failures, such as unreadable files, are returned
// as they occur.
func Load(ctx context.Context, paths []string) ([]*decl.File, error) {
	files := make([]*decl.File, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range paths {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files[i], errs[i] = decl.ParseFile(name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var list scanner.ErrorList
	for _, err := range errs {
		if err == nil {
			continue
		}
		var el scanner.ErrorList
		if !errors.As(err, &el) {
			return nil, err
		}
		list = append(list, el...)
	}
	if len(list) > 0 {
		list.Sort()
		return nil, list
	}
	return files, nil
}

// A Generator is a single run of a bit-flag code generator.
type Generator struct {
	// Files is the set of declaration files to generate, in input order.
	Files       []*File
	filesByName map[string]*File

	docs     map[Location][]string
	genFiles []*GeneratedFile
	opts     *Options
	suffix   string
	err      error
}

// Options are optional parameters to New.
type Options struct {
	// Suffix is appended to a declaration file's base name to form the
	// name of its generated file. The default is DefaultSuffix.
	Suffix string

	// Header holds lines emitted as comments at the top of every generated
	// file, typically a license notice.
	Header []string
}

// New returns a new Generator for the given declaration files.
//
// Passing a nil Options is equivalent to passing a zero-valued one.
func New(files []*decl.File, opts *Options) (*Generator, error) {
	if opts == nil {
		opts = &Options{}
	}
	gen := &Generator{
		filesByName: make(map[string]*File),
		docs:        make(map[Location][]string),
		opts:        opts,
		suffix:      opts.Suffix,
	}
	if gen.suffix == "" {
		gen.suffix = DefaultSuffix
	}

	outputs := make(map[string]*File)
	for _, df := range files {
		if gen.filesByName[df.Name] != nil {
			return nil, errors.New("duplicate file name: %q", df.Name)
		}
		f := newFile(gen, df)
		if prev := outputs[f.GeneratedFilename]; prev != nil {
			return nil, errors.New("%v and %v both generate %v", prev.Desc.Name, df.Name, f.GeneratedFilename)
		}
		outputs[f.GeneratedFilename] = f
		gen.Files = append(gen.Files, f)
		gen.filesByName[df.Name] = f
	}

	// Consistency check: Every file with the same Go import path should have
	// the same Go package name.
	first := make(map[GoImportPath]*File)
	for _, f := range gen.Files {
		prev, ok := first[f.GoImportPath]
		if !ok {
			first[f.GoImportPath] = f
			continue
		}
		if prev.GoPackageName != f.GoPackageName {
			return nil, errors.New("Go package %v has inconsistent names %v (%v) and %v (%v)",
				f.GoImportPath, prev.GoPackageName, prev.Desc.Name, f.GoPackageName, f.Desc.Name)
		}
	}

	// Files of one package share its scope; each file was checked on its own.
	declared := make(map[GoImportPath]map[string]*File)
	for _, f := range gen.Files {
		scope := declared[f.GoImportPath]
		if scope == nil {
			scope = make(map[string]*File)
			declared[f.GoImportPath] = scope
		}
		for _, flags := range f.Flags {
			for _, name := range flags.identifiers() {
				if prev := scope[name]; prev != nil && prev != f {
					return nil, errors.New("%v: %v redeclared in package %v (previous declaration in %v)",
						f.Desc.Name, name, f.GoPackageName, prev.Desc.Name)
				}
				scope[name] = f
			}
		}
	}
	return gen, nil
}

// Error records an error in code generation. The generator will report the
// error and will not produce output.
func (gen *Generator) Error(err error) {
	if gen.err == nil {
		gen.err = err
	}
}

// FileByName returns the file with the given name.
func (gen *Generator) FileByName(name string) (f *File, ok bool) {
	f, ok = gen.filesByName[name]
	return f, ok
}

// Header returns the comment lines to emit at the top of generated files.
func (gen *Generator) Header() []string {
	return gen.opts.Header
}

// An Output is the content of one generated file.
type Output struct {
	Filename string
	Content  []byte
}

// Outputs returns the generator output.
func (gen *Generator) Outputs() ([]*Output, error) {
	if gen.err != nil {
		return nil, gen.err
	}
	log := logflags.GenLogger()
	var outs []*Output
	for _, g := range gen.genFiles {
		if g.skip {
			continue
		}
		content, err := g.Content()
		if err != nil {
			return nil, err
		}
		if logflags.Gen() {
			log.Debugf("generated %s (%d bytes)", g.filename, len(content))
		}
		outs = append(outs, &Output{Filename: g.filename, Content: content})
	}
	return outs, nil
}

// A File describes a declaration file.
type File struct {
	Desc *decl.File

	GoPackageName GoPackageName // name of this file's Go package
	GoImportPath  GoImportPath  // import path of this file's Go package
	Flags         []*Flags      // flag type declarations

	// GeneratedFilename is the name of the Go file generated for this
	// declaration file. For example, "dir/perm.flags" generates
	// "dir/perm_flags.go".
	GeneratedFilename string
}

func newFile(gen *Generator, df *decl.File) *File {
	// The directory stands in for the import path: files in the same
	// directory belong to the same Go package.
	importPath := GoImportPath(path.Dir(filepath.ToSlash(df.Name)))
	f := &File{
		Desc:              df,
		GoPackageName:     GoPackageName(df.Package),
		GoImportPath:      importPath,
		GeneratedFilename: outputFilename(df.Name, gen.suffix),
	}
	for _, d := range df.Flags {
		f.Flags = append(f.Flags, newFlags(gen, f, d))
	}
	return f
}

// A Flags describes a flag type.
type Flags struct {
	Desc *decl.Flags

	GoIdent  GoIdent  // name of the generated Go type
	Values   []*Value // flag declarations
	Location Location // location of this declaration

	// Package-level functions generated for the type.
	Empty            GoIdent
	All              GoIdent
	FromBits         GoIdent
	FromBitsTruncate GoIdent
	Of               GoIdent
}

func newFlags(gen *Generator, f *File, desc *decl.Flags) *Flags {
	ident := func(suffix string) GoIdent {
		return f.GoImportPath.Ident(desc.Name + suffix)
	}
	flags := &Flags{
		Desc:             desc,
		GoIdent:          ident(""),
		Location:         newLocation(desc.Pos),
		Empty:            ident(decl.EmptySuffix),
		All:              ident(decl.AllSuffix),
		FromBits:         ident(decl.FromBitsSuffix),
		FromBitsTruncate: ident(decl.FromBitsTruncateSuffix),
		Of:               ident(decl.OfSuffix),
	}
	gen.docs[flags.Location] = desc.Doc
	for _, vd := range desc.Values {
		flags.Values = append(flags.Values, newValue(gen, f, flags, vd))
	}
	return flags
}

// identifiers returns every package-scope identifier the flag type declares.
func (flags *Flags) identifiers() []string {
	names := []string{
		flags.GoIdent.GoName,
		flags.Empty.GoName,
		flags.All.GoName,
		flags.FromBits.GoName,
		flags.FromBitsTruncate.GoName,
		flags.Of.GoName,
	}
	for _, v := range flags.Values {
		names = append(names, v.GoIdent.GoName)
	}
	return names
}

// A Value describes a single named flag.
type Value struct {
	Desc *decl.Value

	GoIdent  GoIdent // name of the generated Go constant
	Parent   *Flags  // flag type in which this value is declared
	Location Location
}

func newValue(gen *Generator, f *File, flags *Flags, desc *decl.Value) *Value {
	value := &Value{
		Desc:     desc,
		GoIdent:  f.GoImportPath.Ident(desc.Name),
		Parent:   flags,
		Location: newLocation(desc.Pos),
	}
	gen.docs[value.Location] = desc.Doc
	return value
}

// A GeneratedFile is a generated file.
type GeneratedFile struct {
	gen              *Generator
	skip             bool
	filename         string
	goImportPath     GoImportPath
	buf              bytes.Buffer
	packageNames     map[GoImportPath]GoPackageName
	usedPackageNames map[GoPackageName]bool
}

// NewGeneratedFile creates a new generated file with the given filename
// and import path.
func (gen *Generator) NewGeneratedFile(filename string, goImportPath GoImportPath) *GeneratedFile {
	g := &GeneratedFile{
		gen:              gen,
		filename:         filename,
		goImportPath:     goImportPath,
		packageNames:     make(map[GoImportPath]GoPackageName),
		usedPackageNames: make(map[GoPackageName]bool),
	}

	// All predeclared identifiers in Go are already used.
	for _, s := range types.Universe.Names() {
		g.usedPackageNames[GoPackageName(s)] = true
	}
	// So is everything declared in the same package.
	for _, f := range gen.Files {
		if f.GoImportPath != goImportPath {
			continue
		}
		for _, flags := range f.Flags {
			for _, s := range flags.identifiers() {
				g.usedPackageNames[GoPackageName(s)] = true
			}
		}
	}

	gen.genFiles = append(gen.genFiles, g)
	return g
}

// P prints a line to the generated output. It converts each parameter to a
// string following the same rules as fmt.Print. It never inserts spaces
// between parameters.
func (g *GeneratedFile) P(v ...interface{}) {
	for _, x := range v {
		switch x := x.(type) {
		case GoIdent:
			fmt.Fprint(&g.buf, g.QualifiedGoIdent(x))
		default:
			fmt.Fprint(&g.buf, x)
		}
	}
	fmt.Fprintln(&g.buf)
}

// PrintLeadingComments writes the doc comment of the declaration at loc to
// the generated file.
//
// It returns true if a comment was present at the location.
func (g *GeneratedFile) PrintLeadingComments(loc Location) (hasComment bool) {
	doc := g.gen.docs[loc]
	for _, line := range doc {
		if line == "" {
			g.buf.WriteString("//\n")
			continue
		}
		g.buf.WriteString("// ")
		g.buf.WriteString(line)
		g.buf.WriteString("\n")
	}
	return len(doc) > 0
}

// QualifiedGoIdent returns the string to use for a Go identifier.
//
// If the identifier is from a different Go package than the generated file,
// the returned name will be qualified (package.name) and an import statement
// for the identifier's package will be included in the file.
func (g *GeneratedFile) QualifiedGoIdent(ident GoIdent) string {
	if ident.GoImportPath == g.goImportPath {
		return ident.GoName
	}
	if packageName, ok := g.packageNames[ident.GoImportPath]; ok {
		return string(packageName) + "." + ident.GoName
	}
	packageName := cleanPackageName(baseName(string(ident.GoImportPath)))
	for i, orig := 1, packageName; g.usedPackageNames[packageName]; i++ {
		packageName = orig + GoPackageName(strconv.Itoa(i))
	}
	g.packageNames[ident.GoImportPath] = packageName
	g.usedPackageNames[packageName] = true
	return string(packageName) + "." + ident.GoName
}

// Skip removes the generated file from the generator output.
func (g *GeneratedFile) Skip() {
	g.skip = true
}

// Content returns the contents of the generated file.
func (g *GeneratedFile) Content() ([]byte, error) {
	if !strings.HasSuffix(g.filename, ".go") {
		return g.buf.Bytes(), nil
	}

	// Reformat generated code.
	original := g.buf.Bytes()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", original, parser.ParseComments)
	if err != nil {
		// Print out the bad code with line numbers.
		// This should never happen in practice, but it can while changing generated code
		// so consider this a debugging aid.
		var src bytes.Buffer
		s := bufio.NewScanner(bytes.NewReader(original))
		for line := 1; s.Scan(); line++ {
			fmt.Fprintf(&src, "%5d\t%s\n", line, s.Bytes())
		}
		return nil, errors.New("%v: unparsable Go source: %v\n%v", g.filename, err, src.String())
	}

	// Collect a sorted list of all imports.
	var importPaths [][2]string
	for importPath, pkgName := range g.packageNames {
		importPaths = append(importPaths, [2]string{string(pkgName), string(importPath)})
	}
	sort.Slice(importPaths, func(i, j int) bool {
		return importPaths[i][1] < importPaths[j][1]
	})

	// Modify the AST to include a new import block.
	if len(importPaths) > 0 {
		// Insert block after package statement or
		// possible comment attached to the end of the package statement.
		pos := file.Package
		tokFile := fset.File(file.Package)
		pkgLine := tokFile.Line(file.Package)
		for _, c := range file.Comments {
			if tokFile.Line(c.Pos()) > pkgLine {
				break
			}
			pos = c.End()
		}

		// Construct the import block.
		impDecl := &ast.GenDecl{
			Tok:    token.IMPORT,
			TokPos: pos,
			Lparen: pos,
			Rparen: pos,
		}
		for _, importPath := range importPaths {
			spec := &ast.ImportSpec{
				Path: &ast.BasicLit{
					Kind:     token.STRING,
					Value:    strconv.Quote(importPath[1]),
					ValuePos: pos,
				},
				EndPos: pos,
			}
			// Name the import only when the name differs from the one
			// the package would get by default.
			if importPath[0] != baseName(importPath[1]) {
				spec.Name = &ast.Ident{
					Name:    importPath[0],
					NamePos: pos,
				}
			}
			impDecl.Specs = append(impDecl.Specs, spec)
		}
		file.Decls = append([]ast.Decl{impDecl}, file.Decls...)
	}

	var out bytes.Buffer
	if err = (&printer.Config{Mode: printer.TabIndent | printer.UseSpaces, Tabwidth: 8}).Fprint(&out, fset, file); err != nil {
		return nil, errors.New("%v: can not reformat Go source: %v", g.filename, err)
	}

	// Group and sort the import block the way goimports does.
	b, err := imports.Process(g.filename, out.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.New("%v: can not format imports: %v", g.filename, err)
	}
	return b, nil
}

// A Location is a location in a declaration file.
type Location struct {
	SourceFile   string
	Line, Column int
}

func newLocation(pos token.Position) Location {
	return Location{SourceFile: pos.Filename, Line: pos.Line, Column: pos.Column}
}

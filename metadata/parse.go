package metadata

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// typeFacts holds the directive descriptors recovered for one type's
// declaration: on the type itself, on each of its declared fields, and on
// each method declared with the type as receiver.
type typeFacts struct {
	typeDescriptors   []string
	fieldDescriptors  map[string][]string
	methodDescriptors map[string][]string
}

// readTypeFacts locates t's package source and reads the declarations
// directly. Test files are skipped: they are not part of the type's compiled
// representation.
func readTypeFacts(t reflect.Type) (*typeFacts, error) {
	if t.Name() == "" || t.PkgPath() == "" {
		return nil, fmt.Errorf("%w: %s is synthesized and has no backing source", ErrSourceUnavailable, t)
	}
	dir, err := locatePackage(t.PkgPath())
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, dir, err)
	}

	facts := &typeFacts{
		fieldDescriptors:  make(map[string][]string),
		methodDescriptors: make(map[string][]string),
	}
	fset := token.NewFileSet()
	found := false
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, name, err)
		}
		if collectFacts(file, t.Name(), facts) {
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: declaration of %s not found in %s", ErrSourceUnavailable, t, dir)
	}
	return facts, nil
}

// collectFacts scans one file for typeName's declaration and methods,
// appending what it finds to facts. It reports whether the type declaration
// itself was seen in this file.
func collectFacts(file *ast.File, typeName string, facts *typeFacts) bool {
	found := false
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name.Name != typeName {
					continue
				}
				found = true
				facts.typeDescriptors = append(facts.typeDescriptors, directivesFrom(d.Doc, ts.Doc, ts.Comment)...)
				if st, ok := ts.Type.(*ast.StructType); ok {
					collectFieldFacts(st, facts)
				}
			}
		case *ast.FuncDecl:
			if receiverTypeName(d) != typeName {
				continue
			}
			facts.methodDescriptors[d.Name.Name] = append(
				facts.methodDescriptors[d.Name.Name], directivesFrom(d.Doc)...)
		}
	}
	return found
}

// collectFieldFacts records every declared field name, directives or not, so
// field-existence queries can distinguish "no annotation" from "no field".
// Embedded fields are hierarchy links, not fields, and are skipped.
func collectFieldFacts(st *ast.StructType, facts *typeFacts) {
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue
		}
		descs := directivesFrom(field.Doc, field.Comment)
		for _, name := range field.Names {
			facts.fieldDescriptors[name.Name] = append(facts.fieldDescriptors[name.Name], descs...)
		}
	}
}

// directivesFrom extracts directive comments ("//prefix:name args") from the
// given comment groups, returning the text after the comment marker.
func directivesFrom(groups ...*ast.CommentGroup) []string {
	var out []string
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			text, ok := strings.CutPrefix(c.Text, "//")
			if !ok || text == "" || text[0] == ' ' || text[0] == '\t' || text[0] == '/' {
				continue
			}
			head, _, _ := strings.Cut(text, " ")
			if !strings.Contains(head, ":") {
				continue
			}
			out = append(out, text)
		}
	}
	return out
}

// receiverTypeName returns the name of a method's receiver base type, or ""
// for plain functions.
func receiverTypeName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return ""
	}
	expr := fd.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.IndexExpr:
		if id, ok := e.X.(*ast.Ident); ok {
			return id.Name
		}
	case *ast.IndexListExpr:
		if id, ok := e.X.(*ast.Ident); ok {
			return id.Name
		}
	}
	return ""
}

// Package soljsx compiles JSX view files into imperative DOM-building
// JavaScript modules for a fine-grained reactive runtime: each view becomes a
// cloneable HTML template plus the effect, event and insert wiring that keeps
// it live.
package soljsx

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/Frank-III/solid-jsx-go/dom"
	"github.com/Frank-III/solid-jsx-go/jsx"
)

// jsxExt is the extension of JSX view files. It is used when matching files
// in the file system.
const jsxExt = ".jsx"

// Compile reads one JSX view file and returns the compiled JS module text.
// The file must contain a single root JSX element or fragment; the module
// default-exports a component function returning the built view.
func Compile(name string, r io.Reader, opts *dom.Options) (out string, err error) {
	doc, err := jsx.ParseWithSource(name, r)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", name, err)
	}
	root := doc.FirstChild
	if root == nil {
		return "", fmt.Errorf("parse %s: %w", name, jsx.ErrNoRoot)
	}

	defer dom.Recover(&err)

	t := dom.NewTransformer(opts)
	expr := t.RootExpression(root)

	body := fmt.Sprintf("export default function %s() {\n  return %s;\n}", componentName(name), indentTail(expr, "  "))
	return t.EmitModule(body), nil
}

// componentName derives a JS identifier from the view's file name; a name
// that cannot yield an identifier falls back to "view".
func componentName(name string) string {
	base := path.Base(name)
	base = strings.TrimSuffix(base, path.Ext(base))

	var b strings.Builder
	for i := 0; i < len(base); i++ {
		c := base[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$':
			b.WriteByte(c)
		case c >= '0' && c <= '9' && b.Len() > 0:
			b.WriteByte(c)
		}
	}
	if b.Len() == 0 {
		return "view"
	}
	return b.String()
}

// indentTail indents every line of s after the first, so a multi-line block
// expression nests under the return statement it is spliced into.
func indentTail(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

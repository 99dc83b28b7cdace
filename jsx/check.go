package jsx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsComponent reports whether a tag name refers to a component rather than a
// native element: the first character is uppercase, or the name is a dotted
// member chain. The empty string is not a component.
func IsComponent(tag string) bool {
	if tag == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tag)
	return unicode.IsUpper(r) || strings.Contains(tag, ".")
}

// IsBuiltIn reports whether tag is one of the framework-provided control-flow
// components.
func IsBuiltIn(tag string) bool {
	_, ok := builtIns[tag]
	return ok
}

// IsSVGElement reports whether tag is a known SVG element name.
func IsSVGElement(tag string) bool {
	_, ok := svgElements[tag]
	return ok
}

// TagName returns the tag of an element node as a single string. The parser
// stores names verbatim, so member chains come back dotted ("Foo.Bar.Baz"),
// namespaced names with their prefix ("svg:use"), and this-expressions as the
// literal "this". For any other node type the result is empty.
func TagName(n *Node) string {
	if n == nil || n.Type != ElementNode {
		return ""
	}
	return n.Data
}

// FindAttr returns the first non-spread attribute with the given full name,
// or nil if the element has none.
func FindAttr(n *Node, key string) *Attribute {
	if n == nil || n.Type != ElementNode {
		return nil
	}
	for i := range n.Attr {
		if !n.Attr[i].Spread && n.Attr[i].Key == key {
			return &n.Attr[i]
		}
	}
	return nil
}

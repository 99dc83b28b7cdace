// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Modifications:
// Copyright 2025 Frank-III
//  - New Node struct for JSX trees: expression containers, fragments and
//    spread attributes; tag and attribute names are kept case-sensitive.

package jsx

import "strings"

// A NodeType is the type of a Node.
type NodeType int

const (
	ErrorNode NodeType = iota
	DocumentNode
	ElementNode
	TextNode
	ExprNode
	FragmentNode
)

// Node is a node in a parsed JSX tree.
//
// For ElementNode, Data is the tag name exactly as written in the source:
// an identifier ("div", "Show"), a dotted member chain ("Foo.Bar.Baz"), a
// namespaced name ("svg:use"), or the literal "this". For TextNode, Data is
// the raw text. For ExprNode, Expr carries the parsed container expression.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Type NodeType
	Data string
	Expr Expr

	// Attr is the ordered attribute list of an ElementNode, including
	// spread attributes at their source position.
	Attr []Attribute

	Source Source
}

// An AttrValueKind discriminates the three JSX attribute value shapes.
type AttrValueKind int

const (
	// AttrNone is an absent value: a bare boolean attribute like <input disabled>.
	AttrNone AttrValueKind = iota
	// AttrString is a quoted string literal value.
	AttrString
	// AttrExpr is an {expression} container value.
	AttrExpr
)

// Attribute is one entry of an opening element's attribute list.
//
// Key holds the full attribute name as written, including any namespace
// prefix ("on:click", "use:model", "prop:value", "attr:width"). For a spread
// attribute ({...props}) Spread is true, Key is empty, and Val.Expr holds the
// spread argument.
type Attribute struct {
	Key    string
	Val    AttrValue
	Spread bool
	Source Source
}

// AttrValue is the value variant of an Attribute.
type AttrValue struct {
	Kind AttrValueKind
	Text string // for AttrString
	Expr Expr   // for AttrExpr and spreads
}

// IsNamespaced reports whether the attribute name carries a namespace prefix.
func (a Attribute) IsNamespaced() bool {
	return strings.Contains(a.Key, ":")
}

// IsWhitespace reports whether n is a text node consisting only of whitespace.
func (n *Node) IsWhitespace() bool {
	return n.Type == TextNode && strings.TrimLeft(n.Data, whitespace) == ""
}

const whitespace = " \t\r\n\f"

// InsertBefore inserts newChild as a child of n, immediately before oldChild
// in the sequence of n's children. oldChild may be nil, in which case newChild
// is appended to the end of n's children.
//
// It will panic if newChild already has a parent or siblings.
func (n *Node) InsertBefore(newChild, oldChild *Node) {
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic("jsx: InsertBefore called for an attached child Node")
	}
	var prev, next *Node
	if oldChild != nil {
		prev, next = oldChild.PrevSibling, oldChild
	} else {
		prev = n.LastChild
	}
	if prev != nil {
		prev.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	if next != nil {
		next.PrevSibling = newChild
	} else {
		n.LastChild = newChild
	}
	newChild.Parent = n
	newChild.PrevSibling = prev
	newChild.NextSibling = next
}

// AppendChild adds a node c as a child of n.
//
// It will panic if c already has a parent or siblings.
func (n *Node) AppendChild(c *Node) {
	if c.Parent != nil || c.PrevSibling != nil || c.NextSibling != nil {
		panic("jsx: AppendChild called for an attached child Node")
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = c
	} else {
		n.FirstChild = c
	}
	n.LastChild = c
	c.Parent = n
	c.PrevSibling = last
}

// RemoveChild removes a node c that is a child of n. Afterwards, c will have
// no parent and no siblings.
//
// It will panic if c's parent is not n.
func (n *Node) RemoveChild(c *Node) {
	if c.Parent != n {
		panic("jsx: RemoveChild called for a non-child Node")
	}
	if n.FirstChild == c {
		n.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	}
	if n.LastChild == c {
		n.LastChild = c.PrevSibling
	}
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	}
	c.Parent = nil
	c.PrevSibling = nil
	c.NextSibling = nil
}

package jsx

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// A jsxParser parses a JSX document into a Node tree. The tokenizer from
// golang.org/x/net/html is deliberately not used here: it lowercases tag and
// attribute names, which would destroy the Component/native distinction and
// camelCase event attributes. JSX is strict enough (every tag closes or
// self-closes) that no HTML5 recovery rules are needed either.
type jsxParser struct {
	src  string
	file string

	pos  int
	line int // 1-based
	col  int // 1-based, in bytes; names and text are ASCII-framed

	doc  *Node
	errs []error
}

// Parse reads a JSX document and returns its Node tree. The document must
// contain exactly one root element or fragment; leading and trailing
// whitespace is ignored. All syntax errors found are joined into the returned
// error, alongside the best-effort tree.
func Parse(r io.Reader) (*Node, error) {
	return ParseWithSource("", r)
}

// ParseWithSource is Parse with a file name attached to node and error spans.
func ParseWithSource(name string, r io.Reader) (*Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	p := &jsxParser{
		src:  string(src),
		file: name,
		line: 1,
		col:  1,
		doc: &Node{
			Type:   DocumentNode,
			Source: Source{File: name},
		},
	}
	p.parseDocument()
	return p.doc, errors.Join(p.errs...)
}

func (p *jsxParser) parseDocument() {
	p.skipSpace()
	if p.eof() {
		p.errorHere(ErrNoRoot)
		return
	}
	if p.peek() != '<' {
		p.errorHere(fmt.Errorf("expected '<', found %q", p.rest(10)))
		return
	}
	root := p.parseNode()
	if root == nil {
		p.errorHere(ErrNoRoot)
		return
	}
	p.doc.AppendChild(root)
	p.skipSpace()
	if !p.eof() {
		p.errorHere(fmt.Errorf("unexpected content after root element: %q", p.rest(10)))
	}
}

// parseNode parses one element or fragment starting at '<'.
func (p *jsxParser) parseNode() *Node {
	start := p.here()
	p.next() // consume '<'
	if p.peek() == '>' {
		p.next()
		return p.parseFragment(start)
	}
	return p.parseElement(start)
}

func (p *jsxParser) parseFragment(start Source) *Node {
	n := &Node{Type: FragmentNode, Source: start}
	p.parseChildren(n)
	// parseChildren stops just after "</"; a fragment closes with "</>".
	p.skipSpace()
	if p.peek() == '>' {
		p.next()
	} else {
		p.error(start, fmt.Errorf("unclosed fragment"))
	}
	p.finishSpan(n, start)
	return n
}

func (p *jsxParser) parseElement(start Source) *Node {
	tag := p.scanName()
	if tag == "" {
		p.error(start, fmt.Errorf("expected tag name, found %q", p.rest(10)))
		return nil
	}
	n := &Node{Type: ElementNode, Data: tag, Source: start}

	for {
		p.skipSpace()
		switch {
		case p.eof():
			p.error(start, fmt.Errorf("unexpected EOF in <%s>", tag))
			return n
		case p.peek() == '/':
			p.next()
			if p.peek() == '>' {
				p.next()
			} else {
				p.error(start, fmt.Errorf("expected '>' after '/' in <%s>", tag))
			}
			p.finishSpan(n, start)
			return n
		case p.peek() == '>':
			p.next()
			p.parseChildren(n)
			p.parseCloseTag(n, start)
			p.finishSpan(n, start)
			return n
		case p.peek() == '{':
			p.parseSpreadAttr(n)
		default:
			p.parseAttr(n)
		}
	}
}

// parseCloseTag consumes the tag name and '>' of a closing tag; parseChildren
// has already consumed the "</".
func (p *jsxParser) parseCloseTag(n *Node, start Source) {
	name := p.scanName()
	p.skipSpace()
	if p.peek() == '>' {
		p.next()
	} else {
		p.error(start, fmt.Errorf("malformed closing tag </%s", name))
	}
	if name != n.Data {
		p.error(start, fmt.Errorf("<%s> closed by </%s>", n.Data, name))
	}
}

// parseSpreadAttr parses a {...expr} attribute. A bare {expr} in attribute
// position is not valid JSX and is recorded as an error.
func (p *jsxParser) parseSpreadAttr(n *Node) {
	start := p.here()
	inner := p.scanBraces()
	trimmed := strings.TrimSpace(inner)
	if !strings.HasPrefix(trimmed, "...") {
		p.error(start, fmt.Errorf("expected spread attribute, found {%s}", trimmed))
		return
	}
	n.Attr = append(n.Attr, Attribute{
		Spread: true,
		Val: AttrValue{
			Kind: AttrExpr,
			Expr: NewExpr(strings.TrimPrefix(trimmed, "...")),
		},
		Source: start,
	})
}

func (p *jsxParser) parseAttr(n *Node) {
	start := p.here()
	key := p.scanName()
	if key == "" {
		p.error(start, fmt.Errorf("expected attribute name, found %q", p.rest(10)))
		p.next() // skip the offending byte to make progress
		return
	}
	attr := Attribute{Key: key, Source: start}
	p.skipSpace()
	if p.peek() != '=' {
		// Boolean attribute.
		n.Attr = append(n.Attr, attr)
		return
	}
	p.next()
	p.skipSpace()
	switch c := p.peek(); c {
	case '"', '\'':
		attr.Val = AttrValue{Kind: AttrString, Text: p.scanQuoted(c)}
	case '{':
		attr.Val = AttrValue{Kind: AttrExpr, Expr: NewExpr(p.scanBraces())}
	default:
		p.error(start, fmt.Errorf("invalid value for attribute %s", key))
	}
	n.Attr = append(n.Attr, attr)
}

// parseChildren consumes children until a closing tag opener "</" (which it
// consumes) or EOF.
func (p *jsxParser) parseChildren(parent *Node) {
	for {
		switch {
		case p.eof():
			p.error(parent.Source, fmt.Errorf("unexpected EOF in children of %s", describeNode(parent)))
			return
		case p.peek() == '<':
			if p.peekAt(1) == '/' {
				p.next()
				p.next()
				return
			}
			if child := p.parseNode(); child != nil {
				parent.AppendChild(child)
			}
		case p.peek() == '{':
			start := p.here()
			expr := NewExpr(p.scanBraces())
			if expr.IsEmpty() {
				continue // {} and {/* comment */} produce no child
			}
			parent.AppendChild(&Node{Type: ExprNode, Expr: expr, Source: start})
		default:
			start := p.here()
			text := p.scanText()
			parent.AppendChild(&Node{Type: TextNode, Data: text, Source: start})
		}
	}
}

func describeNode(n *Node) string {
	if n.Type == FragmentNode {
		return "<>"
	}
	return "<" + n.Data + ">"
}

// scanText consumes raw text up to the next '<' or '{'.
func (p *jsxParser) scanText() string {
	start := p.pos
	for !p.eof() {
		if c := p.peek(); c == '<' || c == '{' {
			break
		}
		p.next()
	}
	return p.src[start:p.pos]
}

// scanName consumes a tag or attribute name: an identifier possibly extended
// with dots (member tags), a colon (namespaced names) and dashes (custom
// elements, kebab-case attributes).
func (p *jsxParser) scanName() string {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			c == '_' || c == '$' || c >= 0x80 {
			p.next()
			continue
		}
		if (c == '.' || c == ':' || c == '-') && p.pos > start {
			p.next()
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

// scanQuoted consumes a quoted attribute value and returns its contents.
// JSX string values have no escape sequences; the quote character simply
// cannot appear inside.
func (p *jsxParser) scanQuoted(quote byte) string {
	p.next() // opening quote
	start := p.pos
	for !p.eof() && p.peek() != quote {
		p.next()
	}
	val := p.src[start:p.pos]
	if p.eof() {
		p.errorHere(fmt.Errorf("unterminated string"))
	} else {
		p.next() // closing quote
	}
	return val
}

// scanBraces consumes a balanced {...} group and returns the inner text.
// Nested braces, string literals (with escapes), template literals and both
// comment forms are tracked so that a '}' inside any of them does not close
// the group.
func (p *jsxParser) scanBraces() string {
	open := p.here()
	p.next() // consume '{'
	start := p.pos
	depth := 1
	for !p.eof() {
		switch c := p.peek(); c {
		case '{':
			depth++
			p.next()
		case '}':
			depth--
			if depth == 0 {
				inner := p.src[start:p.pos]
				p.next()
				return inner
			}
			p.next()
		case '\'', '"', '`':
			p.scanExprString(c)
		case '/':
			p.scanExprComment()
		default:
			p.next()
		}
	}
	p.error(open, fmt.Errorf("unclosed expression"))
	return p.src[start:p.pos]
}

// scanExprString consumes a string literal inside an expression container.
// Template literals may nest ${...} substitutions; each one is consumed here
// by a recursive scanBraces call, so a '}' inside it does not end the string.
func (p *jsxParser) scanExprString(quote byte) {
	p.next() // opening quote
	for !p.eof() {
		switch c := p.peek(); c {
		case '\\':
			p.next()
			if !p.eof() {
				p.next()
			}
		case '$':
			p.next()
			if quote == '`' && !p.eof() && p.peek() == '{' {
				p.scanBraces()
			}
		case quote:
			p.next()
			return
		default:
			p.next()
		}
	}
	p.errorHere(fmt.Errorf("unterminated string"))
}

// scanExprComment consumes a // or /* */ comment, or a single '/' when it is
// not a comment opener (a division, say).
func (p *jsxParser) scanExprComment() {
	p.next() // the '/'
	switch {
	case p.eof():
	case p.peek() == '/':
		for !p.eof() && p.peek() != '\n' {
			p.next()
		}
	case p.peek() == '*':
		p.next()
		for !p.eof() {
			if p.peek() == '*' && p.peekAt(1) == '/' {
				p.next()
				p.next()
				return
			}
			p.next()
		}
		p.errorHere(fmt.Errorf("unterminated comment"))
	}
}

func (p *jsxParser) skipSpace() {
	for !p.eof() && strings.IndexByte(whitespace, p.peek()) >= 0 {
		p.next()
	}
}

func (p *jsxParser) eof() bool { return p.pos >= len(p.src) }

func (p *jsxParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *jsxParser) peekAt(off int) byte {
	if p.pos+off >= len(p.src) {
		return 0
	}
	return p.src[p.pos+off]
}

func (p *jsxParser) next() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c
}

func (p *jsxParser) rest(n int) string {
	end := p.pos + n
	if end > len(p.src) {
		end = len(p.src)
	}
	return p.src[p.pos:end]
}

func (p *jsxParser) here() Source {
	return Source{
		File: p.file,
		Span: Span{Offset: p.pos, Line: p.line, Column: p.col},
	}
}

func (p *jsxParser) finishSpan(n *Node, start Source) {
	n.Source = start
	n.Source.Span.Length = p.pos - start.Span.Offset
}

func (p *jsxParser) error(src Source, err error) {
	p.errs = append(p.errs, &ParseError{Source: src, Err: err})
}

func (p *jsxParser) errorHere(err error) {
	p.error(p.here(), err)
}

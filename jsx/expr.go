package jsx

import (
	"strings"

	"github.com/expr-lang/expr/ast"
	expr_parser "github.com/expr-lang/expr/parser"
)

// An ExprKind records how the source text of an expression container was
// understood. The distinction matters only for the static/dynamic split:
// everything the expression parser cannot digest is conservatively dynamic,
// except function and template literals which have well-known static shapes.
type ExprKind int

const (
	// ExprNone is the empty container {} or a container holding a single
	// block comment.
	ExprNone ExprKind = iota
	// ExprParsed has a full expression AST available in Node.
	ExprParsed
	// ExprFunction is a function or arrow literal; the value of the
	// expression is the function object itself.
	ExprFunction
	// ExprTemplate is a backtick template literal.
	ExprTemplate
	// ExprOpaque is source text the parser did not understand.
	ExprOpaque
)

// Expr holds one embedded expression: the raw source text plus, when the
// expression sub-language parser accepts it, the parsed AST used for the
// static/dynamic classification. Serialization always returns the raw text,
// so the author's spelling survives into the emitted program unchanged.
type Expr struct {
	raw  string
	kind ExprKind
	node ast.Node
}

// NewExpr classifies and parses the source text of an expression container.
// It never fails: unparseable text becomes an opaque (dynamic) expression.
func NewExpr(s string) Expr {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || isCommentOnly(trimmed) {
		return Expr{raw: s, kind: ExprNone}
	}
	if isFunctionLiteral(trimmed) {
		return Expr{raw: trimmed, kind: ExprFunction}
	}
	if strings.HasPrefix(trimmed, "`") && len(trimmed) > 1 &&
		skipString(trimmed, 0) == len(trimmed)-1 && trimmed[len(trimmed)-1] == '`' {
		return Expr{raw: trimmed, kind: ExprTemplate}
	}
	if trimmed == "null" || trimmed == "undefined" {
		// The expression parser would read these as identifiers.
		return Expr{raw: trimmed, kind: ExprParsed, node: &ast.NilNode{}}
	}
	tree, err := expr_parser.Parse(trimmed)
	if err != nil {
		return Expr{raw: trimmed, kind: ExprOpaque}
	}
	return Expr{raw: trimmed, kind: ExprParsed, node: tree.Node}
}

// JS returns the expression as source text.
func (e Expr) JS() string { return e.raw }

// Kind returns how the expression text was understood.
func (e Expr) Kind() ExprKind { return e.kind }

// Node returns the parsed AST, or nil when the text was not parseable.
func (e Expr) Node() ast.Node { return e.node }

// IsEmpty reports whether the container held no expression.
func (e Expr) IsEmpty() bool { return e.kind == ExprNone }

// IsFunctionLiteral reports whether the expression is a function or arrow
// literal written inline.
func (e Expr) IsFunctionLiteral() bool { return e.kind == ExprFunction }

// IsDynamic reports whether the expression must be re-evaluated inside a
// reactive effect. The predicate is purely syntactic and over-approximates:
// it never marks a potentially reactive read as static.
func (e Expr) IsDynamic() bool {
	switch e.kind {
	case ExprNone:
		return false
	case ExprFunction:
		// The expression's value is the function object itself.
		return false
	case ExprTemplate:
		return templateHasInterpolation(e.raw)
	case ExprParsed:
		return isDynamicNode(e.node)
	default:
		return true
	}
}

func isDynamicNode(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.StringNode, *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode,
		*ast.NilNode, *ast.ConstantNode:
		return false
	case *ast.ClosureNode:
		return false
	case *ast.UnaryNode:
		return isDynamicNode(n.Node)
	case *ast.BinaryNode:
		return isDynamicNode(n.Left) || isDynamicNode(n.Right)
	case *ast.ArrayNode:
		for _, el := range n.Nodes {
			if isDynamicNode(el) {
				return true
			}
		}
		return false
	case *ast.MapNode:
		for _, pair := range n.Pairs {
			p, ok := pair.(*ast.PairNode)
			if !ok {
				return true
			}
			if isDynamicNode(p.Value) {
				return true
			}
		}
		return false
	default:
		// Calls, member access, identifiers, conditionals, chains, slices
		// and anything unanticipated.
		return true
	}
}

// isCommentOnly reports whether the container text is a single block comment,
// i.e. a {/* ... */} child that produces no output.
func isCommentOnly(s string) bool {
	return strings.HasPrefix(s, "/*") && strings.HasSuffix(s, "*/") &&
		!strings.Contains(s[2:len(s)-2], "*/")
}

// isFunctionLiteral detects function expressions and arrow functions by
// shape: a "function" keyword prefix, or a top-level "=>" outside of any
// bracket or string nesting.
func isFunctionLiteral(s string) bool {
	if t := strings.TrimPrefix(s, "async"); t != s {
		s = strings.TrimSpace(t)
	}
	if strings.HasPrefix(s, "function") {
		rest := s[len("function"):]
		if rest == "" {
			return false
		}
		switch rest[0] {
		case ' ', '\t', '\n', '(', '*':
			return true
		}
		return false
	}
	// An arrow function's top level is a parameter prefix followed by "=>":
	// an identifier or a parenthesized list. Any other top-level token (a
	// '?', an operator, a '.') means the arrow, if present at all, belongs
	// to a nested expression.
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == '\'' || c == '"' || c == '`':
			i = skipString(s, i)
		case depth == 0:
			if c == '=' && i+1 < len(s) && s[i+1] == '>' {
				return true
			}
			if !isIdentByte(c) && c != ' ' && c != '\t' && c != '\n' {
				return false
			}
		}
	}
	return false
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '$' || c >= 0x80
}

// templateHasInterpolation reports whether a backtick template literal
// contains at least one ${...} substitution.
func templateHasInterpolation(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '$':
			if i+1 < len(s) && s[i+1] == '{' {
				return true
			}
		}
	}
	return false
}

// skipString advances past the string literal opening at s[i], returning the
// index of its closing quote (or the last index if unterminated).
func skipString(s string, i int) int {
	quote := s[i]
	for i++; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}
	return len(s) - 1
}

package dom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Frank-III/solid-jsx-go/jsx"
)

// transformComponent lowers a component element into a createComponent call.
// Static attributes become plain properties, dynamic expressions become
// getters so reads stay lazy, spreads compose through mergeProps, and
// children are lowered recursively into a children getter.
func (t *Transformer) transformComponent(n *jsx.Node) *TransformResult {
	tag := jsx.TagName(n)
	result := &TransformResult{TagName: tag}

	t.ctx.RegisterHelper("createComponent")

	var parts []string   // mergeProps operands, in source order
	var entries []string // properties of the object literal being built
	flush := func() {
		if len(entries) > 0 {
			parts = append(parts, "{"+strings.Join(entries, ", ")+"}")
			entries = nil
		}
	}

	for _, attr := range n.Attr {
		if attr.Spread {
			flush()
			parts = append(parts, attr.Val.Expr.JS())
			continue
		}
		key := propKey(attr.Key)
		switch attr.Val.Kind {
		case jsx.AttrNone:
			entries = append(entries, key+": true")
		case jsx.AttrString:
			entries = append(entries, key+": "+strconv.Quote(attr.Val.Text))
		case jsx.AttrExpr:
			if attr.Val.Expr.IsEmpty() {
				continue
			}
			if attr.Val.Expr.IsDynamic() {
				entries = append(entries, fmt.Sprintf("get %s() { return %s; }", key, attr.Val.Expr.JS()))
			} else {
				entries = append(entries, key+": "+attr.Val.Expr.JS())
			}
		}
	}

	if children := t.childrenExpression(n); children != "" {
		entries = append(entries, fmt.Sprintf("get children() { return %s; }", children))
	}
	flush()

	props := "{}"
	switch len(parts) {
	case 0:
	case 1:
		props = parts[0]
	default:
		t.ctx.RegisterHelper("mergeProps")
		props = "mergeProps(" + strings.Join(parts, ", ") + ")"
	}

	result.Exprs = append(result.Exprs, Expr{
		Code: fmt.Sprintf("createComponent(%s, %s)", tag, props),
	})
	return result
}

// propKey quotes a property name when it is not a valid identifier.
func propKey(key string) string {
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$' {
			continue
		}
		if c >= '0' && c <= '9' && i > 0 {
			continue
		}
		return strconv.Quote(key)
	}
	if key == "" {
		return `""`
	}
	return key
}

// childrenExpression lowers the children of a component element into a
// single expression: one child stands alone, several become an array.
// Whitespace-only text disappears, like everywhere else.
func (t *Transformer) childrenExpression(parent *jsx.Node) string {
	var exprs []string
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if s := t.childExpression(c); s != "" {
			exprs = append(exprs, s)
		}
	}
	switch len(exprs) {
	case 0:
		return ""
	case 1:
		return exprs[0]
	default:
		return "[" + strings.Join(exprs, ", ") + "]"
	}
}

func (t *Transformer) childExpression(c *jsx.Node) string {
	switch c.Type {
	case jsx.TextNode:
		text := jsx.TrimWhitespace(c.Data)
		if text == "" {
			return ""
		}
		return strconv.Quote(text)
	case jsx.ExprNode:
		return c.Expr.JS()
	case jsx.ElementNode:
		return t.RootExpression(c)
	case jsx.FragmentNode:
		return t.childrenExpression(c)
	}
	return ""
}

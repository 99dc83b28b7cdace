package dom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr/ast"

	"github.com/Frank-III/solid-jsx-go/jsx"
)

// transformStyle handles the style attribute. A string value inlines
// directly; an object literal whose keys and values are all static folds into
// a literal CSS string; everything else goes through the style runtime
// helper, wrapped in an effect when the expression is dynamic.
func transformStyle(attr *jsx.Attribute, tagName string, result *TransformResult, ctx *BlockContext) {
	switch attr.Val.Kind {
	case jsx.AttrString:
		appendTemplate(result, fmt.Sprintf(" style=%q", jsx.EscapeHTML(attr.Val.Text, true)))
	case jsx.AttrExpr:
		e := attr.Val.Expr
		if e.IsEmpty() {
			return
		}
		if obj, ok := e.Node().(*ast.MapNode); ok {
			if css, ok := ObjectToStyleString(obj); ok {
				appendTemplate(result, fmt.Sprintf(" style=%q", css))
				return
			}
		}

		elemID := mustID(result.ID, "the style helper", tagName)
		ctx.RegisterHelper("style")
		if e.IsDynamic() {
			ctx.RegisterHelper("effect")
			result.Exprs = append(result.Exprs, Expr{
				Code: fmt.Sprintf("effect(() => style(%s, %s))", elemID, e.JS()),
			})
			return
		}
		result.Exprs = append(result.Exprs, Expr{
			Code: fmt.Sprintf("style(%s, %s)", elemID, e.JS()),
		})
	}
}

// ObjectToStyleString folds a static object literal into a CSS declaration
// string: "margin-top: 4px; opacity: 0.5". It returns false when any key or
// value is not a compile-time literal, in which case the caller falls back to
// the runtime helper.
func ObjectToStyleString(obj *ast.MapNode) (string, bool) {
	var styles []string

	for _, pair := range obj.Pairs {
		p, ok := pair.(*ast.PairNode)
		if !ok {
			return "", false
		}
		keyNode, ok := p.Key.(*ast.StringNode)
		if !ok {
			return "", false
		}
		key := styleKey(keyNode.Value)

		var value string
		switch v := p.Value.(type) {
		case *ast.StringNode:
			value = v.Value
		case *ast.IntegerNode:
			value = strconv.Itoa(v.Value)
			if v.Value != 0 && needsPxSuffix(key) {
				value += "px"
			}
		case *ast.FloatNode:
			value = strconv.FormatFloat(v.Value, 'f', -1, 64)
			if v.Value != 0 && needsPxSuffix(key) {
				value += "px"
			}
		default:
			return "", false
		}

		styles = append(styles, key+": "+value)
	}

	return strings.Join(styles, "; "), true
}

// styleKey converts a camelCase identifier key to kebab-case. Keys already
// containing a dash (string-literal CSS names) pass through verbatim.
func styleKey(key string) string {
	if strings.Contains(key, "-") {
		return key
	}
	return camelToKebab(key)
}

func camelToKebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func needsPxSuffix(prop string) bool {
	_, unitless := unitlessStyles[prop]
	return !unitless
}

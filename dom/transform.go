package dom

import (
	"fmt"

	"github.com/Frank-III/solid-jsx-go/jsx"
)

// Transformer drives the lowering of one compilation unit: it owns the
// BlockContext shared by every block of the unit and the module-level
// template constants the blocks clone from.
type Transformer struct {
	ctx       *BlockContext
	opts      *Options
	templates []TemplateDef
}

// TemplateDef is one module-level template constant.
type TemplateDef struct {
	Name string
	HTML string
}

func NewTransformer(opts *Options) *Transformer {
	if opts == nil {
		opts = NewOptions()
	}
	return &Transformer{
		ctx:  NewBlockContext(),
		opts: opts,
	}
}

// Context exposes the unit's block context.
func (t *Transformer) Context() *BlockContext { return t.ctx }

// Templates returns the registered template constants in creation order.
func (t *Transformer) Templates() []TemplateDef { return t.templates }

// RootExpression lowers a root JSX node (of the document, or of a component
// child slot) into a single JS expression.
func (t *Transformer) RootExpression(n *jsx.Node) string {
	switch n.Type {
	case jsx.ElementNode:
		tag := jsx.TagName(n)
		if jsx.IsComponent(tag) {
			return t.transformComponent(n).Exprs[0].Code
		}
		result := TransformElement(n, tag, &TransformInfo{TopLevel: true}, t.ctx, t.opts, t.TransformChild)
		return t.EmitBlock(result)
	case jsx.FragmentNode:
		// A root fragment becomes an array of its lowered children.
		return "[" + t.fragmentItems(n) + "]"
	case jsx.ExprNode:
		return n.Expr.JS()
	case jsx.TextNode:
		return t.childExpression(n)
	}
	return "null"
}

func (t *Transformer) fragmentItems(n *jsx.Node) string {
	items := ""
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s := ""
		switch c.Type {
		case jsx.ElementNode:
			s = t.RootExpression(c)
		default:
			s = t.childExpression(c)
		}
		if s == "" {
			continue
		}
		if items != "" {
			items += ", "
		}
		items += s
	}
	return items
}

// TransformChild is the ChildTransformer handed to the element engine: it
// lowers component children and leaves everything else to the engine.
func (t *Transformer) TransformChild(n *jsx.Node) *TransformResult {
	if n.Type != jsx.ElementNode || !jsx.IsComponent(jsx.TagName(n)) {
		return nil
	}
	return t.transformComponent(n)
}

// registerTemplate interns a template string as a module-level constant,
// reusing the existing constant when an identical template was already
// registered.
func (t *Transformer) registerTemplate(html string) string {
	for _, def := range t.templates {
		if def.HTML == html {
			return def.Name
		}
	}
	t.ctx.RegisterHelper("template")
	def := TemplateDef{Name: t.ctx.GenerateUID("_tmpl$"), HTML: html}
	t.templates = append(t.templates, def)
	return def.Name
}

// Recover converts an engine shape panic into an error; any other panic is
// re-raised. Callers defer it around a whole-unit transform.
func Recover(err *error) {
	switch r := recover().(type) {
	case nil:
	case *shapeError:
		*err = fmt.Errorf("internal transform error: %w", r)
	default:
		panic(r)
	}
}

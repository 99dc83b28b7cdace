package dom

import (
	"fmt"
	"strings"
)

// EmitBlock renders one transform result as a self-contained JS expression:
// an IIFE that clones the block's template, binds the walker declarations,
// runs the runtime statements, groups all reactive bindings into one shared
// effect, and returns the root node.
func (t *Transformer) EmitBlock(result *TransformResult) string {
	tmpl := t.registerTemplate(result.TemplateWithClosingTags)

	var b strings.Builder
	b.WriteString("(() => {\n")

	b.WriteString(fmt.Sprintf("  const %s = %s()", rootName(result), tmpl))
	for _, d := range result.Declarations {
		b.WriteString(fmt.Sprintf(", %s = %s", d.Name, d.Init))
	}
	b.WriteString(";\n")

	for _, e := range result.Exprs {
		b.WriteString("  " + e.Code + ";\n")
	}

	switch len(result.Dynamics) {
	case 0:
	case 1:
		t.ctx.RegisterHelper("effect")
		b.WriteString(fmt.Sprintf("  effect(() => %s);\n", t.bindingCode(result.Dynamics[0])))
	default:
		t.ctx.RegisterHelper("effect")
		b.WriteString("  effect(() => {\n")
		for _, d := range result.Dynamics {
			b.WriteString("    " + t.bindingCode(d) + ";\n")
		}
		b.WriteString("  });\n")
	}

	b.WriteString(fmt.Sprintf("  return %s;\n})()", rootName(result)))
	return b.String()
}

// rootName is the clone-holding name of a block. The engine always issues an
// id for the top-level element, so ID is normally set; the fallback only
// fires for hand-built results in tests.
func rootName(result *TransformResult) string {
	if result.ID != "" {
		return result.ID
	}
	return "_root$"
}

// bindingCode renders one reactive attribute binding. The emitter keeps the
// runtime form uniform: setAttribute with the HTML spelling of the key.
func (t *Transformer) bindingCode(d DynamicBinding) string {
	key := d.Key
	if alias, ok := attrAliases[key]; ok && !d.IsCE {
		key = alias
	}
	t.ctx.RegisterHelper("setAttribute")
	return fmt.Sprintf("setAttribute(%s, %q, %s)", d.Elem, key, d.Value)
}

// EmitModule assembles the final program text around a compiled body: the
// helper import line, the template constants, the body itself, and the
// one-time delegated-events registration.
func (t *Transformer) EmitModule(body string) string {
	var b strings.Builder

	delegated := t.ctx.DelegatedEvents()
	if len(delegated) > 0 {
		t.ctx.RegisterHelper("delegateEvents")
	}

	if helpers := t.ctx.Helpers(); len(helpers) > 0 {
		b.WriteString("import { ")
		b.WriteString(strings.Join(helpers, ", "))
		b.WriteString(" } from \"")
		b.WriteString(t.opts.moduleName())
		b.WriteString("\";\n")
	}

	for _, def := range t.templates {
		b.WriteString(fmt.Sprintf("const %s = template(`%s`);\n", def.Name, escapeTemplateLiteral(def.HTML)))
	}

	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}

	if len(delegated) > 0 {
		b.WriteString(fmt.Sprintf("delegateEvents([%s]);\n", quoteList(delegated)))
	}

	return b.String()
}

// escapeTemplateLiteral escapes the characters that are active inside a JS
// backtick string.
func escapeTemplateLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return s
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = `"` + it + `"`
	}
	return strings.Join(quoted, ", ")
}

package jsx

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dump renders a node tree as a compact one-line string for table tests.
func dump(n *Node) string {
	var b strings.Builder
	dumpNode(&b, n)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node) {
	switch n.Type {
	case DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dumpNode(b, c)
		}
	case ElementNode:
		b.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			b.WriteString(" ")
			if a.Spread {
				b.WriteString("{..." + a.Val.Expr.JS() + "}")
				continue
			}
			b.WriteString(a.Key)
			switch a.Val.Kind {
			case AttrString:
				b.WriteString(`="` + a.Val.Text + `"`)
			case AttrExpr:
				b.WriteString("={" + a.Val.Expr.JS() + "}")
			}
		}
		b.WriteString(">")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dumpNode(b, c)
		}
		b.WriteString("</" + n.Data + ">")
	case FragmentNode:
		b.WriteString("<>")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dumpNode(b, c)
		}
		b.WriteString("</>")
	case TextNode:
		b.WriteString("“" + n.Data + "”")
	case ExprNode:
		b.WriteString("{" + n.Expr.JS() + "}")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"self closing",
			`<div />`,
			`<div></div>`,
		},
		{
			"attributes",
			`<input type="text" disabled value={name()} />`,
			`<input type="text" disabled value={name()}></input>`,
		},
		{
			"case preserved",
			`<div onClick={handler}><Show when={ok()}>yes</Show></div>`,
			`<div onClick={handler}><Show when={ok()}>“yes”</Show></div>`,
		},
		{
			"namespaced attributes",
			`<div on:custom={h} use:model={v} prop:value={p} attr:width={w} />`,
			`<div on:custom={h} use:model={v} prop:value={p} attr:width={w}></div>`,
		},
		{
			"spread",
			`<div {...props} class="x" />`,
			`<div {...props} class="x"></div>`,
		},
		{
			"member tag",
			`<Forms.Input.Text name="a" />`,
			`<Forms.Input.Text name="a"></Forms.Input.Text>`,
		},
		{
			"fragment",
			`<div>a<>{x()}<b>c</b></></div>`,
			`<div>“a”<>{x()}<b>“c”</b></></div>`,
		},
		{
			"expression children",
			`<div>before{x()}after</div>`,
			`<div>“before”{x()}“after”</div>`,
		},
		{
			"comment containers vanish",
			`<div>{/* note */}{}</div>`,
			`<div></div>`,
		},
		{
			"nested braces in expression",
			`<div style={{color: "red", margin: 4}} />`,
			`<div style={{color: "red", margin: 4}}></div>`,
		},
		{
			"strings with angle brackets",
			`<div data-x={"</div>"} />`,
			`<div data-x={"</div>"}></div>`,
		},
		{
			"root fragment",
			`<><div /><span /></>`,
			`<><div></div><span></span></>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.src))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, dump(doc)); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseWhitespaceKept(t *testing.T) {
	// The parser keeps text verbatim; whitespace normalization is the
	// transform's business.
	doc, err := Parse(strings.NewReader("<div>\n  hello\n</div>"))
	require.NoError(t, err)
	text := doc.FirstChild.FirstChild
	require.NotNil(t, text)
	assert.Equal(t, TextNode, text.Type)
	assert.Equal(t, "\n  hello\n", text.Data)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", ``, "no root JSX element"},
		{"text only", `hello`, "expected '<'"},
		{"mismatched close", `<div></span>`, "<div> closed by </span>"},
		{"unclosed element", `<div>`, "unexpected EOF"},
		{"unclosed expression", `<div>{count(</div>`, "unclosed expression"},
		{"trailing content", `<div />junk`, "unexpected content after root element"},
		{"bare expression attribute", `<div {count} />`, "expected spread attribute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseErrorSpans(t *testing.T) {
	_, err := ParseWithSource("view.jsx", strings.NewReader("<div>\n  <span></div>\n</div>"))
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "view.jsx", pe.Source.File)
	assert.Equal(t, 2, pe.Source.Span.Line)
}

func TestParseBestEffortTree(t *testing.T) {
	// Even a failing parse returns what it understood.
	doc, err := Parse(strings.NewReader(`<div><span></div>`))
	require.Error(t, err)
	require.NotNil(t, doc.FirstChild)
	assert.Equal(t, "div", doc.FirstChild.Data)
}

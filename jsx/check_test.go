package jsx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsComponent(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"div", false},
		{"my-widget", false},
		{"Show", true},
		{"Foo.Bar", true},
		{"foo.bar", true}, // dotted names are member expressions, hence components
		{"this", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsComponent(tt.tag), tt.tag)
	}
}

func TestIsBuiltIn(t *testing.T) {
	assert.True(t, IsBuiltIn("For"))
	assert.True(t, IsBuiltIn("Show"))
	assert.False(t, IsBuiltIn("for"))
	assert.False(t, IsBuiltIn("MyComponent"))
}

func TestIsSVGElement(t *testing.T) {
	assert.True(t, IsSVGElement("svg"))
	assert.True(t, IsSVGElement("circle"))
	assert.False(t, IsSVGElement("div"))
	assert.False(t, IsSVGElement("SVG"))
}

func TestTagName(t *testing.T) {
	tests := []struct {
		src string
		tag string
	}{
		{`<div />`, "div"},
		{`<Foo.Bar.Baz />`, "Foo.Bar.Baz"},
		{`<svg:use />`, "svg:use"},
		{`<this />`, "this"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.tag, TagName(doc.FirstChild))
		})
	}

	assert.Equal(t, "", TagName(nil))
	assert.Equal(t, "", TagName(&Node{Type: TextNode, Data: "div"}))
}

func TestFindAttr(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<div {...rest} class="x" id={getId()} />`))
	require.NoError(t, err)
	el := doc.FirstChild

	attr := FindAttr(el, "class")
	require.NotNil(t, attr)
	assert.Equal(t, AttrString, attr.Val.Kind)
	assert.Equal(t, "x", attr.Val.Text)

	assert.Nil(t, FindAttr(el, "missing"))
	// Spreads are never returned, even though their Key is empty.
	assert.Nil(t, FindAttr(el, ""))
}

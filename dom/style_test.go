package dom

import (
	"testing"

	"github.com/expr-lang/expr/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Frank-III/solid-jsx-go/jsx"
)

func parseObject(t *testing.T, src string) *ast.MapNode {
	t.Helper()
	e := jsx.NewExpr(src)
	obj, ok := e.Node().(*ast.MapNode)
	require.True(t, ok, "not an object literal: %s", src)
	return obj
}

func TestObjectToStyleString(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"camel case to kebab",
			`{marginTop: 4, backgroundColor: "red"}`,
			"margin-top: 4px; background-color: red",
		},
		{
			"unitless properties",
			`{opacity: 0.5, zIndex: 10, flexGrow: 2}`,
			"opacity: 0.5; z-index: 10; flex-grow: 2",
		},
		{
			"zero never gets a unit",
			`{margin: 0}`,
			"margin: 0",
		},
		{
			"string keys verbatim",
			`{"margin-top": 4}`,
			"margin-top: 4px",
		},
		{
			"source order preserved",
			`{width: 1, height: 2, top: 3}`,
			"width: 1px; height: 2px; top: 3px",
		},
		{
			"svg numerics unitless",
			`{strokeWidth: 2, fillOpacity: 1}`,
			"stroke-width: 2; fill-opacity: 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := parseObject(t, tt.src)
			got, ok := ObjectToStyleString(obj)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectToStyleStringIdempotent(t *testing.T) {
	obj := parseObject(t, `{marginTop: 4, opacity: 0.5}`)
	first, ok := ObjectToStyleString(obj)
	require.True(t, ok)
	second, ok := ObjectToStyleString(obj)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestObjectToStyleStringAborts(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"dynamic value", `{width: size()}`},
		{"identifier value", `{color: theme}`},
		{"nested object", `{border: {width: 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := parseObject(t, tt.src)
			_, ok := ObjectToStyleString(obj)
			assert.False(t, ok)
		})
	}
}

func TestCamelToKebab(t *testing.T) {
	assert.Equal(t, "margin-top", camelToKebab("marginTop"))
	assert.Equal(t, "border-top-left-radius", camelToKebab("borderTopLeftRadius"))
	assert.Equal(t, "color", camelToKebab("color"))
}

package soljsx

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Frank-III/solid-jsx-go/dom"
)

func TestCompile(t *testing.T) {
	const src = `<button class="inc" onClick={increment}>{count()}</button>`

	got, err := Compile("counter.jsx", strings.NewReader(src), nil)
	require.NoError(t, err)

	want := `import { delegateEvents, insert, template } from "solid-js/web";` + "\n" +
		"const _tmpl$ = template(`<button class=\"inc\"></button>`);\n" +
		"export default function counter() {\n" +
		"  return (() => {\n" +
		"    const el$ = _tmpl$();\n" +
		"    el$.$$click = increment;\n" +
		"    insert(el$, () => count());\n" +
		"    return el$;\n" +
		"  })();\n" +
		"}\n" +
		`delegateEvents(["click"]);` + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileStaticOnly(t *testing.T) {
	got, err := Compile("static.jsx", strings.NewReader(`<p class="note">fine</p>`), nil)
	require.NoError(t, err)

	assert.Contains(t, got, "const _tmpl$ = template(`<p class=\"note\">fine</p>`);")
	assert.NotContains(t, got, "delegateEvents")
	assert.NotContains(t, got, "effect")
}

func TestCompileOptions(t *testing.T) {
	opts := dom.NewOptions()
	opts.DelegateEvents = false
	opts.ModuleName = "my-runtime/web"

	got, err := Compile("app.jsx", strings.NewReader(`<div onClick={h} />`), opts)
	require.NoError(t, err)

	assert.Contains(t, got, `from "my-runtime/web";`)
	assert.Contains(t, got, `addEventListener(el$, "click", h, false);`)
	assert.NotContains(t, got, "delegateEvents")
}

func TestCompileParseError(t *testing.T) {
	_, err := Compile("bad.jsx", strings.NewReader(`<div></span>`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.jsx")
}

func TestCompileEmpty(t *testing.T) {
	_, err := Compile("empty.jsx", strings.NewReader("   \n"), nil)
	require.Error(t, err)
}

func TestComponentName(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"views/counter.jsx", "counter"},
		{"nav-bar.jsx", "navbar"},
		{"2fast.jsx", "fast"},
		{"---.jsx", "view"},
		{"", "view"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, componentName(tt.file), tt.file)
	}
}

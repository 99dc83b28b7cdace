package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentProps(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"empty",
			`<App />`,
			`createComponent(App, {})`,
		},
		{
			"static props",
			`<Greeting name="Ann" count={3} wide />`,
			`createComponent(Greeting, {name: "Ann", count: 3, wide: true})`,
		},
		{
			"dynamic props become getters",
			`<Show when={visible()} />`,
			`createComponent(Show, {get when() { return visible(); }})`,
		},
		{
			"spread composes through mergeProps",
			`<Input value="x" {...rest} onSelect={pick} />`,
			`createComponent(Input, mergeProps({value: "x"}, rest, {get onSelect() { return pick; }}))`,
		},
		{
			"member tags pass through",
			`<Forms.Input name="a" />`,
			`createComponent(Forms.Input, {name: "a"})`,
		},
		{
			"quoted prop keys",
			`<App data-id="7" />`,
			`createComponent(App, {"data-id": "7"})`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransformer(nil)
			got := rootExpression(t, tr, tt.src)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComponentChildren(t *testing.T) {
	tr := NewTransformer(nil)
	got := rootExpression(t, tr, `<Show when={x()}>yes</Show>`)

	assert.Equal(t, `createComponent(Show, {get when() { return x(); }, get children() { return "yes"; }})`, got)
}

func TestComponentElementChildren(t *testing.T) {
	tr := NewTransformer(nil)
	got := rootExpression(t, tr, `<Show when={x()}><div class="inner">hi</div></Show>`)

	assert.Contains(t, got, "get children() { return (() => {")
	require.Len(t, tr.Templates(), 1)
	assert.Equal(t, `<div class="inner">hi</div>`, tr.Templates()[0].HTML)
}

func TestComponentMultipleChildren(t *testing.T) {
	tr := NewTransformer(nil)
	got := rootExpression(t, tr, `<List>{a()}{b()}</List>`)

	assert.Contains(t, got, "get children() { return [a(), b()]; }")
}

func TestComponentInsideElement(t *testing.T) {
	tr := NewTransformer(nil)
	got := rootExpression(t, tr, `<div><Badge kind="new" /></div>`)

	assert.Contains(t, got, `insert(el$, createComponent(Badge, {kind: "new"}), el$2);`)
	assert.Contains(t, tr.Context().Helpers(), "createComponent")
}

func TestMergePropsHelperRegistered(t *testing.T) {
	tr := NewTransformer(nil)
	rootExpression(t, tr, `<App {...a} {...b} />`)

	assert.Contains(t, tr.Context().Helpers(), "mergeProps")
}

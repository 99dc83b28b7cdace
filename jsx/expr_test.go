package jsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDynamic(t *testing.T) {
	tests := []struct {
		expr    string
		dynamic bool
	}{
		// Literals are static.
		{`"foo"`, false},
		{`'foo'`, false},
		{`42`, false},
		{`0.5`, false},
		{`true`, false},
		{`false`, false},
		{`null`, false},
		{`undefined`, false},

		// Template literals are static unless interpolated.
		{"`hello`", false},
		{"`hello ${name}`", true},

		// The value of a function expression is the function itself.
		{`() => count()`, false},
		{`el => ref = el`, false},
		{`(a, b) => a + b`, false},
		{`function f() { return x; }`, false},
		{`async () => load()`, false},

		// Compound literals follow their contents.
		{`[1, 2, 3]`, false},
		{`[1, x, 3]`, true},
		{`{a: 1, b: "two"}`, false},
		{`{a: count()}`, true},

		// Operators follow their operands.
		{`1 + 2`, false},
		{`-5`, false},
		{`1 + x`, true},
		{`!visible`, true},

		// Reads that may be reactive are always dynamic.
		{`count()`, true},
		{`props.name`, true},
		{`items[0]`, true},
		{`x`, true},
		{`a ? b : c`, true},
		{`a && b`, true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			e := NewExpr(tt.expr)
			assert.Equal(t, tt.dynamic, e.IsDynamic())
		})
	}
}

func TestIsDynamicConservative(t *testing.T) {
	// Unparseable source must never be classified static.
	e := NewExpr(`@#$ not an expression`)
	assert.Equal(t, ExprOpaque, e.Kind())
	assert.True(t, e.IsDynamic())
}

func TestNewExprKinds(t *testing.T) {
	tests := []struct {
		expr string
		kind ExprKind
	}{
		{``, ExprNone},
		{`  `, ExprNone},
		{`/* comment */`, ExprNone},
		{`getCount()`, ExprParsed},
		{`el => el.focus()`, ExprFunction},
		{`function named() {}`, ExprFunction},
		{"`tpl`", ExprTemplate},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.kind, NewExpr(tt.expr).Kind())
		})
	}
}

func TestFunctionLiteralDetection(t *testing.T) {
	// An arrow inside nested parens belongs to an inner expression, not the
	// container value: whatever the parser makes of it, it is not a function
	// literal and stays dynamic.
	e := NewExpr(`run(() => x)`)
	require.False(t, e.IsFunctionLiteral())
	assert.True(t, e.IsDynamic())

	// A conditional choosing between handlers is not itself a function
	// literal, even though one branch is.
	e = NewExpr(`flag ? () => a() : b`)
	require.False(t, e.IsFunctionLiteral())
	assert.True(t, e.IsDynamic())

	// A "functional" identifier is not the function keyword.
	e = NewExpr(`functional`)
	assert.Equal(t, ExprParsed, e.Kind())
	assert.False(t, e.IsFunctionLiteral())
}

func TestExprJSPreservesSource(t *testing.T) {
	const src = `items.filter(x => x.done).length`
	assert.Equal(t, src, NewExpr(src).JS())
}

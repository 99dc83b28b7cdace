package jsx

// builtIns is the closed set of framework-provided component names. They are
// components by the capitalization rule already; the set exists so callers can
// distinguish control-flow primitives from user components.
var builtIns = map[string]struct{}{
	"For":           {},
	"Show":          {},
	"Switch":        {},
	"Match":         {},
	"Index":         {},
	"ErrorBoundary": {},
	"Suspense":      {},
	"SuspenseList":  {},
	"Dynamic":       {},
	"Portal":        {},
}

// svgElements is the closed set of SVG element names. Only all-lowercase
// names appear here; the transform treats tags case-sensitively.
var svgElements = map[string]struct{}{
	"animate":  {},
	"circle":   {},
	"defs":     {},
	"desc":     {},
	"ellipse":  {},
	"filter":   {},
	"g":        {},
	"image":    {},
	"line":     {},
	"marker":   {},
	"mask":     {},
	"metadata": {},
	"mpath":    {},
	"path":     {},
	"pattern":  {},
	"polygon":  {},
	"polyline": {},
	"rect":     {},
	"set":      {},
	"stop":     {},
	"svg":      {},
	"switch":   {},
	"symbol":   {},
	"text":     {},
	"tspan":    {},
	"use":      {},
	"view":     {},
}

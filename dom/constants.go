package dom

// voidElements is the closed set of native tags that take no children and no
// closing tag.
var voidElements = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"keygen": {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// attrAliases maps JSX property-style attribute names to their HTML spelling
// when a static value is inlined into the template.
var attrAliases = map[string]string{
	"className":       "class",
	"classList":       "class",
	"colSpan":         "colspan",
	"contentEditable": "contenteditable",
	"crossOrigin":     "crossorigin",
	"htmlFor":         "for",
	"readOnly":        "readonly",
	"rowSpan":         "rowspan",
	"tabIndex":        "tabindex",
}

// delegatedEvents is the closed set of event names handled through the
// document-level delegation listener by default. Events outside this set fall
// back to addEventListener unless the user extends the set via options.
var delegatedEvents = map[string]struct{}{
	"beforeinput": {},
	"click":       {},
	"contextmenu": {},
	"dblclick":    {},
	"focusin":     {},
	"focusout":    {},
	"input":       {},
	"keydown":     {},
	"keyup":       {},
	"mousedown":   {},
	"mousemove":   {},
	"mouseout":    {},
	"mouseup":     {},
	"pointerdown": {},
	"pointermove": {},
	"pointerout":  {},
	"pointerover": {},
	"pointerup":   {},
	"touchend":    {},
	"touchmove":   {},
	"touchstart":  {},
}

// unitlessStyles is the closed set of CSS properties whose numeric values are
// written without a px suffix.
var unitlessStyles = map[string]struct{}{
	"animation-iteration-count": {},
	"border-image-outset":       {},
	"border-image-slice":        {},
	"border-image-width":        {},
	"box-flex":                  {},
	"box-flex-group":            {},
	"box-ordinal-group":         {},
	"column-count":              {},
	"columns":                   {},
	"fill-opacity":              {},
	"flex":                      {},
	"flex-grow":                 {},
	"flex-negative":             {},
	"flex-order":                {},
	"flex-positive":             {},
	"flex-shrink":               {},
	"flood-opacity":             {},
	"font-weight":               {},
	"grid-column":               {},
	"grid-column-end":           {},
	"grid-column-span":          {},
	"grid-column-start":         {},
	"grid-row":                  {},
	"grid-row-end":              {},
	"grid-row-span":             {},
	"grid-row-start":            {},
	"line-clamp":                {},
	"line-height":               {},
	"opacity":                   {},
	"order":                     {},
	"orphans":                   {},
	"stop-opacity":              {},
	"stroke-dasharray":          {},
	"stroke-dashoffset":         {},
	"stroke-miterlimit":         {},
	"stroke-opacity":            {},
	"stroke-width":              {},
	"tab-size":                  {},
	"widows":                    {},
	"z-index":                   {},
	"zoom":                      {},
}

package dom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Frank-III/solid-jsx-go/jsx"
)

// TransformElement lowers one native HTML/SVG element into a TransformResult:
// the static template fragment, the declarations that walk the cloned
// template to the nodes needing live updates, and the runtime statements and
// reactive bindings wired to them. Component children are delegated to
// transformChild.
func TransformElement(el *jsx.Node, tagName string, info *TransformInfo, ctx *BlockContext, opts *Options, transformChild ChildTransformer) *TransformResult {
	_, isVoid := voidElements[tagName]

	result := &TransformResult{
		TagName:          tagName,
		IsSVG:            jsx.IsSVGElement(tagName),
		HasCustomElement: strings.Contains(tagName, "-"),
	}

	// An id is issued for the template root and for any element that
	// runtime code must reach: dynamic attributes, refs, events, inserts.
	if !info.SkipID && (info.TopLevel || elementNeedsRuntimeAccess(el)) {
		result.ID = ctx.GenerateUID("el$")

		if len(info.Path) > 0 && info.RootID != "" {
			result.Declarations = append(result.Declarations, Declaration{
				Name: result.ID,
				Init: info.RootID + "." + strings.Join(info.Path, "."),
			})
		}
	}

	result.Template = "<" + tagName
	result.TemplateWithClosingTags = result.Template

	innerText := transformAttributes(el, tagName, result, ctx, opts)

	result.Template += ">"
	result.TemplateWithClosingTags += ">"
	if innerText != "" {
		result.Template += innerText
		result.TemplateWithClosingTags += innerText
	}

	if !isVoid {
		// The element with an id becomes the walk root for its children;
		// otherwise children keep walking from the inherited root.
		childInfo := &TransformInfo{
			RootID:   result.ID,
			TopLevel: false,
			SkipID:   info.SkipID,
		}
		if result.ID == "" {
			childInfo.RootID = info.RootID
			childInfo.Path = info.Path
		}
		transformChildren(el, result, childInfo, ctx, opts, transformChild)

		result.Template += "</" + tagName + ">"
		result.TemplateWithClosingTags += "</" + tagName + ">"
	}

	return result
}

// elementNeedsRuntimeAccess reports whether the generated code must hold a
// handle to this element: a spread, namespaced, ref, inner-content or event
// attribute, any expression-container attribute, or a descendant (through
// fragments) that is a component or an expression container.
func elementNeedsRuntimeAccess(el *jsx.Node) bool {
	for _, attr := range el.Attr {
		if attr.Spread || attr.IsNamespaced() {
			return true
		}
		switch attr.Key {
		case "ref", "innerHTML", "textContent", "innerText":
			return true
		}
		if strings.HasPrefix(attr.Key, "on") && len(attr.Key) > 2 {
			return true
		}
		if attr.Val.Kind == jsx.AttrExpr {
			return true
		}
	}
	return childrenNeedRuntimeAccess(el)
}

func childrenNeedRuntimeAccess(parent *jsx.Node) bool {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case jsx.ElementNode:
			if jsx.IsComponent(jsx.TagName(c)) {
				return true
			}
		case jsx.ExprNode:
			return true
		case jsx.FragmentNode:
			if childrenNeedRuntimeAccess(c) {
				return true
			}
		}
	}
	return false
}

// transformAttributes routes every attribute of the opening element. The
// returned string is literal text content to inline right after the opening
// tag (a static textContent), which cannot be appended while the tag is still
// open.
func transformAttributes(el *jsx.Node, tagName string, result *TransformResult, ctx *BlockContext, opts *Options) (innerText string) {
	for _, attr := range el.Attr {
		if attr.Spread {
			id := mustID(result.ID, "spread attributes", tagName)
			ctx.RegisterHelper("spread")
			result.Exprs = append(result.Exprs, Expr{
				Code: fmt.Sprintf("spread(%s, %s, %t, %t)",
					id, attr.Val.Expr.JS(), result.IsSVG, el.FirstChild != nil),
			})
			continue
		}
		innerText += transformAttribute(&attr, tagName, result, ctx, opts)
	}
	return innerText
}

func transformAttribute(attr *jsx.Attribute, tagName string, result *TransformResult, ctx *BlockContext, opts *Options) (innerText string) {
	key := attr.Key

	switch {
	case key == "ref":
		transformRef(attr, mustID(result.ID, "ref", tagName), result)
		return ""
	case strings.HasPrefix(key, "on") && len(key) > 2:
		transformEvent(attr, key, mustID(result.ID, "event handlers", tagName), result, ctx, opts)
		return ""
	case strings.HasPrefix(key, "use:"):
		transformDirective(attr, key, mustID(result.ID, "directives", tagName), result, ctx)
		return ""
	case strings.HasPrefix(key, "prop:"):
		transformProp(attr, key, mustID(result.ID, "prop: attributes", tagName), result, ctx)
		return ""
	case strings.HasPrefix(key, "attr:"):
		transformAttr(attr, key, mustID(result.ID, "attr: attributes", tagName), result, ctx)
		return ""
	case key == "style":
		transformStyle(attr, tagName, result, ctx)
		return ""
	case key == "innerHTML" || key == "textContent":
		return transformInnerContent(attr, key, mustID(result.ID, "inner content", tagName), result, ctx)
	}

	switch attr.Val.Kind {
	case jsx.AttrString:
		name := key
		if alias, ok := attrAliases[key]; ok {
			name = alias
		}
		appendTemplate(result, fmt.Sprintf(" %s=%q", name, jsx.EscapeHTML(attr.Val.Text, true)))
	case jsx.AttrExpr:
		if attr.Val.Expr.IsEmpty() {
			return ""
		}
		// Expression values always become a reactive binding; evaluating
		// static expressions at compile time is not attempted.
		id := mustID(result.ID, "dynamic attributes", tagName)
		result.Dynamics = append(result.Dynamics, DynamicBinding{
			Elem:    id,
			Key:     key,
			Value:   attr.Val.Expr.JS(),
			IsSVG:   result.IsSVG,
			IsCE:    result.HasCustomElement,
			TagName: result.TagName,
		})
	case jsx.AttrNone:
		appendTemplate(result, " "+key)
	}
	return ""
}

// appendTemplate appends tag-internal content to both template forms.
func appendTemplate(result *TransformResult, s string) {
	result.Template += s
	result.TemplateWithClosingTags += s
}

func transformRef(attr *jsx.Attribute, elemID string, result *TransformResult) {
	if attr.Val.Kind != jsx.AttrExpr || attr.Val.Expr.IsEmpty() {
		return
	}
	ref := attr.Val.Expr.JS()
	if attr.Val.Expr.IsFunctionLiteral() {
		// Inline callback: ref={el => myRef = el}
		result.Exprs = append(result.Exprs, Expr{
			Code: fmt.Sprintf("(%s)(%s)", ref, elemID),
		})
		return
	}
	// Variable reference: could be a setter function or a plain binding,
	// dispatched at runtime.
	result.Exprs = append(result.Exprs, Expr{
		Code: fmt.Sprintf("typeof %s === \"function\" ? %s(%s) : %s = %s",
			ref, ref, elemID, ref, elemID),
	})
}

func transformEvent(attr *jsx.Attribute, key, elemID string, result *TransformResult, ctx *BlockContext, opts *Options) {
	// onClickCapture -> click with capture=true
	baseKey := strings.TrimSuffix(key, "Capture")
	isCapture := baseKey != key

	eventName := jsx.ToEventName(baseKey)

	handler := "undefined"
	if attr.Val.Kind == jsx.AttrExpr && !attr.Val.Expr.IsEmpty() {
		handler = attr.Val.Expr.JS()
	}

	// The on: prefix forces a direct listener; capture listeners cannot be
	// delegated either.
	forceNoDelegate := strings.HasPrefix(key, "on:")
	if !forceNoDelegate && !isCapture && opts.DelegateEvents && opts.delegable(eventName) {
		ctx.RegisterDelegate(eventName)
		result.Exprs = append(result.Exprs, Expr{
			Code: fmt.Sprintf("%s.$$%s = %s", elemID, eventName, handler),
		})
		return
	}
	ctx.RegisterHelper("addEventListener")
	result.Exprs = append(result.Exprs, Expr{
		Code: fmt.Sprintf("addEventListener(%s, %q, %s, %t)", elemID, eventName, handler, isCapture),
	})
}

func transformDirective(attr *jsx.Attribute, key, elemID string, result *TransformResult, ctx *BlockContext) {
	ctx.RegisterHelper("use")
	name := strings.TrimPrefix(key, "use:")

	value := "undefined"
	if attr.Val.Kind == jsx.AttrExpr && !attr.Val.Expr.IsEmpty() {
		value = "() => " + attr.Val.Expr.JS()
	}
	result.Exprs = append(result.Exprs, Expr{
		Code: fmt.Sprintf("use(%s, %s, %s)", name, elemID, value),
	})
}

func transformProp(attr *jsx.Attribute, key, elemID string, result *TransformResult, ctx *BlockContext) {
	name := strings.TrimPrefix(key, "prop:")
	if attr.Val.Kind != jsx.AttrExpr || attr.Val.Expr.IsEmpty() {
		return
	}
	value := attr.Val.Expr.JS()
	if attr.Val.Expr.IsDynamic() {
		ctx.RegisterHelper("effect")
		result.Exprs = append(result.Exprs, Expr{
			Code: fmt.Sprintf("effect(() => %s.%s = %s)", elemID, name, value),
		})
		return
	}
	result.Exprs = append(result.Exprs, Expr{
		Code: fmt.Sprintf("%s.%s = %s", elemID, name, value),
	})
}

func transformAttr(attr *jsx.Attribute, key, elemID string, result *TransformResult, ctx *BlockContext) {
	name := strings.TrimPrefix(key, "attr:")
	switch attr.Val.Kind {
	case jsx.AttrExpr:
		if attr.Val.Expr.IsEmpty() {
			return
		}
		ctx.RegisterHelper("effect")
		ctx.RegisterHelper("setAttribute")
		result.Exprs = append(result.Exprs, Expr{
			Code: fmt.Sprintf("effect(() => %s.setAttribute(%q, %s))", elemID, name, attr.Val.Expr.JS()),
		})
	case jsx.AttrString:
		appendTemplate(result, fmt.Sprintf(" %s=%q", name, jsx.EscapeHTML(attr.Val.Text, true)))
	}
}

// transformInnerContent handles innerHTML and textContent attributes. A
// literal innerHTML is still assigned at runtime so that entity parsing
// happens in the browser, not in the template; a literal textContent is
// returned for inlining into the template.
func transformInnerContent(attr *jsx.Attribute, key, elemID string, result *TransformResult, ctx *BlockContext) (innerText string) {
	switch attr.Val.Kind {
	case jsx.AttrExpr:
		if attr.Val.Expr.IsEmpty() {
			return ""
		}
		value := attr.Val.Expr.JS()
		if attr.Val.Expr.IsDynamic() {
			ctx.RegisterHelper("effect")
			result.Exprs = append(result.Exprs, Expr{
				Code: fmt.Sprintf("effect(() => %s.%s = %s)", elemID, key, value),
			})
			return ""
		}
		result.Exprs = append(result.Exprs, Expr{
			Code: fmt.Sprintf("%s.%s = %s", elemID, key, value),
		})
	case jsx.AttrString:
		if key == "innerHTML" {
			result.Exprs = append(result.Exprs, Expr{
				Code: fmt.Sprintf("%s.innerHTML = %s", elemID, strconv.Quote(attr.Val.Text)),
			})
			return ""
		}
		return jsx.EscapeHTML(attr.Val.Text, false)
	}
	return ""
}

// childState is the walk cursor of one child list: the index of the next DOM
// node inside the parent, and whether the previous emitted child was text
// (adjacent text runs collapse into one DOM text node).
type childState struct {
	nodeIndex   int
	lastWasText bool
}

func transformChildren(el *jsx.Node, result *TransformResult, info *TransformInfo, ctx *BlockContext, opts *Options, transformChild ChildTransformer) {
	st := &childState{}
	single := isSingleDynamicChild(el)
	walkChildren(el, result, info, ctx, opts, transformChild, st, single)
}

// isSingleDynamicChild reports whether the child list, with fragments
// flattened and whitespace-only text dropped, is exactly one expression
// container. Such an insert needs no marker: the parent itself anchors it.
func isSingleDynamicChild(parent *jsx.Node) bool {
	exprCount := 0
	otherContent := false

	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case jsx.TextNode:
			if jsx.TrimWhitespace(c.Data) != "" {
				otherContent = true
			}
		case jsx.ElementNode:
			otherContent = true
		case jsx.ExprNode:
			exprCount++
		case jsx.FragmentNode:
			if isSingleDynamicChild(c) {
				exprCount++
			} else {
				otherContent = true
			}
		}
	}
	return exprCount == 1 && !otherContent
}

func walkChildren(parent *jsx.Node, result *TransformResult, info *TransformInfo, ctx *BlockContext, opts *Options, transformChild ChildTransformer, st *childState, singleDynamic bool) {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case jsx.TextNode:
			content := jsx.TrimWhitespace(c.Data)
			if content == "" {
				continue
			}
			escaped := jsx.EscapeHTML(content, false)
			result.Template += escaped
			result.TemplateWithClosingTags += escaped
			if !st.lastWasText {
				st.nodeIndex++
				st.lastWasText = true
			}

		case jsx.ElementNode:
			childTag := jsx.TagName(c)
			if jsx.IsComponent(childTag) {
				st.lastWasText = false
				transformComponentChild(c, result, ctx, transformChild, st, singleDynamic)
				continue
			}

			st.lastWasText = false
			childInfo := &TransformInfo{
				RootID:   info.RootID,
				Path:     childPath(info.Path, st.nodeIndex),
				TopLevel: false,
				SkipID:   info.SkipID,
			}
			childResult := TransformElement(c, childTag, childInfo, ctx, opts, transformChild)

			result.Template += childResult.Template
			if childResult.TemplateWithClosingTags != "" {
				result.TemplateWithClosingTags += childResult.TemplateWithClosingTags
			} else {
				result.TemplateWithClosingTags += childResult.Template
			}
			result.Declarations = append(result.Declarations, childResult.Declarations...)
			result.Exprs = append(result.Exprs, childResult.Exprs...)
			result.Dynamics = append(result.Dynamics, childResult.Dynamics...)
			result.HasCustomElement = result.HasCustomElement || childResult.HasCustomElement

			st.nodeIndex++

		case jsx.ExprNode:
			st.lastWasText = false
			parentID := mustID(result.ID, "child inserts", result.TagName)
			ctx.RegisterHelper("insert")

			value := c.Expr.JS()
			if c.Expr.IsDynamic() {
				value = "() => " + value
			}
			insertChild(result, ctx, parentID, value, st, singleDynamic)

		case jsx.FragmentNode:
			walkChildren(c, result, info, ctx, opts, transformChild, st, singleDynamic)
		}
	}
}

// transformComponentChild delegates a component child to the callback and
// wires its expression in with insert, using a marker comment unless the
// component is the only dynamic child.
func transformComponentChild(c *jsx.Node, result *TransformResult, ctx *BlockContext, transformChild ChildTransformer, st *childState, singleDynamic bool) {
	if transformChild == nil {
		return
	}
	childResult := transformChild(c)
	if childResult == nil || len(childResult.Exprs) == 0 {
		return
	}
	parentID := mustID(result.ID, "component inserts", result.TagName)
	ctx.RegisterHelper("insert")
	insertChild(result, ctx, parentID, childResult.Exprs[0].Code, st, singleDynamic)
}

// insertChild emits the insert for a dynamic child. With a single dynamic
// child the parent anchors the insert directly; otherwise a marker comment is
// reserved in the template and declared via the sibling walk.
func insertChild(result *TransformResult, ctx *BlockContext, parentID, value string, st *childState, singleDynamic bool) {
	if singleDynamic {
		result.Exprs = append(result.Exprs, Expr{
			Code: fmt.Sprintf("insert(%s, %s)", parentID, value),
		})
		return
	}
	result.Template += "<!>"
	result.TemplateWithClosingTags += "<!>"

	markerID := ctx.GenerateUID("el$")
	result.Declarations = append(result.Declarations, Declaration{
		Name: markerID,
		Init: childAccessor(parentID, st.nodeIndex),
	})
	result.Exprs = append(result.Exprs, Expr{
		Code: fmt.Sprintf("insert(%s, %s, %s)", parentID, value, markerID),
	})
	st.nodeIndex++
}

func childPath(base []string, nodeIndex int) []string {
	path := make([]string, 0, len(base)+nodeIndex+1)
	path = append(path, base...)
	path = append(path, "firstChild")
	for i := 0; i < nodeIndex; i++ {
		path = append(path, "nextSibling")
	}
	return path
}

func childAccessor(parentID string, nodeIndex int) string {
	var b strings.Builder
	b.WriteString(parentID)
	b.WriteString(".firstChild")
	for i := 0; i < nodeIndex; i++ {
		b.WriteString(".nextSibling")
	}
	return b.String()
}

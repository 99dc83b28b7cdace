package dom

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Frank-III/solid-jsx-go/jsx"
)

// TransformInfo is the immutable per-recursion context of the element
// transform: where the current element sits inside the cloned template.
type TransformInfo struct {
	// RootID is the name bound to the nearest cloned-template root, if any.
	RootID string
	// Path is the firstChild/nextSibling walk from RootID to this element.
	Path []string
	// TopLevel is true only for the outermost element of the template.
	TopLevel bool
	// SkipID forbids issuing an element id for this element.
	SkipID bool
}

// BlockContext is the mutable registry shared by every transform call of one
// compilation unit: the UID generator, the set of runtime helpers that must
// be imported, and the set of events registered for delegation. It is owned
// by a single goroutine for the duration of the unit; nothing here locks.
type BlockContext struct {
	uids      map[string]int
	helpers   map[string]struct{}
	delegated map[string]struct{}
}

func NewBlockContext() *BlockContext {
	return &BlockContext{
		uids:      make(map[string]int),
		helpers:   make(map[string]struct{}),
		delegated: make(map[string]struct{}),
	}
}

// GenerateUID yields a fresh name with the given prefix: el$, el$2, el$3, …
// Names are unique within the context across all prefixes.
func (c *BlockContext) GenerateUID(prefix string) string {
	c.uids[prefix]++
	if n := c.uids[prefix]; n > 1 {
		return prefix + strconv.Itoa(n)
	}
	return prefix
}

// RegisterHelper records that the named runtime helper must be imported.
func (c *BlockContext) RegisterHelper(name string) {
	c.helpers[name] = struct{}{}
}

// RegisterDelegate records an event for one-time delegateEvents registration.
func (c *BlockContext) RegisterDelegate(event string) {
	c.delegated[event] = struct{}{}
}

// Helpers returns the registered helper names, sorted.
func (c *BlockContext) Helpers() []string {
	return sortedKeys(c.helpers)
}

// DelegatedEvents returns the registered delegated event names, sorted.
func (c *BlockContext) DelegatedEvents() []string {
	return sortedKeys(c.delegated)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Declaration binds a walker name to a DOM node inside the cloned template.
type Declaration struct {
	Name string
	Init string
}

// Expr is one runtime statement: an event binding, insert, assignment or
// spread, emitted after the declarations in source order.
type Expr struct {
	Code string
}

// DynamicBinding is a reactive attribute binding; the emitter wraps all
// bindings of a block in one shared effect.
type DynamicBinding struct {
	Elem    string
	Key     string
	Value   string
	IsSVG   bool
	IsCE    bool
	TagName string
}

// TransformResult accumulates the output of lowering one element: the
// template HTML, the declarations that walk the clone, the runtime
// statements, and the reactive bindings. Parents absorb child results as the
// recursion unwinds; only the top-level result survives.
type TransformResult struct {
	TagName          string
	IsSVG            bool
	HasCustomElement bool

	// ID is the element's bound name if one was issued.
	ID string

	// Template is the running HTML string. TemplateWithClosingTags is the
	// same content in final form, usable on its own; void tags stay
	// unclosed in both.
	Template                string
	TemplateWithClosingTags string

	Declarations []Declaration
	Exprs        []Expr
	Dynamics     []DynamicBinding
}

// ChildTransformer lowers a component child. It returns nil when the child
// produces no output. The element engine takes it as a parameter so component
// lowering and element lowering stay mutually recursive without an import
// cycle, and so the engine can be tested with a stub.
type ChildTransformer func(n *jsx.Node) *TransformResult

// A shapeError reports a bug in the transform itself: an attribute handler
// required an element id that was never issued. It aborts the block via
// panic; Compile recovers it at the unit boundary.
type shapeError struct {
	op  string
	tag string
}

func (e *shapeError) Error() string {
	return fmt.Sprintf("dom: missing element id for %s on <%s>", e.op, e.tag)
}

// mustID returns the element id or aborts the block.
func mustID(id, op, tag string) string {
	if id == "" {
		panic(&shapeError{op: op, tag: tag})
	}
	return id
}

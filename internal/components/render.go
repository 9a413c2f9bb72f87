package components

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/pkg/children"
)

// Renderable is anything that renders to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable renders with an explicit theme and width.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// RenderContext carries the theme and available width down the tree. It is passed
// explicitly; components never look up ambient state while rendering.
type RenderContext struct {
	Theme Theme
	// Width is the available width in cells; zero means unconstrained.
	Width int
}

// DefaultContext returns a context with the process default theme.
func DefaultContext() RenderContext {
	return RenderContext{Theme: GetTheme()}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a new context with the given width.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// Render renders r with ctx when it accepts a context.
func Render(r Renderable, ctx RenderContext) string {
	if isAbsent(r) {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// Children is an ordered collection of renderables. Nested collections are flattened
// in place when a container normalises its children.
type Children []Renderable

// View renders the collection vertically with the default context.
func (c Children) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the flattened collection vertically.
func (c Children) ViewWithContext(ctx RenderContext) string {
	return joinViews(FlattenChildren(c, children.Options{}), ctx)
}

// Fragment groups children without contributing anything of its own: containers splice
// its children into their own list.
type Fragment struct {
	children []Renderable
}

// NewFragment wraps children in a fragment.
func NewFragment(items ...Renderable) *Fragment {
	return &Fragment{children: items}
}

// Children returns the wrapped children.
func (f *Fragment) Children() []Renderable {
	return f.children
}

// View renders the fragment's children vertically with the default context.
func (f *Fragment) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the fragment's children vertically.
func (f *Fragment) ViewWithContext(ctx RenderContext) string {
	return joinViews(FlattenChildren(f.children, children.Options{}), ctx)
}

// FlattenChildren normalises a child list: collections and fragments are spliced in
// order and nil entries are dropped unless opts.KeepEmpty is set.
func FlattenChildren(nodes []Renderable, opts children.Options) []Renderable {
	return children.Flatten(nodes, classifyRenderable, opts)
}

func classifyRenderable(r Renderable) (children.Kind, []Renderable) {
	if isAbsent(r) {
		return children.KindAbsent, nil
	}
	switch node := r.(type) {
	case Children:
		return children.KindCollection, node
	case *Fragment:
		return children.KindGroup, node.children
	default:
		return children.KindLeaf, nil
	}
}

// isAbsent treats nil interfaces and typed nil pointers alike.
func isAbsent(r Renderable) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func joinViews(items []Renderable, ctx RenderContext) string {
	views := make([]string, 0, len(items))
	for _, item := range items {
		if view := Render(item, ctx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

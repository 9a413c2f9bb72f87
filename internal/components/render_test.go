package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/pkg/children"
)

type staticView string

func (s staticView) View() string { return string(s) }

func labels(items []Renderable) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.View()
	}
	return out
}

func TestFlattenChildren(t *testing.T) {
	var missing *Button
	nodes := []Renderable{
		staticView("a"),
		nil,
		NewFragment(staticView("b"), NewFragment(staticView("c"))),
		Children{staticView("d"), missing, Children{staticView("e")}},
		staticView("f"),
	}

	flat := FlattenChildren(nodes, children.Options{})
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, labels(flat))
}

func TestFlattenChildrenKeepEmpty(t *testing.T) {
	var missing *Button
	nodes := []Renderable{nil, NewFragment(missing, staticView("a"))}

	flat := FlattenChildren(nodes, children.Options{KeepEmpty: true})
	require.Len(t, flat, 3)
	assert.Nil(t, flat[0])
	assert.True(t, isAbsent(flat[1]))
	assert.Equal(t, "a", flat[2].View())
}

func TestFragmentIsTransparent(t *testing.T) {
	wrapped := FlattenChildren([]Renderable{NewFragment(NewFragment(staticView("a"), staticView("b")))}, children.Options{})
	direct := FlattenChildren([]Renderable{staticView("a"), staticView("b")}, children.Options{})
	assert.Equal(t, labels(direct), labels(wrapped))
}

func TestRenderUsesContext(t *testing.T) {
	ctx := lightContext()
	text := NewText("hello")

	assert.Equal(t, text.ViewWithContext(ctx), Render(text, ctx))
	assert.Equal(t, "plain", Render(staticView("plain"), ctx))
	assert.Equal(t, "", Render(nil, ctx))

	var missing *Text
	assert.Equal(t, "", Render(missing, ctx))
}

func TestFragmentViewJoinsChildren(t *testing.T) {
	fragment := NewFragment(staticView("one"), nil, staticView("two"))
	assert.Equal(t, "one\ntwo", fragment.ViewWithContext(lightContext()))
	assert.Len(t, fragment.Children(), 3)

	assert.Equal(t, "", Children{}.ViewWithContext(lightContext()))
}

func TestRenderContextBuilders(t *testing.T) {
	ctx := lightContext().WithWidth(40).WithTheme(DarkTheme())
	assert.Equal(t, 40, ctx.Width)
	assert.Equal(t, SchemeDark, ctx.Theme.Scheme)
}

package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
	"github.com/alexisbeaulieu97/swatch/pkg/selection"
)

func fruitMenu(opts MenuOptions) *SelectableMenu {
	return NewSelectableMenu(opts,
		NewMenuItem("apple", "Apple"),
		NewFragment(NewMenuItem("banana", "Banana"), nil),
		Children{NewMenuItem("cherry", "")},
	)
}

func TestMenuValuesFollowFlattenedOrder(t *testing.T) {
	menu := fruitMenu(MenuOptions{})
	assert.Equal(t, []string{"apple", "banana", "cherry"}, menu.Values())
	assert.Equal(t, "cherry", menu.Items()[2].Label(), "empty label falls back to the value")
}

func TestMenuPressReportsNextState(t *testing.T) {
	tests := []struct {
		name     string
		policy   selection.Policy
		selected selection.State
		press    string
		want     selection.State
	}{
		{"single select", selection.Policy{}, selection.None(), "apple", selection.Single("apple")},
		{"single reselect", selection.Policy{}, selection.Single("apple"), "apple", selection.Single("apple")},
		{"single replace", selection.Policy{}, selection.Single("apple"), "banana", selection.Single("banana")},
		{"unselectable clears", selection.Policy{Unselectable: true}, selection.Single("apple"), "apple", selection.None()},
		{"multiple appends", selection.Policy{Multiple: true}, selection.Multiple("banana"), "apple", selection.Multiple("banana", "apple")},
		{"multiple removes", selection.Policy{Multiple: true}, selection.Multiple("apple", "banana"), "apple", selection.Multiple("banana")},
		{"multiple from zero state", selection.Policy{Multiple: true}, selection.State{}, "cherry", selection.Multiple("cherry")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []selection.State
			menu := fruitMenu(MenuOptions{
				Policy:   tt.policy,
				Selected: tt.selected,
				OnSelect: func(state selection.State) { calls = append(calls, state) },
			})

			require.NoError(t, menu.Press(tt.press))
			require.Len(t, calls, 1, "OnSelect runs once per press")
			assert.True(t, tt.want.Equal(calls[0]), "got %s, want %s", calls[0], tt.want)
		})
	}
}

func TestMenuDoesNotStoreSelection(t *testing.T) {
	var last selection.State
	menu := fruitMenu(MenuOptions{OnSelect: func(state selection.State) { last = state }})

	require.NoError(t, menu.Press("apple"))
	assert.Equal(t, selection.KindNone, menu.Selected().Kind())

	menu.WithSelected(last)
	id, ok := menu.Selected().ID()
	require.True(t, ok)
	assert.Equal(t, "apple", id)
}

func TestMenuItemPressRunsBeforeSelect(t *testing.T) {
	var events []string
	menu := NewSelectableMenu(MenuOptions{
		OnSelect: func(selection.State) { events = append(events, "select") },
	}, NewMenuItem("a", "A").WithOnPress(func() { events = append(events, "item") }))

	require.NoError(t, menu.Press("a"))
	assert.Equal(t, []string{"item", "select"}, events)
}

func TestMenuPressErrors(t *testing.T) {
	menu := fruitMenu(MenuOptions{Policy: selection.Policy{Multiple: true}, Selected: selection.Single("apple")})

	err := menu.Press("apple")
	var stateErr *swatcherrors.StateError
	require.True(t, errors.As(err, &stateErr))
	assert.True(t, stateErr.Multiple)

	err = menu.Press("durian")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "durian")
}

func TestDisabledMenuItemIsIgnored(t *testing.T) {
	called := false
	menu := NewSelectableMenu(MenuOptions{OnSelect: func(selection.State) { called = true }},
		NewMenuItem("a", "A").WithDisabled(true))

	require.NoError(t, menu.Press("a"))
	assert.False(t, called)
}

func TestMenuViewMarksSelection(t *testing.T) {
	menu := fruitMenu(MenuOptions{Policy: selection.Policy{Multiple: true}, Selected: selection.Multiple("banana")})

	lines := plainLines(menu.ViewWithContext(lightContext()))
	require.Len(t, lines, 7, "three rows joined with shared edges")

	assert.Contains(t, lines[1], "Apple")
	assert.True(t, strings.Contains(lines[1], "○"))
	assert.Contains(t, lines[3], "Banana")
	assert.True(t, strings.Contains(lines[3], "●"))
	assert.Contains(t, lines[5], "cherry")
}

func TestMenuCustomIndicatorAndFocus(t *testing.T) {
	menu := fruitMenu(MenuOptions{
		Selected: selection.Single("apple"),
		RenderIndicator: func(selected bool, _ Theme) string {
			if selected {
				return "[x]"
			}
			return "[ ]"
		},
	})

	plain := strings.Join(plainLines(menu.ViewWithContext(lightContext())), "\n")
	assert.Equal(t, 1, strings.Count(plain, "[x]"))
	assert.Equal(t, 2, strings.Count(plain, "[ ]"))

	unfocused := menu.ViewWithContext(lightContext())
	focused := menu.WithFocused("banana").ViewWithContext(lightContext())
	assert.NotEqual(t, unfocused, focused)
}

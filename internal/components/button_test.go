package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonPressSequence(t *testing.T) {
	var events []string
	button := NewButton("Save", ButtonOptions{
		OnPressIn:  func() { events = append(events, "in") },
		OnPressOut: func() { events = append(events, "out") },
		OnPress:    func() { events = append(events, "press") },
	})

	button.Press()
	assert.True(t, button.IsPressed())
	button.Press()
	button.Release()
	assert.False(t, button.IsPressed())
	button.Release()

	assert.Equal(t, []string{"in", "out", "press"}, events)
}

func TestDisabledButtonIgnoresPresses(t *testing.T) {
	pressed := 0
	button := SimpleButton("Delete").WithOnPress(func() { pressed++ }).WithDisabled(true)

	button.Tap()
	assert.Equal(t, 0, pressed)
	assert.False(t, button.IsPressed())

	button.WithDisabled(false).Tap()
	assert.Equal(t, 1, pressed)
}

func TestButtonColors(t *testing.T) {
	theme := LightTheme()

	tests := []struct {
		status      ButtonStatus
		rest, press lipgloss.Color
		text        lipgloss.Color
	}{
		{ButtonStatusPrimary, theme.Palette.Primary, theme.Scales.Primary.Shade(5), theme.Scales.Colors.Shade(4)},
		{ButtonStatusDanger, theme.Palette.Danger, theme.Scales.Danger.Shade(5), theme.Scales.Colors.Shade(4)},
		{ButtonStatusControl, theme.Palette.ButtonControl, theme.Scales.Basic.Shade(2), theme.Palette.Text},
		{ButtonStatusDefault, theme.Scales.Basic.Shade(1), theme.Scales.Basic.Shade(2), theme.Palette.Text},
	}

	for _, tt := range tests {
		rest, press, text := buttonColors(theme, tt.status)
		assert.Equal(t, tt.rest, rest)
		assert.Equal(t, tt.press, press)
		assert.Equal(t, tt.text, text)
	}
}

func TestButtonStates(t *testing.T) {
	ctx := lightContext()
	button := SimpleButton("Save").WithStatus(ButtonStatusPrimary)
	normal := button.ViewWithContext(ctx)

	button.Press()
	pressed := button.ViewWithContext(ctx)
	button.Release()
	assert.NotEqual(t, normal, pressed, "pressed state should render differently")

	disabled := button.WithDisabled(true).ViewWithContext(ctx)
	assert.NotEqual(t, normal, disabled, "disabled state should render differently")
}

func TestStandaloneButtonHasFullBorder(t *testing.T) {
	lines := plainLines(SimpleButton("OK").ViewWithContext(lightContext()))
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.True(t, strings.HasSuffix(lines[0], "╮"))
	assert.Contains(t, lines[1], "OK")
	assert.True(t, strings.HasPrefix(lines[2], "╰"))
}

func TestTextButton(t *testing.T) {
	taps := 0
	button := NewTextButton("Learn more", func() { taps++ })

	button.Tap()
	button.Tap()
	assert.Equal(t, 2, taps)

	view := button.ViewWithContext(lightContext())
	assert.Equal(t, []string{"Learn more"}, plainLines(view))

	NewTextButton("noop", nil).Tap()
}

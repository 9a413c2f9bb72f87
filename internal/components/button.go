package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonStatus selects the colour treatment of a button.
type ButtonStatus int

const (
	ButtonStatusDefault ButtonStatus = iota
	ButtonStatusPrimary
	ButtonStatusDanger
	ButtonStatusControl
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Status   ButtonStatus
	Disabled bool

	OnPress    func()
	OnPressIn  func()
	OnPressOut func()
}

// Button represents a pressable button component
type Button struct {
	label   string
	options ButtonOptions
	pressed bool
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// SimpleButton creates a default button.
func SimpleButton(label string) *Button {
	return NewButton(label, ButtonOptions{})
}

// WithStatus sets the button status
func (b *Button) WithStatus(status ButtonStatus) *Button {
	b.options.Status = status
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithOnPress sets the press callback.
func (b *Button) WithOnPress(fn func()) *Button {
	b.options.OnPress = fn
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsPressed reports whether the button is held down.
func (b *Button) IsPressed() bool {
	return b.pressed
}

// Press puts the button in its pressed state. Disabled buttons ignore it.
func (b *Button) Press() {
	if b.options.Disabled || b.pressed {
		return
	}
	b.pressed = true
	if b.options.OnPressIn != nil {
		b.options.OnPressIn()
	}
}

// Release ends a press and fires OnPress.
func (b *Button) Release() {
	if b.options.Disabled || !b.pressed {
		return
	}
	b.pressed = false
	if b.options.OnPressOut != nil {
		b.options.OnPressOut()
	}
	if b.options.OnPress != nil {
		b.options.OnPress()
	}
}

// Tap presses and releases the button.
func (b *Button) Tap() {
	b.Press()
	b.Release()
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders a standalone button.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.viewInGroup(ctx, soleSlot())
}

func (b *Button) contentWidth(ctx RenderContext) int {
	return lipgloss.Width(b.label) + 2*ctx.Theme.PaddingValue(SpacingSizeMedium)
}

func (b *Button) viewInGroup(ctx RenderContext, slot GroupSlot) string {
	style := b.baseStyle(ctx.Theme)
	style = slot.Decoration().apply(style)
	if slot.Width > 0 {
		style = style.Width(slot.Width)
	}
	return style.Render(b.label)
}

// buttonColors returns the background at rest and while pressed, and the text colour.
func buttonColors(theme Theme, status ButtonStatus) (rest, pressed, text lipgloss.Color) {
	switch status {
	case ButtonStatusPrimary:
		return theme.Palette.Primary, theme.Scales.Primary.Shade(5), theme.Scales.Colors.Shade(4)
	case ButtonStatusDanger:
		return theme.Palette.Danger, theme.Scales.Danger.Shade(5), theme.Scales.Colors.Shade(4)
	case ButtonStatusControl:
		return theme.Palette.ButtonControl, theme.Scales.Basic.Shade(2), theme.Palette.Text
	default:
		return theme.Scales.Basic.Shade(1), theme.Scales.Basic.Shade(2), theme.Palette.Text
	}
}

func (b *Button) baseStyle(theme Theme) lipgloss.Style {
	rest, pressed, text := buttonColors(theme, b.options.Status)
	background := rest
	if b.pressed {
		background = pressed
	}

	style := Style(theme, lipgloss.NewStyle(),
		PaddingX(SpacingSizeMedium),
		BorderColor(PaletteBasicBorder),
		Typography(TypographyVariantButton),
	)
	style = style.
		Background(background).
		Foreground(text).
		Align(lipgloss.Center)

	if b.options.Disabled {
		style = style.Faint(true)
	}
	return style
}

// TextButton renders a borderless, primary-coloured action label.
type TextButton struct {
	label   string
	onPress func()
}

// NewTextButton creates a text button.
func NewTextButton(label string, onPress func()) *TextButton {
	return &TextButton{label: label, onPress: onPress}
}

// Tap fires the press callback.
func (t *TextButton) Tap() {
	if t.onPress != nil {
		t.onPress()
	}
}

// View renders the text button with the default theme.
func (t *TextButton) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text button.
func (t *TextButton) ViewWithContext(ctx RenderContext) string {
	style := Style(ctx.Theme, lipgloss.NewStyle(), Foreground(PalettePrimary), Typography(TypographyVariantButton))
	return style.Render(t.label)
}

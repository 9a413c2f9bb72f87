package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const defaultInputWidth = 24

// InputStatus marks an input as valid or invalid.
type InputStatus int

const (
	InputStatusNone InputStatus = iota
	InputStatusSuccess
	InputStatusError
)

// Adornment renders a prefix or suffix; it receives the focus state.
type Adornment func(focused bool) string

// InputOptions defines the configuration options for an input.
type InputOptions struct {
	Label       string
	Status      InputStatus
	Caption     string
	HideCaption bool
	Prefix      Adornment
	Suffix      Adornment
	Value       string
	CharLimit   int

	OnChangeText func(value string)
	OnFocus      func()
	OnBlur       func()
}

// Input is a bordered text field with a floating label and a caption line.
type Input struct {
	options InputOptions
	model   textinput.Model
}

// NewInput creates an input.
func NewInput(opts InputOptions) *Input {
	ti := textinput.New()
	ti.Prompt = ""
	if opts.CharLimit > 0 {
		ti.CharLimit = opts.CharLimit
	}
	ti.SetValue(opts.Value)

	return &Input{options: opts, model: ti}
}

// WithStatus sets the validation status.
func (in *Input) WithStatus(status InputStatus) *Input {
	in.options.Status = status
	return in
}

// WithCaption sets the caption text.
func (in *Input) WithCaption(caption string) *Input {
	in.options.Caption = caption
	return in
}

// Status returns the validation status.
func (in *Input) Status() InputStatus {
	return in.options.Status
}

// Value returns the current text.
func (in *Input) Value() string {
	return in.model.Value()
}

// SetValue replaces the text without firing OnChangeText.
func (in *Input) SetValue(value string) {
	in.model.SetValue(value)
}

// Focus focuses the field.
func (in *Input) Focus() tea.Cmd {
	if in.model.Focused() {
		return nil
	}
	cmd := in.model.Focus()
	if in.options.OnFocus != nil {
		in.options.OnFocus()
	}
	return cmd
}

// Blur removes focus from the field.
func (in *Input) Blur() {
	if !in.model.Focused() {
		return
	}
	in.model.Blur()
	if in.options.OnBlur != nil {
		in.options.OnBlur()
	}
}

// Focused reports whether the field has focus.
func (in *Input) Focused() bool {
	return in.model.Focused()
}

// LabelActive reports whether the label floats above the field.
func (in *Input) LabelActive() bool {
	return in.options.Label != "" && in.model.Value() != ""
}

// CaptionActive reports whether a caption is shown.
func (in *Input) CaptionActive() bool {
	return !in.options.HideCaption && in.options.Caption != ""
}

// Update forwards msg to the text field and reports edits through OnChangeText.
func (in *Input) Update(msg tea.Msg) (*Input, tea.Cmd) {
	before := in.model.Value()

	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)

	if after := in.model.Value(); after != before && in.options.OnChangeText != nil {
		in.options.OnChangeText(after)
	}
	return in, cmd
}

// View renders the input with the default theme.
func (in *Input) View() string {
	return in.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, the bordered field and the caption.
func (in *Input) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	focused := in.model.Focused()
	accent := in.accentColor(theme)

	var prefix, suffix string
	if in.options.Prefix != nil {
		prefix = in.options.Prefix(focused)
	}
	if in.options.Suffix != nil {
		suffix = in.options.Suffix(focused)
	}

	box := Style(theme, lipgloss.NewStyle(), PaddingX(SpacingSizeMedium)).
		Border(theme.Borders.Rounded).
		BorderForeground(in.borderColor(theme)).
		BorderBackground(theme.Palette.CardBackground).
		Background(theme.Palette.CardBackground)

	model := in.model
	model.TextStyle = lipgloss.NewStyle().Foreground(theme.Palette.Text)
	model.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Palette.SubText)
	if in.options.Status != InputStatusNone {
		model.PlaceholderStyle = model.PlaceholderStyle.Foreground(accent)
	}
	model.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Palette.Primary)

	model.Width = max(defaultInputWidth, runewidth.StringWidth(model.Value()), runewidth.StringWidth(in.options.Label))
	if ctx.Width > 0 {
		// two border cells
		box = box.Width(max(ctx.Width-2, 1))
		// one cell for the trailing cursor
		used := adornmentWidth(prefix) + adornmentWidth(suffix) + 1
		model.Width = max(ctx.Width-2-2*theme.PaddingValue(SpacingSizeMedium)-used, 1)
	}

	var field strings.Builder
	if prefix != "" {
		field.WriteString(prefix + " ")
	}
	field.WriteString(in.fieldView(model))
	if suffix != "" {
		field.WriteString(" " + suffix)
	}

	var lines []string
	if in.options.Label != "" {
		label := ""
		if in.LabelActive() {
			labelStyle := lipgloss.NewStyle().Inherit(theme.TypographyStyle(TypographyVariantLabel)).Foreground(accent)
			label = labelStyle.Render(in.options.Label)
		}
		lines = append(lines, " "+label)
	}
	lines = append(lines, box.Render(field.String()))
	if !in.options.HideCaption {
		captionStyle := lipgloss.NewStyle().Foreground(in.captionColor(theme))
		lines = append(lines, "  "+captionStyle.Render(in.options.Caption))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// fieldView shows the label as a placeholder while the field is empty.
func (in *Input) fieldView(model textinput.Model) string {
	if model.Value() != "" || in.options.Label == "" {
		return model.View()
	}
	text := runewidth.Truncate(in.options.Label, model.Width, "")
	return model.PlaceholderStyle.Width(model.Width + 1).Render(text)
}

// adornmentWidth is the width of a prefix or suffix plus its separating space.
func adornmentWidth(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Width(s) + 1
}

func (in *Input) borderColor(theme Theme) lipgloss.Color {
	switch in.options.Status {
	case InputStatusSuccess:
		return theme.Palette.Success
	case InputStatusError:
		return theme.Palette.Danger
	}
	if in.model.Focused() {
		return theme.Palette.Primary
	}
	return theme.Palette.InputBorder
}

// accentColor is the label colour: status first, then focus.
func (in *Input) accentColor(theme Theme) lipgloss.Color {
	if in.options.Status == InputStatusNone && !in.model.Focused() {
		return theme.Palette.Text
	}
	return in.borderColor(theme)
}

func (in *Input) captionColor(theme Theme) lipgloss.Color {
	switch in.options.Status {
	case InputStatusSuccess:
		return theme.Palette.Success
	case InputStatusError:
		return theme.Palette.Danger
	default:
		return theme.Scales.Basic.Shade(8)
	}
}

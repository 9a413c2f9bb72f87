package components

import (
	"github.com/charmbracelet/lipgloss"
)

// TextType selects a heading level or paragraph text.
type TextType int

const (
	TextP TextType = iota
	TextH1
	TextH2
	TextH3
	TextH4
	TextH5
	TextH6
)

func (t TextType) typography() TypographyVariant {
	switch t {
	case TextH1:
		return TypographyVariantH1
	case TextH2:
		return TypographyVariantH2
	case TextH3:
		return TypographyVariantH3
	case TextH4:
		return TypographyVariantH4
	case TextH5:
		return TypographyVariantH5
	case TextH6:
		return TypographyVariantH6
	default:
		return TypographyVariantParagraph
	}
}

// Text renders themed text.
type Text struct {
	content  string
	textType TextType
	appliers []StyleApplier
}

// NewText creates paragraph text.
func NewText(content string) *Text {
	return &Text{content: content, textType: TextP}
}

// Heading creates heading text of the given level.
func Heading(content string, textType TextType) *Text {
	return NewText(content).WithType(textType)
}

// WithType sets the text type.
func (t *Text) WithType(textType TextType) *Text {
	t.textType = textType
	return t
}

// WithAppliers adds theme-based style modifiers applied after the typography preset.
func (t *Text) WithAppliers(appliers ...StyleApplier) *Text {
	t.appliers = append(t.appliers, appliers...)
	return t
}

// Content returns the text.
func (t *Text) Content() string {
	return t.content
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := Style(ctx.Theme, lipgloss.NewStyle(), t.appliers...)
	style = style.Inherit(ctx.Theme.TypographyStyle(t.textType.typography()))
	if ctx.Width > 0 {
		style = style.MaxWidth(ctx.Width)
	}
	return style.Render(t.content)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/components"
)

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	focused lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(theme components.Theme) styles {
	return styles{
		title:   lipgloss.NewStyle().Inherit(theme.TypographyStyle(components.TypographyVariantH3)),
		section: lipgloss.NewStyle().Foreground(theme.Palette.SubText).Bold(true).MarginTop(1),
		focused: lipgloss.NewStyle().Foreground(theme.Palette.Primary).Bold(true).MarginTop(1),
		hint:    lipgloss.NewStyle().Foreground(theme.Palette.SubText).Italic(true),
	}
}

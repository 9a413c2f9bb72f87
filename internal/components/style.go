package components

import (
	"github.com/charmbracelet/lipgloss"
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers using theme.
func Style(theme Theme, base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		if applier == nil {
			continue
		}
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) lipgloss.Color

var (
	PaletteLayoutBackground PaletteSlot = func(p Palette) lipgloss.Color { return p.LayoutBackground }
	PaletteCardBackground   PaletteSlot = func(p Palette) lipgloss.Color { return p.CardBackground }
	PalettePrimary          PaletteSlot = func(p Palette) lipgloss.Color { return p.Primary }
	PaletteText             PaletteSlot = func(p Palette) lipgloss.Color { return p.Text }
	PaletteSubText          PaletteSlot = func(p Palette) lipgloss.Color { return p.SubText }
	PaletteBasicBorder      PaletteSlot = func(p Palette) lipgloss.Color { return p.BasicBorder }
	PaletteInputBorder      PaletteSlot = func(p Palette) lipgloss.Color { return p.InputBorder }
	PaletteDanger           PaletteSlot = func(p Palette) lipgloss.Color { return p.Danger }
	PaletteSuccess          PaletteSlot = func(p Palette) lipgloss.Color { return p.Success }
)

// Background applies a semantic background colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(slot(theme.Palette))
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette))
	}
}

// Border applies a themed border.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.BorderStyle(variant))
	}
}

// BorderColor colours every border edge.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.PaddingValue(size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.PaddingValue(size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.MarginValue(size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.TypographyStyle(variant))
	}
}

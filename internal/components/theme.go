package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorScheme selects the light or dark theme.
type ColorScheme int

const (
	SchemeLight ColorScheme = iota
	SchemeDark
)

func (s ColorScheme) String() string {
	if s == SchemeDark {
		return "dark"
	}
	return "light"
}

// ParseScheme maps "light", "dark" or "auto" to a scheme. "auto" and the empty
// string detect the terminal background.
func ParseScheme(value string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return SchemeLight, nil
	case "dark":
		return SchemeDark, nil
	case "", "auto":
		return DetectScheme(), nil
	default:
		return SchemeLight, fmt.Errorf("unknown color scheme %q", value)
	}
}

// DetectScheme reports the scheme matching the terminal background.
func DetectScheme() ColorScheme {
	if termenv.HasDarkBackground() {
		return SchemeDark
	}
	return SchemeLight
}

const scaleLength = 11

// ColorScale is a 1-based ramp of shades, lightest first in the light scheme.
type ColorScale struct {
	colors [scaleLength]lipgloss.Color
}

// NewColorScale builds a scale from up to eleven colours; shade 1 is the first argument.
func NewColorScale(colors ...string) ColorScale {
	var scale ColorScale
	for i := 0; i < scaleLength && i < len(colors); i++ {
		scale.colors[i] = lipgloss.Color(colors[i])
	}
	return scale
}

// Shade returns the colour at the 1-based index, or "" when out of range.
func (cs ColorScale) Shade(index int) lipgloss.Color {
	if index < 1 || index > scaleLength {
		return ""
	}
	return cs.colors[index-1]
}

// Reversed returns the scale with its populated shades in reverse order.
func (cs ColorScale) Reversed() ColorScale {
	n := 0
	for n < scaleLength && cs.colors[n] != "" {
		n++
	}
	var out ColorScale
	for i := 0; i < n; i++ {
		out.colors[i] = cs.colors[n-1-i]
	}
	return out
}

// Scales groups the colour ramps of a theme.
type Scales struct {
	Colors  ColorScale
	Basic   ColorScale
	Primary ColorScale
	Danger  ColorScale
	Success ColorScale
}

// Palette holds the semantic colour slots used by components.
type Palette struct {
	LayoutBackground lipgloss.Color
	CardBackground   lipgloss.Color
	Primary          lipgloss.Color
	TabBarInactive   lipgloss.Color
	Text             lipgloss.Color
	SubText          lipgloss.Color
	ButtonPress      lipgloss.Color
	InputBorder      lipgloss.Color
	ButtonControl    lipgloss.Color
	BasicBorder      lipgloss.Color
	Danger           lipgloss.Color
	Success          lipgloss.Color
}

// merge copies every non-empty slot of overrides onto p.
func (p Palette) merge(overrides Palette) Palette {
	set := func(dst *lipgloss.Color, src lipgloss.Color) {
		if src != "" {
			*dst = src
		}
	}
	set(&p.LayoutBackground, overrides.LayoutBackground)
	set(&p.CardBackground, overrides.CardBackground)
	set(&p.Primary, overrides.Primary)
	set(&p.TabBarInactive, overrides.TabBarInactive)
	set(&p.Text, overrides.Text)
	set(&p.SubText, overrides.SubText)
	set(&p.ButtonPress, overrides.ButtonPress)
	set(&p.InputBorder, overrides.InputBorder)
	set(&p.ButtonControl, overrides.ButtonControl)
	set(&p.BasicBorder, overrides.BasicBorder)
	set(&p.Danger, overrides.Danger)
	set(&p.Success, overrides.Success)
	return p
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantParagraph TypographyVariant = iota
	TypographyVariantH1
	TypographyVariantH2
	TypographyVariantH3
	TypographyVariantH4
	TypographyVariantH5
	TypographyVariantH6
	TypographyVariantButton
	TypographyVariantLabel
	TypographyVariantCaption
)

// TypographyScale contains the text presets of a theme.
type TypographyScale struct {
	H1        lipgloss.Style
	H2        lipgloss.Style
	H3        lipgloss.Style
	H4        lipgloss.Style
	H5        lipgloss.Style
	H6        lipgloss.Style
	Paragraph lipgloss.Style
	Button    lipgloss.Style
	Label     lipgloss.Style
	Caption   lipgloss.Style
}

// Theme represents the styling theme for components.
type Theme struct {
	Scheme     ColorScheme
	Palette    Palette
	Scales     Scales
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
}

var (
	lightBasic = []string{
		"#FFFFFF", "#F8F8F8", "#F2F2F2", "#F5F5F5", "#EDEDED", "#DADADA",
		"#858585", "#757575", "#666666", "#454545", "#222222",
	}
	primaryScale = NewColorScale(
		"#f0f6ff", "#c9dcff", "#a1bfff", "#7296f2", "#476fe6",
		"#2148d9", "#122fb3", "#071b8c", "#000c66", "#000540",
	)
	successScale = NewColorScale(
		"#f0fff3", "#ccffd7", "#9df5b3", "#6fe892", "#46db75",
		"#21cf5e", "#13a84c", "#08823b", "#015c2a", "#00361a",
	)
	dangerScale = NewColorScale(
		"#fff3f0", "#ffd8cf", "#ffb5a6", "#ff8e7d", "#ff6554",
		"#ff392b", "#d9201a", "#b30c0c", "#8c0307", "#660108",
	)
)

func baseTheme(scheme ColorScheme, palette Palette, basic ColorScale) Theme {
	palette.Primary = primaryScale.Shade(6)
	palette.Danger = dangerScale.Shade(6)
	palette.Success = successScale.Shade(6)

	theme := Theme{
		Scheme:  scheme,
		Palette: palette,
		Scales: Scales{
			Colors:  NewColorScale(lightBasic...),
			Basic:   basic,
			Primary: primaryScale,
			Danger:  dangerScale,
			Success: successScale,
		},
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Spacing: SpacingConfig{
			Padding: defaultSpacingTable(),
			Margin:  defaultSpacingTable(),
		},
	}
	theme.Typography = defaultTypography(theme.Palette)
	return theme
}

// LightTheme returns the light theme.
func LightTheme() Theme {
	basic := NewColorScale(lightBasic...)
	return baseTheme(SchemeLight, Palette{
		LayoutBackground: "#f2f2f2",
		CardBackground:   "#ffffff",
		TabBarInactive:   "#020202",
		Text:             "#0e0e0f",
		SubText:          basic.Shade(9),
		ButtonPress:      "#141414",
		InputBorder:      "#d9d9d9",
		ButtonControl:    "#F8F8F8",
		BasicBorder:      "#d8d8d8",
	}, basic)
}

// DarkTheme returns the dark theme. Its basic scale is the light one reversed.
func DarkTheme() Theme {
	basic := NewColorScale(lightBasic...).Reversed()
	return baseTheme(SchemeDark, Palette{
		LayoutBackground: "#030303",
		CardBackground:   "#161616",
		TabBarInactive:   "#e1e1e1",
		Text:             "#e5e5e7",
		SubText:          basic.Shade(6),
		ButtonPress:      "#ffffff",
		InputBorder:      "#757575",
		ButtonControl:    "#222222",
		BasicBorder:      "#272729",
	}, basic)
}

// ThemeFor returns the built-in theme for scheme.
func ThemeFor(scheme ColorScheme) Theme {
	if scheme == SchemeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// ResolveTheme returns the theme for scheme with every non-empty slot of overrides
// applied on top.
func ResolveTheme(scheme ColorScheme, overrides Palette) Theme {
	theme := ThemeFor(scheme)
	theme.Palette = theme.Palette.merge(overrides)
	theme.Typography = defaultTypography(theme.Palette)
	return theme
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Text)

	return TypographyScale{
		H1:        base.Bold(true).Underline(true).Italic(true),
		H2:        base.Bold(true).Underline(true),
		H3:        base.Bold(true),
		H4:        base.Bold(true),
		H5:        base.Bold(true),
		H6:        base.Bold(true),
		Paragraph: base,
		Button:    base.Bold(true),
		Label:     base.Bold(true),
		Caption:   base.Foreground(p.SubText),
	}
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: theme}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = theme
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

var defaultThemeManager = NewThemeManager(LightTheme())

// SetTheme sets the theme used by View.
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the theme used by View.
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

// BorderStyle returns the border for variant.
func (t Theme) BorderStyle(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return t.Borders.Normal
	case BorderVariantThick:
		return t.Borders.Thick
	case BorderVariantRounded:
		return t.Borders.Rounded
	default:
		return t.Borders.None
	}
}

// TypographyStyle returns the typography preset for variant.
func (t Theme) TypographyStyle(variant TypographyVariant) lipgloss.Style {
	typo := t.Typography
	switch variant {
	case TypographyVariantH1:
		return typo.H1
	case TypographyVariantH2:
		return typo.H2
	case TypographyVariantH3:
		return typo.H3
	case TypographyVariantH4:
		return typo.H4
	case TypographyVariantH5:
		return typo.H5
	case TypographyVariantH6:
		return typo.H6
	case TypographyVariantButton:
		return typo.Button
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantCaption:
		return typo.Caption
	default:
		return typo.Paragraph
	}
}

// PaddingValue returns the padding for size.
func (t Theme) PaddingValue(size SpacingSize) int {
	return spacingLookup(t.Spacing.Padding, size)
}

// MarginValue returns the margin for size.
func (t Theme) MarginValue(size SpacingSize) int {
	return spacingLookup(t.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/components"
)

var (
	hexColourPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbColourPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
)

// ParseColour normalises #rgb, #rrggbb and rgb(r, g, b) to a lowercase #rrggbb colour.
func ParseColour(value string) (lipgloss.Color, error) {
	value = strings.TrimSpace(value)

	if hexColourPattern.MatchString(value) {
		hex := strings.ToLower(value[1:])
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		return lipgloss.Color("#" + hex), nil
	}

	if m := rgbColourPattern.FindStringSubmatch(value); m != nil {
		var channels [3]int
		for i := range channels {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return "", fmt.Errorf("colour channel %q out of range", m[i+1])
			}
			channels[i] = n
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2])), nil
	}

	return "", fmt.Errorf("unsupported colour %q", value)
}

// ThemeOverrides converts the configured colours into palette overrides. Unset slots
// stay empty and keep the scheme value.
func (c *Config) ThemeOverrides() (components.Palette, error) {
	var palette components.Palette
	if c == nil {
		return palette, nil
	}

	slots := []struct {
		value string
		dst   *lipgloss.Color
	}{
		{c.Theme.LayoutBackground, &palette.LayoutBackground},
		{c.Theme.CardBackground, &palette.CardBackground},
		{c.Theme.Primary, &palette.Primary},
		{c.Theme.TabBarInactive, &palette.TabBarInactive},
		{c.Theme.Text, &palette.Text},
		{c.Theme.SubText, &palette.SubText},
		{c.Theme.ButtonPress, &palette.ButtonPress},
		{c.Theme.InputBorder, &palette.InputBorder},
		{c.Theme.ButtonControl, &palette.ButtonControl},
		{c.Theme.BasicBorder, &palette.BasicBorder},
		{c.Theme.Danger, &palette.Danger},
		{c.Theme.Success, &palette.Success},
	}

	for _, slot := range slots {
		if slot.value == "" {
			continue
		}
		colour, err := ParseColour(slot.value)
		if err != nil {
			return components.Palette{}, err
		}
		*slot.dst = colour
	}
	return palette, nil
}

// ResolveTheme returns the theme for the configured scheme with overrides applied.
func (c *Config) ResolveTheme() (components.Theme, error) {
	scheme, err := components.ParseScheme(c.Scheme)
	if err != nil {
		return components.Theme{}, err
	}
	overrides, err := c.ThemeOverrides()
	if err != nil {
		return components.Theme{}, err
	}
	return components.ResolveTheme(scheme, overrides), nil
}

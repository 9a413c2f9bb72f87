package config

import (
	"time"

	"github.com/alexisbeaulieu97/swatch/pkg/selection"
)

// Config represents the full swatch configuration document.
type Config struct {
	Version string      `yaml:"version" validate:"required,semver"`
	Scheme  string      `yaml:"scheme,omitempty" validate:"omitempty,oneof=auto light dark"`
	Theme   ThemeConfig `yaml:"theme,omitempty"`
	Gallery Gallery     `yaml:"gallery,omitempty"`
}

// ThemeConfig holds partial colour overrides applied on top of the scheme theme.
// Colours are written as #rgb, #rrggbb or rgb(r, g, b).
type ThemeConfig struct {
	LayoutBackground string `yaml:"layout_background,omitempty" validate:"omitempty,colour"`
	CardBackground   string `yaml:"card_background,omitempty" validate:"omitempty,colour"`
	Primary          string `yaml:"primary,omitempty" validate:"omitempty,colour"`
	TabBarInactive   string `yaml:"tab_bar_inactive,omitempty" validate:"omitempty,colour"`
	Text             string `yaml:"text,omitempty" validate:"omitempty,colour"`
	SubText          string `yaml:"sub_text,omitempty" validate:"omitempty,colour"`
	ButtonPress      string `yaml:"button_press,omitempty" validate:"omitempty,colour"`
	InputBorder      string `yaml:"input_border,omitempty" validate:"omitempty,colour"`
	ButtonControl    string `yaml:"button_control,omitempty" validate:"omitempty,colour"`
	BasicBorder      string `yaml:"basic_border,omitempty" validate:"omitempty,colour"`
	Danger           string `yaml:"danger,omitempty" validate:"omitempty,colour"`
	Success          string `yaml:"success,omitempty" validate:"omitempty,colour"`
}

// Gallery configures the interactive gallery and static rendering.
type Gallery struct {
	Direction string       `yaml:"direction,omitempty" validate:"omitempty,oneof=vertical horizontal"`
	Buttons   []string     `yaml:"buttons,omitempty" validate:"omitempty,max=8,dive,min=1,max=24"`
	Menu      MenuConfig   `yaml:"menu,omitempty"`
	Tabs      []TabConfig  `yaml:"tabs,omitempty" validate:"omitempty,max=8,dive"`
	Picker    PickerConfig `yaml:"picker,omitempty"`
}

// MenuConfig describes the selectable menu section.
type MenuConfig struct {
	Multiple     bool             `yaml:"multiple,omitempty"`
	Unselectable bool             `yaml:"unselectable,omitempty"`
	Items        []MenuItemConfig `yaml:"items,omitempty" validate:"omitempty,dive"`
	Selected     []string         `yaml:"selected,omitempty" validate:"omitempty,dive,item_value"`
}

// MenuItemConfig is one menu row.
type MenuItemConfig struct {
	Value string `yaml:"value" validate:"required,item_value"`
	Label string `yaml:"label,omitempty" validate:"max=40"`
}

// TabConfig is one tab bar route.
type TabConfig struct {
	Name   string `yaml:"name" validate:"required,item_value"`
	Title  string `yaml:"title,omitempty"`
	Label  string `yaml:"label,omitempty"`
	Icon   string `yaml:"icon,omitempty" validate:"max=4"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// PickerConfig describes the date/time picker section.
type PickerConfig struct {
	Mode    string `yaml:"mode,omitempty" validate:"omitempty,oneof=date time datetime"`
	Flow    string `yaml:"flow,omitempty" validate:"omitempty,oneof=sequential modal"`
	Caption string `yaml:"caption,omitempty"`
	Value   string `yaml:"value,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// Policy returns the selection policy of the menu.
func (m MenuConfig) Policy() selection.Policy {
	return selection.Policy{Multiple: m.Multiple, Unselectable: m.Unselectable}
}

// InitialSelection converts the configured selected values into a selection state.
func (m MenuConfig) InitialSelection() selection.State {
	if m.Multiple {
		return selection.Multiple(m.Selected...)
	}
	if len(m.Selected) == 0 {
		return selection.None()
	}
	return selection.Single(m.Selected[0])
}

// InitialValue returns the configured picker value, or now when unset.
func (p PickerConfig) InitialValue(now time.Time) time.Time {
	if p.Value == "" {
		return now
	}
	parsed, err := time.Parse(time.RFC3339, p.Value)
	if err != nil {
		return now
	}
	return parsed
}

package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/pkg/selection"
)

// ComponentNames lists the components RenderStatic knows, in default render order.
var ComponentNames = []string{"text", "button", "group", "menu", "list", "input", "picker", "tabbar"}

// StaticOptions configures RenderStatic.
type StaticOptions struct {
	Config *config.Config
	Theme  components.Theme
	Width  int
	Now    time.Time
}

// RenderStatic writes the named components, or all of them when names is empty.
func RenderStatic(w io.Writer, opts StaticOptions, names ...string) error {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if len(names) == 0 {
		names = ComponentNames
	}

	ctx := components.DefaultContext().WithTheme(opts.Theme).WithWidth(opts.Width)
	title := lipgloss.NewStyle().Inherit(opts.Theme.TypographyStyle(components.TypographyVariantLabel))

	for i, name := range names {
		view, err := staticComponent(name, opts)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", title.Render(name), components.Render(view, ctx)); err != nil {
			return err
		}
	}
	return nil
}

func staticComponent(name string, opts StaticOptions) (components.Renderable, error) {
	g := opts.Config.Gallery

	switch strings.ToLower(name) {
	case "text":
		return components.Children{
			components.Heading("Swatch", components.TextH1),
			components.Heading("Components", components.TextH4),
			components.NewText("Themed building blocks for terminal interfaces."),
		}, nil
	case "button":
		return components.Children{
			components.SimpleButton("Default"),
			components.NewButton("Primary", components.ButtonOptions{Status: components.ButtonStatusPrimary}),
			components.NewButton("Danger", components.ButtonOptions{Status: components.ButtonStatusDanger}),
			components.NewButton("Disabled", components.ButtonOptions{Disabled: true}),
			components.NewTextButton("Text button", nil),
		}, nil
	case "group":
		return buttonGroupFrom(g, nil), nil
	case "menu":
		return menuFrom(g.Menu, g.Menu.InitialSelection(), "", nil), nil
	case "list":
		items := make(components.Children, 0, len(g.Menu.Items))
		for _, item := range g.Menu.Items {
			items = append(items, components.NewListItem(labelOf(item), nil))
		}
		return items, nil
	case "input":
		return newEmailInput(nil), nil
	case "picker":
		picker, err := pickerFrom(g.Picker, g.Picker.InitialValue(opts.Now), nil)
		if err != nil {
			return nil, err
		}
		return picker, nil
	case "tabbar":
		routes := routesFrom(g.Tabs)
		return components.NewTabBar(routes, firstVisible(routes), nil), nil
	default:
		return nil, fmt.Errorf("unknown component %q (known: %s)", name, strings.Join(ComponentNames, ", "))
	}
}

func labelOf(item config.MenuItemConfig) string {
	if item.Label != "" {
		return item.Label
	}
	return item.Value
}

func buttonGroupFrom(g config.Gallery, onPress func(label string)) *components.ButtonGroup {
	group := components.NewButtonGroup()
	if g.Direction == "horizontal" {
		group.WithDirection(components.DirectionHorizontal)
	}
	for _, label := range g.Buttons {
		button := components.SimpleButton(label)
		if onPress != nil {
			button.WithOnPress(func() { onPress(label) })
		}
		group.Add(button)
	}
	return group
}

// groupButtons returns the buttons of a group built by buttonGroupFrom.
func groupButtons(group *components.ButtonGroup) []*components.Button {
	var buttons []*components.Button
	for _, positioned := range group.Items() {
		if button, ok := positioned.Item.(*components.Button); ok {
			buttons = append(buttons, button)
		}
	}
	return buttons
}

func menuFrom(cfg config.MenuConfig, selected selection.State, focused string, onSelect func(selection.State)) *components.SelectableMenu {
	items := make([]components.Renderable, len(cfg.Items))
	for i, item := range cfg.Items {
		items[i] = components.NewMenuItem(item.Value, item.Label)
	}
	menu := components.NewSelectableMenu(components.MenuOptions{
		Policy:   cfg.Policy(),
		Selected: selected,
		OnSelect: onSelect,
	}, items...)
	return menu.WithFocused(focused)
}

func routesFrom(tabs []config.TabConfig) []components.Route {
	routes := make([]components.Route, len(tabs))
	for i, tab := range tabs {
		routes[i] = components.Route{
			Key:    fmt.Sprintf("%s-%d", tab.Name, i),
			Name:   tab.Name,
			Title:  tab.Title,
			Label:  tab.Label,
			Icon:   tab.Icon,
			Hidden: tab.Hidden,
		}
	}
	return routes
}

func firstVisible(routes []components.Route) int {
	for i, route := range routes {
		if !route.Hidden {
			return i
		}
	}
	return 0
}

func pickerFrom(cfg config.PickerConfig, value time.Time, onChange func(time.Time)) (*components.DateTimePicker, error) {
	mode, err := components.ParsePickerMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	flow, err := components.ParsePickerFlow(cfg.Flow)
	if err != nil {
		return nil, err
	}
	caption := cfg.Caption
	if caption == "" {
		caption = "Press enter to pick a " + mode.String()
	}
	return components.NewDateTimePicker(value, components.PickerOptions{
		Mode:     mode,
		Flow:     flow,
		Caption:  caption,
		OnChange: onChange,
	}), nil
}

func newEmailInput(onChange func(string)) *components.Input {
	return components.NewInput(components.InputOptions{
		Label:        "Email",
		Caption:      "Used for receipts only",
		CharLimit:    64,
		Prefix:       func(bool) string { return "✉" },
		OnChangeText: onChange,
	})
}

// emailStatus marks an address valid once it has a local part and a dotted domain.
func emailStatus(value string) (components.InputStatus, string) {
	if value == "" {
		return components.InputStatusNone, "Used for receipts only"
	}
	local, domain, ok := strings.Cut(value, "@")
	if !ok || local == "" || !strings.Contains(strings.Trim(domain, "."), ".") {
		return components.InputStatusError, "Enter a valid address"
	}
	return components.InputStatusSuccess, "Looks good"
}

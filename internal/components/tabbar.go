package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Tab bar event types.
const (
	EventTabPress     = "tabPress"
	EventTabLongPress = "tabLongPress"
)

// Route is one tab destination.
type Route struct {
	Key    string
	Name   string
	Title  string
	Label  string
	Icon   string
	Hidden bool
}

// DisplayLabel returns the label, falling back to the title and then the name.
func (r Route) DisplayLabel() string {
	if r.Label != "" {
		return r.Label
	}
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// TabEvent is emitted to the navigator when a tab is pressed.
type TabEvent struct {
	Type              string
	Target            string
	CanPreventDefault bool

	prevented bool
}

// PreventDefault cancels navigation for preventable events.
func (e *TabEvent) PreventDefault() {
	if e.CanPreventDefault {
		e.prevented = true
	}
}

// DefaultPrevented reports whether a listener cancelled the event.
func (e *TabEvent) DefaultPrevented() bool {
	return e.prevented
}

// Navigator receives tab events and performs navigation.
type Navigator interface {
	Emit(event *TabEvent)
	Navigate(name string)
}

const defaultMaxLabelWidth = 12

// TabBar renders a row of tabs for the routes of a navigator. The focused index is
// owned by the navigator and fed back with WithIndex.
type TabBar struct {
	routes        []Route
	index         int
	navigator     Navigator
	maxLabelWidth int
}

// NewTabBar creates a tab bar focused on index.
func NewTabBar(routes []Route, index int, navigator Navigator) *TabBar {
	return &TabBar{
		routes:        routes,
		index:         index,
		navigator:     navigator,
		maxLabelWidth: defaultMaxLabelWidth,
	}
}

// WithIndex sets the focused route.
func (tb *TabBar) WithIndex(index int) *TabBar {
	tb.index = index
	return tb
}

// WithMaxLabelWidth caps label width in cells.
func (tb *TabBar) WithMaxLabelWidth(width int) *TabBar {
	tb.maxLabelWidth = width
	return tb
}

// Routes returns the routes.
func (tb *TabBar) Routes() []Route {
	return tb.routes
}

// Index returns the focused route index.
func (tb *TabBar) Index() int {
	return tb.index
}

// Visible reports whether the bar is shown; it hides when the focused route is hidden.
func (tb *TabBar) Visible() bool {
	if tb.index < 0 || tb.index >= len(tb.routes) {
		return false
	}
	return !tb.routes[tb.index].Hidden
}

// Press emits a preventable tabPress and navigates to the route when it is not
// already focused and no listener prevented it.
func (tb *TabBar) Press(index int) error {
	route, err := tb.route(index)
	if err != nil {
		return err
	}

	event := &TabEvent{Type: EventTabPress, Target: route.Key, CanPreventDefault: true}
	if tb.navigator != nil {
		tb.navigator.Emit(event)
	}
	if index != tb.index && !event.DefaultPrevented() && tb.navigator != nil {
		tb.navigator.Navigate(route.Name)
	}
	return nil
}

// LongPress emits tabLongPress for the route.
func (tb *TabBar) LongPress(index int) error {
	route, err := tb.route(index)
	if err != nil {
		return err
	}
	if tb.navigator != nil {
		tb.navigator.Emit(&TabEvent{Type: EventTabLongPress, Target: route.Key})
	}
	return nil
}

func (tb *TabBar) route(index int) (Route, error) {
	if index < 0 || index >= len(tb.routes) {
		return Route{}, fmt.Errorf("tab index %d out of range [0, %d)", index, len(tb.routes))
	}
	return tb.routes[index], nil
}

// View renders the tab bar with the default theme.
func (tb *TabBar) View() string {
	return tb.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the tab bar, spreading tabs across the available width.
func (tb *TabBar) ViewWithContext(ctx RenderContext) string {
	if !tb.Visible() {
		return ""
	}
	theme := ctx.Theme

	cellWidth := tb.maxLabelWidth + 2
	if ctx.Width > 0 {
		cellWidth = max(ctx.Width/len(tb.routes), 1)
	}
	labelWidth := min(tb.maxLabelWidth, max(cellWidth-2, 1))

	cells := make([]string, len(tb.routes))
	for i, route := range tb.routes {
		cells[i] = tb.renderTab(theme, route, i == tb.index, cellWidth, labelWidth)
	}

	return lipgloss.NewStyle().
		Background(theme.Palette.CardBackground).
		Border(theme.Borders.Normal, true, false, false, false).
		BorderForeground(theme.Palette.BasicBorder).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (tb *TabBar) renderTab(theme Theme, route Route, focused bool, cellWidth, labelWidth int) string {
	color := theme.Palette.TabBarInactive
	if focused {
		color = theme.Palette.Primary
	}

	icon := route.Icon
	if icon == "" {
		icon = runewidth.Truncate(route.DisplayLabel(), 1, "")
	}

	// unfocused tabs keep an empty label line so icons stay aligned
	label := ""
	if focused {
		label = runewidth.Truncate(route.DisplayLabel(), labelWidth, "…")
	}

	style := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Foreground(color).
		Background(theme.Palette.CardBackground)
	if focused {
		style = style.Bold(true)
	}
	return style.Render(icon + "\n" + label)
}

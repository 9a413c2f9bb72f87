package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/swatch/pkg/children"
	"github.com/alexisbeaulieu97/swatch/pkg/selection"
)

// IndicatorRenderer draws the selection mark of a menu row.
type IndicatorRenderer func(selected bool, theme Theme) string

// DefaultIndicator renders a filled primary dot for selected rows and a hollow one otherwise.
func DefaultIndicator(selected bool, theme Theme) string {
	if selected {
		return lipgloss.NewStyle().Foreground(theme.Palette.Primary).Render("●")
	}
	return lipgloss.NewStyle().Foreground(theme.Palette.Text).Render("○")
}

// MenuOptions configures a SelectableMenu. The menu never stores selection: Selected
// is the caller's current state and OnSelect receives the next one.
type MenuOptions struct {
	Policy          selection.Policy
	Selected        selection.State
	OnSelect        func(selection.State)
	RenderIndicator IndicatorRenderer
}

// MenuItem is one selectable row.
type MenuItem struct {
	value    string
	label    string
	disabled bool
	onPress  func()
}

// NewMenuItem creates a menu row; an empty label shows the value.
func NewMenuItem(value, label string) *MenuItem {
	return &MenuItem{value: value, label: label}
}

// WithOnPress sets a callback fired before the selection changes.
func (mi *MenuItem) WithOnPress(fn func()) *MenuItem {
	mi.onPress = fn
	return mi
}

// WithDisabled sets the item disabled state.
func (mi *MenuItem) WithDisabled(disabled bool) *MenuItem {
	mi.disabled = disabled
	return mi
}

// Value returns the item identifier.
func (mi *MenuItem) Value() string {
	return mi.value
}

// Label returns the display label.
func (mi *MenuItem) Label() string {
	if mi.label == "" {
		return mi.value
	}
	return mi.label
}

// View renders the item on its own, unselected.
func (mi *MenuItem) View() string {
	return mi.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the item on its own, unselected.
func (mi *MenuItem) ViewWithContext(ctx RenderContext) string {
	row := menuRow{item: mi, indicator: DefaultIndicator}
	return row.viewInGroup(ctx, soleSlot())
}

// SelectableMenu is a vertical group of items that toggles selection on press.
type SelectableMenu struct {
	options  MenuOptions
	children []Renderable
	focused  string
}

// NewSelectableMenu creates a menu. Children may be items, fragments or collections.
func NewSelectableMenu(opts MenuOptions, items ...Renderable) *SelectableMenu {
	if opts.Selected.Kind() == selection.KindNone && opts.Policy.Multiple {
		opts.Selected = selection.Empty(opts.Policy)
	}
	return &SelectableMenu{options: opts, children: items}
}

// Add appends children to the menu.
func (m *SelectableMenu) Add(items ...Renderable) *SelectableMenu {
	m.children = append(m.children, items...)
	return m
}

// WithSelected replaces the selection to render. Callers feed back the state they
// received from OnSelect.
func (m *SelectableMenu) WithSelected(state selection.State) *SelectableMenu {
	m.options.Selected = state
	return m
}

// WithFocused highlights the item with value.
func (m *SelectableMenu) WithFocused(value string) *SelectableMenu {
	m.focused = value
	return m
}

// Selected returns the state the menu renders.
func (m *SelectableMenu) Selected() selection.State {
	return m.options.Selected
}

// Policy returns the selection policy.
func (m *SelectableMenu) Policy() selection.Policy {
	return m.options.Policy
}

// Items returns the menu items in flattened order. Other leaves are skipped.
func (m *SelectableMenu) Items() []*MenuItem {
	flat := FlattenChildren(m.children, children.Options{})
	items := make([]*MenuItem, 0, len(flat))
	for _, node := range flat {
		if item, ok := node.(*MenuItem); ok {
			items = append(items, item)
		}
	}
	return items
}

// Values lists the item values in flattened order.
func (m *SelectableMenu) Values() []string {
	items := m.Items()
	values := make([]string, len(items))
	for i, item := range items {
		values[i] = item.value
	}
	return values
}

// Press fires the item's own callback and then toggles its selection.
func (m *SelectableMenu) Press(value string) error {
	item := m.find(value)
	if item == nil {
		return fmt.Errorf("menu has no item %q", value)
	}
	if item.disabled {
		return nil
	}
	if item.onPress != nil {
		item.onPress()
	}
	return m.Select(value)
}

// Select computes the next selection and hands it to OnSelect.
func (m *SelectableMenu) Select(value string) error {
	next, err := selection.Reduce(m.options.Selected, value, m.options.Policy)
	if err != nil {
		return err
	}
	if m.options.OnSelect != nil {
		m.options.OnSelect(next)
	}
	return nil
}

func (m *SelectableMenu) find(value string) *MenuItem {
	for _, item := range m.Items() {
		if item.value == value {
			return item
		}
	}
	return nil
}

// View renders the menu with the default theme.
func (m *SelectableMenu) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the menu as a vertical group.
func (m *SelectableMenu) ViewWithContext(ctx RenderContext) string {
	indicator := m.options.RenderIndicator
	if indicator == nil {
		indicator = DefaultIndicator
	}

	flat := FlattenChildren(m.children, children.Options{})
	rows := make([]Renderable, len(flat))
	for i, node := range flat {
		item, ok := node.(*MenuItem)
		if !ok {
			rows[i] = node
			continue
		}
		rows[i] = menuRow{
			item:      item,
			selected:  m.options.Selected.Contains(item.value),
			focused:   m.focused != "" && m.focused == item.value,
			indicator: indicator,
		}
	}
	return renderGroup(ctx, DirectionVertical, children.Annotate(rows))
}

// menuRow binds an item to the menu state it is drawn with.
type menuRow struct {
	item      *MenuItem
	selected  bool
	focused   bool
	indicator IndicatorRenderer
}

func (r menuRow) View() string {
	return r.viewInGroup(DefaultContext(), soleSlot())
}

func (r menuRow) contentWidth(ctx RenderContext) int {
	mark := r.indicator(r.selected, ctx.Theme)
	return runewidth.StringWidth(r.item.Label()) + 1 + lipgloss.Width(mark) + 2*ctx.Theme.PaddingValue(SpacingSizeMedium)
}

func (r menuRow) viewInGroup(ctx RenderContext, slot GroupSlot) string {
	theme := ctx.Theme
	padding := theme.PaddingValue(SpacingSizeMedium)
	mark := r.indicator(r.selected, theme)

	width := slot.Width
	if width == 0 {
		width = r.contentWidth(ctx)
	}
	inner := max(width-2*padding, 1)

	labelWidth := max(inner-lipgloss.Width(mark)-1, 1)
	label := runewidth.Truncate(r.item.Label(), labelWidth, "…")
	gap := max(inner-runewidth.StringWidth(label)-lipgloss.Width(mark), 1)

	background := theme.Scales.Basic.Shade(1)
	if r.focused {
		background = theme.Scales.Basic.Shade(2)
	}

	labelStyle := lipgloss.NewStyle().Inherit(theme.TypographyStyle(TypographyVariantLabel))
	if r.focused {
		labelStyle = labelStyle.Foreground(theme.Palette.Primary)
	}

	content := labelStyle.Render(label) + strings.Repeat(" ", gap) + mark

	style := Style(theme, lipgloss.NewStyle(),
		PaddingX(SpacingSizeMedium),
		BorderColor(PaletteBasicBorder),
	).Background(background).Width(width)
	if r.item.disabled {
		style = style.Faint(true)
	}
	style = slot.Decoration().apply(style)
	return style.Render(content)
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := newStyles(m.theme)
	ctx := components.DefaultContext().WithTheme(m.theme).WithWidth(m.contentWidth())

	sections := []string{
		s.title.Render("Swatch gallery"),
		m.block(s, SectionButtons, m.buttonsView(s, ctx)),
		m.block(s, SectionMenu, m.menuView(ctx)),
		m.block(s, SectionTabs, m.tabsView(s, ctx)),
		m.block(s, SectionInput, components.Render(m.input, ctx)),
		m.block(s, SectionPicker, components.Render(m.picker, ctx)),
		"",
		components.Render(components.NewListItem(m.status, nil), ctx),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) block(s styles, section Section, body string) string {
	heading := s.section.Render("  " + section.String())
	if m.section == section {
		heading = s.focused.Render("▸ " + section.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, body)
}

func (m Model) buttonsView(s styles, ctx components.RenderContext) string {
	view := components.Render(m.buttons, ctx)
	buttons := groupButtons(m.buttons)
	if m.section != SectionButtons || len(buttons) == 0 {
		return view
	}
	hint := s.hint.Render(fmt.Sprintf("focused: %s", buttons[m.buttonCursor].Label()))
	return lipgloss.JoinVertical(lipgloss.Left, view, hint)
}

func (m Model) menuView(ctx components.RenderContext) string {
	focused := ""
	if values := m.menuValues(); m.section == SectionMenu && len(values) > 0 {
		focused = values[m.menuCursor]
	}
	return components.Render(menuFrom(m.cfg.Gallery.Menu, m.selected, focused, nil), ctx)
}

func (m Model) tabsView(s styles, ctx components.RenderContext) string {
	view := components.Render(components.NewTabBar(m.routes, m.tabIndex, nil), ctx)
	if m.lastEvent == "" {
		return view
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, s.hint.Render("last event: "+m.lastEvent))
}

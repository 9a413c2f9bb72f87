package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/pkg/selection"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case PickedMsg:
		m.picker.SetValue(msg.Value)
		m.status = "Picked " + m.picker.Text()
		m.log.WithFields(map[string]any{"value": msg.Value.Format(time.RFC3339)}).Debug("picker value set")
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	// cursor blink and other input messages
	if m.section == SectionInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.NextSection):
		return m.focusSection((m.section + 1) % sectionCount)
	case key.Matches(msg, m.keys.PrevSection):
		return m.focusSection((m.section + sectionCount - 1) % sectionCount)
	}

	// q types into the input and is ignored by an open picker
	typing := m.section == SectionInput || (m.section == SectionPicker && m.picker.IsOpen())
	if !typing && key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	switch m.section {
	case SectionButtons:
		return m.updateButtons(msg)
	case SectionMenu:
		return m.updateMenu(msg)
	case SectionTabs:
		return m.updateTabs(msg)
	case SectionInput:
		return m.updateInput(msg)
	case SectionPicker:
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.log.Debug("gallery closing")
	return m, tea.Quit
}

func (m Model) focusSection(next Section) (tea.Model, tea.Cmd) {
	switch m.section {
	case SectionInput:
		m.input.Blur()
	case SectionPicker:
		if m.picker.IsOpen() {
			m.picker.Dismiss()
		}
	}

	m.section = next
	m.log.Debugf("focused section %s", next)
	if next == SectionInput {
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) updateButtons(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buttons := groupButtons(m.buttons)
	if len(buttons) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Up):
		m.buttonCursor = max(m.buttonCursor-1, 0)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Down):
		m.buttonCursor = min(m.buttonCursor+1, len(buttons)-1)
	case key.Matches(msg, m.keys.Toggle):
		buttons[m.buttonCursor].Tap()
		for _, label := range m.pending.takePressed() {
			m.status = "Pressed " + label
			m.log.WithFields(map[string]any{"button": label}).Info("button pressed")
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	values := m.menuValues()
	if len(values) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = max(m.menuCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = min(m.menuCursor+1, len(values)-1)
	case key.Matches(msg, m.keys.Toggle):
		var (
			next    selection.State
			changed bool
		)
		menu := menuFrom(m.cfg.Gallery.Menu, m.selected, "", func(state selection.State) {
			next = state
			changed = true
		})
		if err := menu.Press(values[m.menuCursor]); err != nil {
			m.status = err.Error()
			m.log.Error(err, "menu press failed")
			return m, nil
		}
		if changed {
			m.selected = next
			m.status = "Selection " + next.String()
			m.log.WithFields(map[string]any{"selection": next.String()}).Debug("menu selection changed")
		}
	}
	return m, nil
}

func (m Model) updateTabs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.routes) == 0 {
		return m, nil
	}

	bar := components.NewTabBar(m.routes, m.tabIndex, &m)
	var err error
	switch {
	case key.Matches(msg, m.keys.Left):
		err = bar.Press(m.visibleFrom(m.tabIndex, -1))
	case key.Matches(msg, m.keys.Right):
		err = bar.Press(m.visibleFrom(m.tabIndex, 1))
	case key.Matches(msg, m.keys.Toggle):
		err = bar.Press(m.tabIndex)
	case key.Matches(msg, m.keys.LongPress):
		err = bar.LongPress(m.tabIndex)
	}
	if err != nil {
		m.status = err.Error()
		m.log.Error(err, "tab press failed")
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	status, caption := emailStatus(m.input.Value())
	m.input.WithStatus(status).WithCaption(caption)
	return m, cmd
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.picker, _ = m.picker.Update(msg)

	picked := m.pending.takePicked()
	if len(picked) == 0 {
		return m, nil
	}
	value := picked[len(picked)-1]
	return m, func() tea.Msg { return PickedMsg{Value: value} }
}

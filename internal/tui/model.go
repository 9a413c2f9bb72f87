package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/pkg/selection"
)

// Section identifies a focusable part of the gallery.
type Section int

const (
	SectionButtons Section = iota
	SectionMenu
	SectionTabs
	SectionInput
	SectionPicker
	sectionCount
)

func (s Section) String() string {
	switch s {
	case SectionButtons:
		return "Buttons"
	case SectionMenu:
		return "Menu"
	case SectionTabs:
		return "Tabs"
	case SectionInput:
		return "Input"
	case SectionPicker:
		return "Picker"
	default:
		return "Unknown"
	}
}

// PickedMsg carries a value set in the date/time picker back into the model.
type PickedMsg struct {
	Value time.Time
}

// pending collects component callbacks fired while handling a message.
type pending struct {
	pressed []string
	picked  []time.Time
}

func (p *pending) takePressed() []string {
	pressed := p.pressed
	p.pressed = nil
	return pressed
}

func (p *pending) takePicked() []time.Time {
	picked := p.picked
	p.picked = nil
	return picked
}

// Options configures a gallery model.
type Options struct {
	Config *config.Config
	Theme  components.Theme
	Logger *logger.Logger
	Now    time.Time
}

// Model contains the Bubbletea state of the interactive gallery. It owns the state the
// controlled components report through their callbacks.
type Model struct {
	cfg   *config.Config
	theme components.Theme
	log   *logger.Logger
	keys  KeyMap
	help  help.Model

	width   int
	section Section

	buttons      *components.ButtonGroup
	buttonCursor int

	selected   selection.State
	menuCursor int

	routes    []components.Route
	tabIndex  int
	lastEvent string

	input  *components.Input
	picker *components.DateTimePicker

	pending  *pending
	status   string
	quitting bool
}

// NewModel constructs the gallery for the given configuration.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("gallery")
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	p := &pending{}
	picker, err := pickerFrom(cfg.Gallery.Picker, cfg.Gallery.Picker.InitialValue(now), func(t time.Time) {
		p.picked = append(p.picked, t)
	})
	if err != nil {
		return Model{}, err
	}

	routes := routesFrom(cfg.Gallery.Tabs)
	m := Model{
		cfg:   cfg,
		theme: opts.Theme,
		log:   log,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		buttons: buttonGroupFrom(cfg.Gallery, func(label string) {
			p.pressed = append(p.pressed, label)
		}),
		selected: cfg.Gallery.Menu.InitialSelection(),
		routes:   routes,
		tabIndex: firstVisible(routes),
		input: newEmailInput(func(value string) {
			log.Debugf("input changed to %q", value)
		}),
		picker:  picker,
		pending: p,
		status:  "Ready",
	}
	return m, nil
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Section returns the focused section.
func (m Model) Section() Section {
	return m.section
}

// Selected returns the menu selection owned by the gallery.
func (m Model) Selected() selection.State {
	return m.selected
}

// TabIndex returns the focused route index.
func (m Model) TabIndex() int {
	return m.tabIndex
}

// LastEvent returns the last tab event as "type:target".
func (m Model) LastEvent() string {
	return m.lastEvent
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Input returns the input section's component.
func (m Model) Input() *components.Input {
	return m.input
}

// Picker returns the picker section's component.
func (m Model) Picker() *components.DateTimePicker {
	return m.picker
}

// IsQuitting reports whether the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Emit records tab events; the gallery never prevents navigation.
func (m *Model) Emit(event *components.TabEvent) {
	m.lastEvent = event.Type + ":" + event.Target
	m.log.WithFields(map[string]any{"event": event.Type, "target": event.Target}).Debug("tab event")
}

// Navigate focuses the route with name.
func (m *Model) Navigate(name string) {
	for i, route := range m.routes {
		if route.Name == name {
			m.tabIndex = i
			m.status = "Navigated to " + route.DisplayLabel()
			m.log.WithFields(map[string]any{"route": name}).Debug("navigated")
			return
		}
	}
}

func (m Model) menuValues() []string {
	values := make([]string, len(m.cfg.Gallery.Menu.Items))
	for i, item := range m.cfg.Gallery.Menu.Items {
		values[i] = item.Value
	}
	return values
}

// visibleFrom returns the next visible route index stepping by delta, or from when
// no other route is visible.
func (m Model) visibleFrom(from, delta int) int {
	n := len(m.routes)
	for step := 1; step < n; step++ {
		idx := ((from+delta*step)%n + n) % n
		if !m.routes[idx].Hidden {
			return idx
		}
	}
	return from
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 48
	}
	return min(m.width, 72)
}

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerMode selects which parts of a timestamp are edited.
type PickerMode int

const (
	PickerModeDate PickerMode = iota
	PickerModeTime
	PickerModeDateTime
)

func (m PickerMode) String() string {
	switch m {
	case PickerModeTime:
		return "time"
	case PickerModeDateTime:
		return "datetime"
	default:
		return "date"
	}
}

// ParsePickerMode maps "date", "time" or "datetime" to a mode.
func ParsePickerMode(value string) (PickerMode, error) {
	switch strings.ToLower(value) {
	case "", "date":
		return PickerModeDate, nil
	case "time":
		return PickerModeTime, nil
	case "datetime":
		return PickerModeDateTime, nil
	default:
		return PickerModeDate, fmt.Errorf("unknown picker mode %q", value)
	}
}

// PickerFlow selects how the editing panel is presented.
type PickerFlow int

const (
	// FlowSequential edits the date and then the time in separate steps, each closing on set.
	FlowSequential PickerFlow = iota
	// FlowModal shows every field at once and stays open until dismissed.
	FlowModal
)

func (f PickerFlow) String() string {
	if f == FlowModal {
		return "modal"
	}
	return "sequential"
}

// ParsePickerFlow maps "sequential" or "modal" to a flow.
func ParsePickerFlow(value string) (PickerFlow, error) {
	switch strings.ToLower(value) {
	case "", "sequential":
		return FlowSequential, nil
	case "modal":
		return FlowModal, nil
	default:
		return FlowSequential, fmt.Errorf("unknown picker flow %q", value)
	}
}

// PickerStage is the part of the value currently being edited.
type PickerStage int

const (
	StageNone PickerStage = iota
	StageDate
	StageTime
	StageDateTime
)

func (s PickerStage) String() string {
	switch s {
	case StageDate:
		return "date"
	case StageTime:
		return "time"
	case StageDateTime:
		return "datetime"
	default:
		return "none"
	}
}

const (
	dateLayout     = "Jan 2, 2006"
	timeLayout     = "3:04 PM"
	dateTimeLayout = "Jan 2, 2006, 3:04 PM"
)

// FormatValue renders t for display in mode.
func FormatValue(t time.Time, mode PickerMode) string {
	switch mode {
	case PickerModeTime:
		return t.Format(timeLayout)
	case PickerModeDateTime:
		return t.Format(dateTimeLayout)
	default:
		return t.Format(dateLayout)
	}
}

type pickerField int

const (
	fieldMonth pickerField = iota
	fieldDay
	fieldYear
	fieldHour
	fieldMinute
)

func (f pickerField) label() string {
	switch f {
	case fieldMonth:
		return "month"
	case fieldDay:
		return "day"
	case fieldYear:
		return "year"
	case fieldHour:
		return "hour"
	default:
		return "minute"
	}
}

func (f pickerField) format(t time.Time) string {
	switch f {
	case fieldMonth:
		return t.Format("Jan")
	case fieldDay:
		return t.Format("02")
	case fieldYear:
		return t.Format("2006")
	case fieldHour:
		return t.Format("15")
	default:
		return t.Format("04")
	}
}

func fieldsFor(stage PickerStage) []pickerField {
	switch stage {
	case StageDate:
		return []pickerField{fieldMonth, fieldDay, fieldYear}
	case StageTime:
		return []pickerField{fieldHour, fieldMinute}
	case StageDateTime:
		return []pickerField{fieldMonth, fieldDay, fieldYear, fieldHour, fieldMinute}
	default:
		return nil
	}
}

// adjustField moves one field of t by delta, clamping the day to the target month.
func adjustField(t time.Time, field pickerField, delta int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	switch field {
	case fieldMonth:
		month = time.Month((int(month)-1+delta%12+12)%12 + 1)
	case fieldYear:
		year += delta
	case fieldDay:
		return t.AddDate(0, 0, delta)
	case fieldHour:
		hour = (hour + delta%24 + 24) % 24
	case fieldMinute:
		minute = (minute + delta%60 + 60) % 60
	}

	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PickerKeyMap defines the keys of an open picker panel.
type PickerKeyMap struct {
	Increment key.Binding
	Decrement key.Binding
	Next      key.Binding
	Prev      key.Binding
	Set       key.Binding
	Dismiss   key.Binding
	Open      key.Binding
}

// DefaultPickerKeyMap returns the default picker bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Increment: key.NewBinding(key.WithKeys("up", "k", "+"), key.WithHelp("↑/k", "increase")),
		Decrement: key.NewBinding(key.WithKeys("down", "j", "-"), key.WithHelp("↓/j", "decrease")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next field")),
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous field")),
		Set:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "set")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Open:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open picker")),
	}
}

// PickerOptions defines the configuration options for a date/time picker.
type PickerOptions struct {
	Mode        PickerMode
	Flow        PickerFlow
	Caption     string
	HideCaption bool
	OnChange    func(time.Time)
}

// DateTimePicker shows a formatted value in an input and edits it in a panel of
// adjustable fields. The value is controlled: OnChange reports picks and callers feed
// the value back with SetValue.
type DateTimePicker struct {
	options PickerOptions
	keys    PickerKeyMap
	value   time.Time
	draft   time.Time
	stage   PickerStage
	field   int
}

// NewDateTimePicker creates a closed picker showing value.
func NewDateTimePicker(value time.Time, opts PickerOptions) *DateTimePicker {
	return &DateTimePicker{
		options: opts,
		keys:    DefaultPickerKeyMap(),
		value:   value,
		draft:   value,
	}
}

// Value returns the displayed value.
func (p *DateTimePicker) Value() time.Time {
	return p.value
}

// SetValue replaces the displayed value.
func (p *DateTimePicker) SetValue(value time.Time) {
	p.value = value
	if p.stage == StageNone {
		p.draft = value
	}
}

// Mode returns the picker mode.
func (p *DateTimePicker) Mode() PickerMode {
	return p.options.Mode
}

// Flow returns the picker flow.
func (p *DateTimePicker) Flow() PickerFlow {
	return p.options.Flow
}

// Stage returns the part being edited, or StageNone when closed.
func (p *DateTimePicker) Stage() PickerStage {
	return p.stage
}

// IsOpen reports whether the panel is shown.
func (p *DateTimePicker) IsOpen() bool {
	return p.stage != StageNone
}

// Draft returns the value being edited.
func (p *DateTimePicker) Draft() time.Time {
	return p.draft
}

// Text returns the formatted value.
func (p *DateTimePicker) Text() string {
	return FormatValue(p.value, p.options.Mode)
}

// Open shows the panel.
func (p *DateTimePicker) Open() {
	if p.IsOpen() {
		return
	}
	p.draft = p.value
	p.field = 0
	switch {
	case p.options.Mode == PickerModeTime:
		p.stage = StageTime
	case p.options.Flow == FlowModal && p.options.Mode == PickerModeDateTime:
		p.stage = StageDateTime
	default:
		p.stage = StageDate
	}
}

// Dismiss closes the panel without reporting a value.
func (p *DateTimePicker) Dismiss() {
	p.stage = StageNone
	p.field = 0
}

// Set reports t through OnChange and advances the flow. In the sequential flow a set
// date moves on to the time when the mode is datetime and closes otherwise; the modal
// stays open.
func (p *DateTimePicker) Set(t time.Time) {
	if !p.IsOpen() {
		return
	}
	p.draft = t
	if p.options.OnChange != nil {
		p.options.OnChange(t)
	}
	if p.options.Flow == FlowModal {
		return
	}
	if p.stage == StageDate && p.options.Mode == PickerModeDateTime {
		p.stage = StageTime
		p.field = 0
		return
	}
	p.Dismiss()
}

// Adjust moves the focused field by delta.
func (p *DateTimePicker) Adjust(delta int) {
	fields := fieldsFor(p.stage)
	if len(fields) == 0 {
		return
	}
	p.draft = adjustField(p.draft, fields[p.field], delta)
}

// MoveField moves field focus by delta, wrapping around.
func (p *DateTimePicker) MoveField(delta int) {
	fields := fieldsFor(p.stage)
	if len(fields) == 0 {
		return
	}
	p.field = (p.field + delta%len(fields) + len(fields)) % len(fields)
}

// Update handles key presses: the open key opens a closed picker and the panel keys
// drive an open one.
func (p *DateTimePicker) Update(msg tea.Msg) (*DateTimePicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if !p.IsOpen() {
		if key.Matches(keyMsg, p.keys.Open) {
			p.Open()
		}
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Increment):
		p.Adjust(1)
	case key.Matches(keyMsg, p.keys.Decrement):
		p.Adjust(-1)
	case key.Matches(keyMsg, p.keys.Next):
		p.MoveField(1)
	case key.Matches(keyMsg, p.keys.Prev):
		p.MoveField(-1)
	case key.Matches(keyMsg, p.keys.Set):
		p.Set(p.draft)
	case key.Matches(keyMsg, p.keys.Dismiss):
		p.Dismiss()
	}
	return p, nil
}

// View renders the picker with the default theme.
func (p *DateTimePicker) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the input and, when open, the field panel.
func (p *DateTimePicker) ViewWithContext(ctx RenderContext) string {
	input := NewInput(InputOptions{
		Value:       p.Text(),
		Caption:     p.options.Caption,
		HideCaption: p.options.HideCaption,
	})
	if p.IsOpen() {
		input.Focus()
	}

	view := input.ViewWithContext(ctx)
	if !p.IsOpen() {
		return view
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, p.panel(ctx))
}

func (p *DateTimePicker) panel(ctx RenderContext) string {
	theme := ctx.Theme
	fields := fieldsFor(p.stage)

	cells := make([]string, 0, len(fields))
	for i, field := range fields {
		style := lipgloss.NewStyle().
			Padding(0, 1).
			Border(theme.Borders.Rounded).
			BorderForeground(theme.Palette.BasicBorder).
			Foreground(theme.Palette.Text).
			Align(lipgloss.Center)
		if i == p.field {
			style = style.
				BorderForeground(theme.Palette.Primary).
				Foreground(theme.Palette.Primary).
				Bold(true)
		}
		caption := lipgloss.NewStyle().Foreground(theme.Palette.SubText).Render(field.label())
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Center, style.Render(field.format(p.draft)), caption))
	}

	title := lipgloss.NewStyle().Inherit(theme.TypographyStyle(TypographyVariantLabel)).
		Render("Select " + p.stage.String())
	body := lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	return Style(theme, lipgloss.NewStyle(), PaddingX(SpacingSizeSmall)).
		Background(theme.Palette.CardBackground).
		Border(theme.Borders.Rounded).
		BorderForeground(theme.Palette.InputBorder).
		Render(body)
}

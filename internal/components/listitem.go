package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/swatch/pkg/children"
)

// ListItem is a pressable row on the card background.
type ListItem struct {
	text     string
	children []Renderable
	onPress  func()
	pressed  bool
}

// NewListItem creates a row showing text, wrapped to the available width.
func NewListItem(text string, onPress func()) *ListItem {
	return &ListItem{text: text, onPress: onPress}
}

// WithChildren appends rows rendered below the text.
func (li *ListItem) WithChildren(items ...Renderable) *ListItem {
	li.children = append(li.children, items...)
	return li
}

// Text returns the row text.
func (li *ListItem) Text() string {
	return li.text
}

// IsPressed reports whether the row is held down.
func (li *ListItem) IsPressed() bool {
	return li.pressed
}

// Press marks the row as held down.
func (li *ListItem) Press() {
	li.pressed = true
}

// Release ends a press and fires the callback.
func (li *ListItem) Release() {
	if !li.pressed {
		return
	}
	li.pressed = false
	if li.onPress != nil {
		li.onPress()
	}
}

// Tap presses and releases the row.
func (li *ListItem) Tap() {
	li.Press()
	li.Release()
}

// View renders the row with the default theme.
func (li *ListItem) View() string {
	return li.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row.
func (li *ListItem) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	background := theme.Palette.CardBackground
	if li.pressed {
		background = theme.Scales.Basic.Shade(1)
	}

	style := Style(theme, lipgloss.NewStyle(),
		PaddingX(SpacingSizeMedium),
		PaddingY(SpacingSizeSmall),
		Typography(TypographyVariantParagraph),
	).Background(background)

	inner := 0
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
		inner = ctx.Width - 2*theme.PaddingValue(SpacingSizeMedium)
	}

	var content []string
	if li.text != "" {
		content = append(content, wrapText(li.text, inner))
	}
	nested := ctx.WithWidth(max(inner, 0))
	for _, child := range FlattenChildren(li.children, children.Options{}) {
		if view := Render(child, nested); view != "" {
			content = append(content, view)
		}
	}

	return style.Render(strings.Join(content, "\n"))
}

// wrapText wraps text to maxWidth cells, breaking words longer than a line.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		if runewidth.StringWidth(word) > maxWidth {
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			for runewidth.StringWidth(word) > maxWidth {
				head := runewidth.Truncate(word, maxWidth, "")
				if head == "" {
					// a single rune wider than the line
					head = string([]rune(word)[:1])
				}
				lines = append(lines, head)
				word = word[len(head):]
			}
			currentLine = word
			continue
		}

		testLine := currentLine
		if currentLine != "" {
			testLine += " "
		}
		testLine += word

		if runewidth.StringWidth(testLine) <= maxWidth {
			currentLine = testLine
		} else {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n")
}

package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTextTypes(t *testing.T) {
	ctx := lightContext()

	paragraph := NewText("hello").ViewWithContext(ctx)
	heading := Heading("hello", TextH1).ViewWithContext(ctx)
	assert.NotEqual(t, paragraph, heading)
	assert.Equal(t, []string{"hello"}, plainLines(heading))

	assert.Equal(t, TypographyVariantH4, TextH4.typography())
	assert.Equal(t, TypographyVariantParagraph, TextP.typography())
}

func TestTextWidth(t *testing.T) {
	view := NewText("a long sentence that does not fit").ViewWithContext(lightContext().WithWidth(10))
	for _, line := range plainLines(view) {
		assert.LessOrEqual(t, lipgloss.Width(line), 10)
	}
}

func TestTextAppliers(t *testing.T) {
	ctx := lightContext()
	plain := NewText("x").ViewWithContext(ctx)
	coloured := NewText("x").WithAppliers(Foreground(PaletteDanger)).ViewWithContext(ctx)
	assert.NotEqual(t, plain, coloured)
	assert.Equal(t, "x", NewText("x").Content())
}

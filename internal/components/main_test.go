package components

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	// colours are dropped for non-terminal output; force them so state changes are visible
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

// plainLines strips styling and splits a rendered view into lines.
func plainLines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}

func lightContext() RenderContext {
	return RenderContext{Theme: LightTheme()}
}

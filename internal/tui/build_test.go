package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/config"
)

func TestRenderStaticAll(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderStatic(&buf, StaticOptions{Theme: components.LightTheme(), Width: 40, Now: testNow})
	require.NoError(t, err)

	out := ansi.Strip(buf.String())
	for _, name := range ComponentNames {
		require.Contains(t, out, name)
	}
	require.Contains(t, out, "Swatch")
	require.Contains(t, out, "Primary")
	require.Contains(t, out, "Copy")
	require.Contains(t, out, "Cellular data")
	require.Contains(t, out, "May 4, 2025, 10:00 AM")
}

func TestRenderStaticSubset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderStatic(&buf, StaticOptions{Theme: components.DarkTheme(), Now: testNow}, "tabbar", "GROUP")
	require.NoError(t, err)

	out := ansi.Strip(buf.String())
	require.Less(t, strings.Index(out, "tabbar"), strings.Index(out, "GROUP"))
	require.Contains(t, out, "Home")
	require.Contains(t, out, "Cut")
	require.NotContains(t, out, "Wi-Fi")
}

func TestRenderStaticUnknownComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderStatic(&buf, StaticOptions{Theme: components.LightTheme()}, "slider")
	require.ErrorContains(t, err, `unknown component "slider"`)
}

func TestRoutesFrom(t *testing.T) {
	t.Parallel()

	routes := routesFrom([]config.TabConfig{
		{Name: "home", Title: "Home", Hidden: true},
		{Name: "inbox", Label: "Mail", Icon: "✉"},
	})
	require.Len(t, routes, 2)
	require.Equal(t, "home-0", routes[0].Key)
	require.Equal(t, "Mail", routes[1].DisplayLabel())
	require.Equal(t, 1, firstVisible(routes))
	require.Zero(t, firstVisible(nil))
}

func TestButtonGroupFromDirection(t *testing.T) {
	t.Parallel()

	var pressed []string
	g := config.Default().Gallery
	g.Direction = "horizontal"

	group := buttonGroupFrom(g, func(label string) { pressed = append(pressed, label) })
	require.Equal(t, components.DirectionHorizontal, group.Direction())

	buttons := groupButtons(group)
	require.Len(t, buttons, 3)
	buttons[2].Tap()
	require.Equal(t, []string{"Paste"}, pressed)
}

func TestEmailStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  components.InputStatus
	}{
		{"", components.InputStatusNone},
		{"someone", components.InputStatusError},
		{"@example.com", components.InputStatusError},
		{"someone@localhost", components.InputStatusError},
		{"someone@example.com", components.InputStatusSuccess},
	}

	for _, tc := range cases {
		status, caption := emailStatus(tc.value)
		require.Equal(t, tc.want, status, tc.value)
		require.NotEmpty(t, caption)
	}
}

package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	events     []TabEvent
	navigated  []string
	preventFor string
}

func (n *recordingNavigator) Emit(event *TabEvent) {
	if event.Target == n.preventFor {
		event.PreventDefault()
	}
	n.events = append(n.events, *event)
}

func (n *recordingNavigator) Navigate(name string) {
	n.navigated = append(n.navigated, name)
}

func sampleRoutes() []Route {
	return []Route{
		{Key: "home-1", Name: "home", Title: "Home", Icon: "⌂"},
		{Key: "search-1", Name: "search", Label: "Find"},
		{Key: "profile-1", Name: "profile"},
	}
}

func TestRouteDisplayLabel(t *testing.T) {
	routes := sampleRoutes()
	assert.Equal(t, "Home", routes[0].DisplayLabel())
	assert.Equal(t, "Find", routes[1].DisplayLabel())
	assert.Equal(t, "profile", routes[2].DisplayLabel())
}

func TestTabPressNavigates(t *testing.T) {
	nav := &recordingNavigator{}
	bar := NewTabBar(sampleRoutes(), 0, nav)

	require.NoError(t, bar.Press(1))
	require.Len(t, nav.events, 1)
	assert.Equal(t, EventTabPress, nav.events[0].Type)
	assert.Equal(t, "search-1", nav.events[0].Target)
	assert.True(t, nav.events[0].CanPreventDefault)
	assert.Equal(t, []string{"search"}, nav.navigated)
}

func TestTabPressOnFocusedRouteDoesNotNavigate(t *testing.T) {
	nav := &recordingNavigator{}
	bar := NewTabBar(sampleRoutes(), 2, nav)

	require.NoError(t, bar.Press(2))
	assert.Len(t, nav.events, 1, "the press is still emitted")
	assert.Empty(t, nav.navigated)
}

func TestTabPressPrevented(t *testing.T) {
	nav := &recordingNavigator{preventFor: "profile-1"}
	bar := NewTabBar(sampleRoutes(), 0, nav)

	require.NoError(t, bar.Press(2))
	assert.True(t, nav.events[0].DefaultPrevented())
	assert.Empty(t, nav.navigated)
}

func TestTabLongPress(t *testing.T) {
	nav := &recordingNavigator{preventFor: "home-1"}
	bar := NewTabBar(sampleRoutes(), 1, nav)

	require.NoError(t, bar.LongPress(0))
	require.Len(t, nav.events, 1)
	assert.Equal(t, EventTabLongPress, nav.events[0].Type)
	assert.False(t, nav.events[0].DefaultPrevented(), "long presses cannot be prevented")
	assert.Empty(t, nav.navigated)
}

func TestTabPressOutOfRange(t *testing.T) {
	bar := NewTabBar(sampleRoutes(), 0, nil)
	assert.Error(t, bar.Press(3))
	assert.Error(t, bar.LongPress(-1))
	assert.NoError(t, bar.Press(1), "a missing navigator is tolerated")
}

func TestTabBarHiddenRoute(t *testing.T) {
	routes := sampleRoutes()
	routes[1].Hidden = true
	bar := NewTabBar(routes, 0, nil)

	assert.True(t, bar.Visible())
	assert.NotEmpty(t, bar.ViewWithContext(lightContext()))

	bar.WithIndex(1)
	assert.False(t, bar.Visible())
	assert.Equal(t, "", bar.ViewWithContext(lightContext()))
}

func TestTabBarViewShowsFocusedLabel(t *testing.T) {
	bar := NewTabBar(sampleRoutes(), 1, nil)
	plain := strings.Join(plainLines(bar.ViewWithContext(lightContext().WithWidth(30))), "\n")

	assert.Contains(t, plain, "Find")
	assert.Contains(t, plain, "⌂")
	assert.NotContains(t, plain, "Home", "unfocused tabs show only their icon")
	assert.Contains(t, plain, "p", "routes without an icon use their first letter")
}

func TestTabBarTruncatesLabels(t *testing.T) {
	routes := []Route{{Key: "k", Name: "notifications-and-settings"}}
	bar := NewTabBar(routes, 0, nil).WithMaxLabelWidth(8)

	plain := strings.Join(plainLines(bar.View()), "\n")
	assert.Contains(t, plain, "notific…")
	assert.NotContains(t, plain, "notifications")
}

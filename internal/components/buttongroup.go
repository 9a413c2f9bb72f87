package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/pkg/children"
)

// Direction specifies how a group lays out its members.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

func (d Direction) String() string {
	if d == DirectionHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// GroupSlot describes where a member sits inside a group.
type GroupSlot struct {
	Direction Direction
	Position  children.Position
	// Width is the shared inner width for vertical groups; zero keeps the natural width.
	Width int
}

func soleSlot() GroupSlot {
	return GroupSlot{Position: children.Position{Index: 0, Total: 1}}
}

// Decoration returns the edge treatment for the slot.
func (s GroupSlot) Decoration() Decoration {
	return GroupDecoration(s.Direction, s.Position)
}

// Decoration is the border treatment of one group member: which edges are drawn and
// which corners become junctions shared with a neighbour.
type Decoration struct {
	Border lipgloss.Border
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

// GroupDecoration picks the decoration for a member from its placement. Members after
// the first drop the edge they share with their predecessor, and members before the
// last turn the corners on that shared edge into junctions.
func GroupDecoration(direction Direction, pos children.Position) Decoration {
	border := lipgloss.RoundedBorder()
	dec := Decoration{Top: true, Right: true, Bottom: true, Left: true}

	placement := pos.Placement()
	if placement == children.PlacementSole {
		dec.Border = border
		return dec
	}

	hasNext := placement == children.PlacementFirst || placement == children.PlacementInterior
	hasPrev := placement == children.PlacementInterior || placement == children.PlacementLast

	if direction == DirectionHorizontal {
		if hasNext {
			border.TopRight = "┬"
			border.BottomRight = "┴"
		}
		dec.Left = !hasPrev
	} else {
		if hasNext {
			border.BottomLeft = "├"
			border.BottomRight = "┤"
		}
		dec.Top = !hasPrev
	}

	dec.Border = border
	return dec
}

func (d Decoration) apply(style lipgloss.Style) lipgloss.Style {
	return style.Border(d.Border, d.Top, d.Right, d.Bottom, d.Left)
}

// groupMember is implemented by components that render edge-aware inside a group.
type groupMember interface {
	Renderable
	contentWidth(ctx RenderContext) int
	viewInGroup(ctx RenderContext, slot GroupSlot) string
}

// ButtonGroup renders its children as one joined block of buttons.
type ButtonGroup struct {
	direction Direction
	children  []Renderable
}

// NewButtonGroup creates a vertical button group.
func NewButtonGroup(items ...Renderable) *ButtonGroup {
	return &ButtonGroup{
		direction: DirectionVertical,
		children:  items,
	}
}

// WithDirection sets the layout direction.
func (bg *ButtonGroup) WithDirection(direction Direction) *ButtonGroup {
	bg.direction = direction
	return bg
}

// Add appends children to the group.
func (bg *ButtonGroup) Add(items ...Renderable) *ButtonGroup {
	bg.children = append(bg.children, items...)
	return bg
}

// Direction returns the layout direction.
func (bg *ButtonGroup) Direction() Direction {
	return bg.direction
}

// Items returns the flattened children with their positions.
func (bg *ButtonGroup) Items() []children.Positioned[Renderable] {
	return children.Annotate(FlattenChildren(bg.children, children.Options{}))
}

// View renders the group with the default theme.
func (bg *ButtonGroup) View() string {
	return bg.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the group.
func (bg *ButtonGroup) ViewWithContext(ctx RenderContext) string {
	return renderGroup(ctx, bg.direction, bg.Items())
}

func renderGroup(ctx RenderContext, direction Direction, items []children.Positioned[Renderable]) string {
	if len(items) == 0 {
		return ""
	}

	width := 0
	if direction == DirectionVertical {
		for _, item := range items {
			if member, ok := item.Item.(groupMember); ok {
				width = max(width, member.contentWidth(ctx))
			}
		}
		if ctx.Width > 0 {
			// two cells for the side edges
			width = min(width, max(ctx.Width-2, 1))
		}
	}

	views := make([]string, 0, len(items))
	for _, item := range items {
		member, ok := item.Item.(groupMember)
		if !ok {
			views = append(views, Render(item.Item, ctx))
			continue
		}
		slot := GroupSlot{Direction: direction, Position: item.Position, Width: width}
		views = append(views, member.viewInGroup(ctx, slot))
	}

	if direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

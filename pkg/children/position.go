package children

// Position locates an item within an annotated list.
type Position struct {
	Index int
	Total int
}

// Placement is the edge class of an item within its group.
type Placement int

const (
	PlacementSole Placement = iota
	PlacementFirst
	PlacementInterior
	PlacementLast
)

func (p Placement) String() string {
	switch p {
	case PlacementSole:
		return "sole"
	case PlacementFirst:
		return "first"
	case PlacementInterior:
		return "interior"
	case PlacementLast:
		return "last"
	default:
		return "unknown"
	}
}

// IsSole reports whether the item is the only one in its list.
func (p Position) IsSole() bool {
	return p.Total == 1
}

// IsFirst reports whether the item opens a list of several items.
func (p Position) IsFirst() bool {
	return p.Total > 1 && p.Index == 0
}

// IsLast reports whether the item closes a list of several items.
func (p Position) IsLast() bool {
	return p.Total > 1 && p.Index == p.Total-1
}

// Placement returns the edge class used for decoration.
func (p Position) Placement() Placement {
	switch {
	case p.IsSole():
		return PlacementSole
	case p.IsFirst():
		return PlacementFirst
	case p.IsLast():
		return PlacementLast
	default:
		return PlacementInterior
	}
}

// Positioned pairs an item with its position.
type Positioned[T any] struct {
	Item T
	Position
}

// Annotate attaches index and total to every item of seq, in order.
func Annotate[T any](seq []T) []Positioned[T] {
	total := len(seq)
	annotated := make([]Positioned[T], total)
	for i, item := range seq {
		annotated[i] = Positioned[T]{
			Item:     item,
			Position: Position{Index: i, Total: total},
		}
	}
	return annotated
}

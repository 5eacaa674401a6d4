package entity

import "fmt"

type PositionKind string

const (
	KindStart  PositionKind = "start"
	KindSquare PositionKind = "square"
	KindSafe   PositionKind = "safe"
	KindHome   PositionKind = "home"
)

// Position references a single cell. Index is the absolute main-track square (0..59) for
// KindSquare and the safe-zone cell (1..5) of the owning pawn's color for KindSafe.
type Position struct {
	Kind  PositionKind `json:"kind"`
	Index int          `json:"index,omitempty"`
}

func StartPosition() Position {
	return Position{Kind: KindStart}
}

func HomePosition() Position {
	return Position{Kind: KindHome}
}

func SquarePosition(square int) Position {
	return Position{Kind: KindSquare, Index: square}
}

func SafePosition(cell int) Position {
	return Position{Kind: KindSafe, Index: cell}
}

func (that Position) IsStart() bool {
	return that.Kind == KindStart
}

func (that Position) IsHome() bool {
	return that.Kind == KindHome
}

func (that Position) IsSquare() bool {
	return that.Kind == KindSquare
}

func (that Position) IsSafe() bool {
	return that.Kind == KindSafe
}

func (that Position) String() string {
	switch that.Kind {
	case KindSquare:
		return fmt.Sprintf("square %d", that.Index)
	case KindSafe:
		return fmt.Sprintf("safe %d", that.Index)
	default:
		return string(that.Kind)
	}
}

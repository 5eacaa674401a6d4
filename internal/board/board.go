// Package board describes the static topology of the board: the shared main track, each
// color's start exit, turn square, safe zone and slides. Everything here is pure.
package board

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/apologies/internal/entity"
)

const (
	// Squares is the length of the shared main track.
	Squares = 60
	// SafeSquares is the length of each color's safe zone.
	SafeSquares = 5
	// StartDistance is the distance to home of a pawn still in start.
	StartDistance = 65
)

var (
	ErrUnknownColor   = errors.New("unknown color")
	ErrNotOnBoard     = errors.New("pawn is not on the board")
	ErrOvershootsHome = errors.New("pawn cannot move past home")
)

// Slide is a run of main-track squares. A pawn landing on Trigger continues to End.
type Slide struct {
	Trigger int `json:"trigger"`
	End     int `json:"end"`
}

// Covers returns the squares whose occupants get bumped by the slide, in travel order.
func (that Slide) Covers() []int {
	squares := make([]int, 0, that.End-that.Trigger)
	for square := that.Trigger + 1; square <= that.End; square++ {
		squares = append(squares, square)
	}

	return squares
}

type layout struct {
	exit   int
	turn   int
	slides []Slide
}

var layouts = map[entity.Color]layout{
	entity.Red:    {exit: 4, turn: 2, slides: []Slide{{Trigger: 1, End: 4}, {Trigger: 9, End: 13}}},
	entity.Blue:   {exit: 19, turn: 17, slides: []Slide{{Trigger: 16, End: 19}, {Trigger: 24, End: 28}}},
	entity.Yellow: {exit: 34, turn: 32, slides: []Slide{{Trigger: 31, End: 34}, {Trigger: 39, End: 43}}},
	entity.Green:  {exit: 49, turn: 47, slides: []Slide{{Trigger: 46, End: 49}, {Trigger: 54, End: 58}}},
}

func layoutFor(color entity.Color) (layout, error) {
	l, ok := layouts[color]
	if !ok {
		return layout{}, fmt.Errorf("%w: %q", ErrUnknownColor, color)
	}

	return l, nil
}

// ExitSquare is the main-track square a pawn of color enters when it leaves start.
func ExitSquare(color entity.Color) int {
	return layouts[color].exit
}

// TurnSquare is the last main-track square a pawn of color visits before its safe zone.
func TurnSquare(color entity.Color) int {
	return layouts[color].turn
}

// Slides returns the slides painted in color. Pawns of that color do not use them.
func Slides(color entity.Color) []Slide {
	return append([]Slide(nil), layouts[color].slides...)
}

// SlideAt reports the slide a pawn of color takes when it lands on square.
func SlideAt(color entity.Color, square int) (Slide, bool) {
	for _, owner := range entity.Colors {
		if owner == color {
			continue
		}

		for _, slide := range layouts[owner].slides {
			if slide.Trigger == square {
				return slide, true
			}
		}
	}

	return Slide{}, false
}

// IsSafe reports whether pos is a safe-zone cell. Safe cells belong to the pawn's own color,
// so only that color can ever stand on them.
func IsSafe(pos entity.Position) bool {
	return pos.IsSafe()
}

// IsShared reports whether pos is a main-track square any color may occupy.
func IsShared(pos entity.Position) bool {
	return pos.IsSquare()
}

// Position returns where a pawn of color standing on from ends up after moving n squares
// along its path, backward when n is negative. Pawns in start or home cannot move by count,
// and forward moves must reach home exactly.
func Position(color entity.Color, from entity.Position, n int) (entity.Position, error) {
	l, err := layoutFor(color)
	if err != nil {
		return entity.Position{}, err
	}

	switch from.Kind {
	case entity.KindSafe:
		target := from.Index + n
		switch {
		case target >= 1 && target <= SafeSquares:
			return entity.SafePosition(target), nil
		case target == SafeSquares+1:
			return entity.HomePosition(), nil
		case target > SafeSquares+1:
			return entity.Position{}, ErrOvershootsHome
		default:
			// backing out of the safe zone onto the turn square and beyond
			return Position(color, entity.SquarePosition(l.turn), target)
		}
	case entity.KindSquare:
		if n <= 0 {
			return entity.SquarePosition(wrap(from.Index + n)), nil
		}

		toTurn := wrap(l.turn - from.Index)
		if n <= toTurn {
			return entity.SquarePosition(wrap(from.Index + n)), nil
		}

		return Position(color, entity.SafePosition(0), n-toTurn)
	default:
		return entity.Position{}, fmt.Errorf("%w: %s", ErrNotOnBoard, from)
	}
}

// Path returns every position a pawn of color visits moving n squares from from, ending with
// the destination.
func Path(color entity.Color, from entity.Position, n int) ([]entity.Position, error) {
	if _, err := Position(color, from, n); err != nil {
		return nil, err
	}

	step := 1
	if n < 0 {
		step, n = -1, -n
	}

	path := make([]entity.Position, 0, n)
	current := from
	for range n {
		next, err := Position(color, current, step)
		if err != nil {
			return nil, err
		}

		path = append(path, next)
		current = next
	}

	return path, nil
}

// DistanceToHome is the number of forward squares between pos and home for a pawn of color.
func DistanceToHome(color entity.Color, pos entity.Position) int {
	switch pos.Kind {
	case entity.KindHome:
		return 0
	case entity.KindSafe:
		return SafeSquares + 1 - pos.Index
	case entity.KindSquare:
		return wrap(TurnSquare(color)-pos.Index) + SafeSquares + 1
	default:
		return StartDistance
	}
}

func wrap(square int) int {
	return ((square % Squares) + Squares) % Squares
}

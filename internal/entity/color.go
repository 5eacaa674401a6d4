package entity

import (
	"fmt"

	"github.com/rocketscienceinc/apologies/internal/apperror"
)

type Color string

const (
	Red    Color = "red"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// Colors lists every color in turn rotation order.
var Colors = []Color{Red, Yellow, Green, Blue}

func (that Color) Valid() bool {
	switch that {
	case Red, Yellow, Green, Blue:
		return true
	default:
		return false
	}
}

// ColorsFor returns the colors used by a game with the given number of players.
func ColorsFor(players int) ([]Color, error) {
	if players < MinPlayers || players > MaxPlayers {
		return nil, fmt.Errorf("%w: must be between %d and %d, got %d", apperror.ErrInvalidPlayers, MinPlayers, MaxPlayers, players)
	}

	return append([]Color(nil), Colors[:players]...), nil
}

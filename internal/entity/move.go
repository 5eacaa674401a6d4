package entity

import (
	"fmt"
	"strings"
)

type ActionType string

const (
	// ActionMove relocates one of the mover's pawns.
	ActionMove ActionType = "move"
	// ActionBump returns a pawn to its own start.
	ActionBump ActionType = "bump"
	// ActionSwap relocates an opponent pawn onto the mover's vacated square.
	ActionSwap ActionType = "swap"
)

type Action struct {
	Type  ActionType `json:"type"`
	Pawn  PawnID     `json:"pawn"`
	From  Position   `json:"from"`
	To    Position   `json:"to"`
	Slide bool       `json:"slide,omitempty"`
}

func (that Action) String() string {
	var slide string
	if that.Slide {
		slide = " (slide)"
	}

	return fmt.Sprintf("%s %s#%d %s->%s%s", that.Type, that.Pawn.Color, that.Pawn.Index, that.From, that.To, slide)
}

// Move is a fully specified candidate play of Card by Color. A move without actions is a
// forfeit: the card is discarded and nothing moves.
type Move struct {
	Color   Color    `json:"color"`
	Card    Card     `json:"card"`
	Actions []Action `json:"actions"`
}

func (that Move) IsForfeit() bool {
	return len(that.Actions) == 0
}

// Bumps returns the pawns this move sends back to start.
func (that Move) Bumps() []PawnID {
	var bumped []PawnID
	for _, action := range that.Actions {
		if action.Type == ActionBump {
			bumped = append(bumped, action.Pawn)
		}
	}

	return bumped
}

func (that Move) Equal(other Move) bool {
	if that.Color != other.Color || that.Card != other.Card || len(that.Actions) != len(other.Actions) {
		return false
	}

	for i := range that.Actions {
		if that.Actions[i] != other.Actions[i] {
			return false
		}
	}

	return true
}

func (that Move) String() string {
	if that.IsForfeit() {
		return fmt.Sprintf("%s forfeits card %s", that.Color, that.Card)
	}

	parts := make([]string, 0, len(that.Actions))
	for _, action := range that.Actions {
		parts = append(parts, action.String())
	}

	return fmt.Sprintf("%s plays card %s: %s", that.Color, that.Card, strings.Join(parts, ", "))
}

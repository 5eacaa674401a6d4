package entity

import "slices"

const PawnsPerPlayer = 4

// PawnID identifies a pawn across the whole game.
type PawnID struct {
	Color Color `json:"color"`
	Index int   `json:"index"`
}

type Pawn struct {
	Color    Color    `json:"color"`
	Index    int      `json:"index"`
	Position Position `json:"position"`
}

func (that *Pawn) ID() PawnID {
	return PawnID{Color: that.Color, Index: that.Index}
}

type Player struct {
	Color     Color   `json:"color"`
	Character string  `json:"character,omitempty"`
	Pawns     []*Pawn `json:"pawns"`
	Hand      []Card  `json:"hand,omitempty"`
	Turns     int     `json:"turns"`
}

func NewPlayer(color Color) *Player {
	pawns := make([]*Pawn, 0, PawnsPerPlayer)
	for i := range PawnsPerPlayer {
		pawns = append(pawns, &Pawn{Color: color, Index: i, Position: StartPosition()})
	}

	return &Player{
		Color: color,
		Pawns: pawns,
	}
}

func (that *Player) Pawn(index int) *Pawn {
	if index < 0 || index >= len(that.Pawns) {
		return nil
	}

	return that.Pawns[index]
}

func (that *Player) AllPawnsInHome() bool {
	for _, pawn := range that.Pawns {
		if !pawn.Position.IsHome() {
			return false
		}
	}

	return len(that.Pawns) == PawnsPerPlayer
}

func (that *Player) PawnsInStart() int {
	count := 0
	for _, pawn := range that.Pawns {
		if pawn.Position.IsStart() {
			count++
		}
	}

	return count
}

func (that *Player) HasCard(card Card) bool {
	for _, held := range that.Hand {
		if held == card {
			return true
		}
	}

	return false
}

// RemoveCard takes one copy of card out of the hand and reports whether it was held.
func (that *Player) RemoveCard(card Card) bool {
	for i, held := range that.Hand {
		if held == card {
			that.Hand = append(that.Hand[:i], that.Hand[i+1:]...)
			return true
		}
	}

	return false
}

func (that *Player) Clone() *Player {
	clone := &Player{
		Color:     that.Color,
		Character: that.Character,
		Pawns:     make([]*Pawn, 0, len(that.Pawns)),
		Hand:      slices.Clone(that.Hand),
		Turns:     that.Turns,
	}

	for _, pawn := range that.Pawns {
		copied := *pawn
		clone.Pawns = append(clone.Pawns, &copied)
	}

	return clone
}

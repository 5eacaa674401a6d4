// Package rules generates the legal moves for a card and applies chosen moves, resolving
// bumps, slides and win detection.
package rules

import (
	"github.com/rocketscienceinc/apologies/internal/board"
	"github.com/rocketscienceinc/apologies/internal/entity"
)

// table is a private working copy of every pawn. Occupancy is always derived from the pawns
// themselves, never cached.
type table struct {
	players []*entity.Player
}

func newTable(players []*entity.Player) *table {
	cloned := make([]*entity.Player, 0, len(players))
	for _, player := range players {
		cloned = append(cloned, player.Clone())
	}

	return &table{players: cloned}
}

func (that *table) clone() *table {
	return newTable(that.players)
}

func (that *table) player(color entity.Color) *entity.Player {
	for _, player := range that.players {
		if player.Color == color {
			return player
		}
	}

	return nil
}

func (that *table) pawn(id entity.PawnID) *entity.Pawn {
	player := that.player(id.Color)
	if player == nil {
		return nil
	}

	return player.Pawn(id.Index)
}

// occupants returns the pawns that a pawn of color would meet at pos. Start and home never
// conflict, safe cells are private to their color and main-track squares are shared.
func (that *table) occupants(color entity.Color, pos entity.Position) []*entity.Pawn {
	if !board.IsShared(pos) && !board.IsSafe(pos) {
		return nil
	}

	var found []*entity.Pawn
	for _, player := range that.players {
		if board.IsSafe(pos) && player.Color != color {
			continue
		}

		for _, pawn := range player.Pawns {
			if pawn.Position == pos {
				found = append(found, pawn)
			}
		}
	}

	return found
}

// opponentsOnTrack lists opponent pawns standing on the shared main track.
func (that *table) opponentsOnTrack(color entity.Color) []*entity.Pawn {
	var found []*entity.Pawn
	for _, player := range that.players {
		if player.Color == color {
			continue
		}

		for _, pawn := range player.Pawns {
			if board.IsShared(pawn.Position) {
				found = append(found, pawn)
			}
		}
	}

	return found
}

func (that *table) apply(actions []entity.Action) {
	for _, action := range actions {
		if pawn := that.pawn(action.Pawn); pawn != nil {
			pawn.Position = action.To
		}
	}
}

package rules

import (
	"fmt"

	"github.com/rocketscienceinc/apologies/internal/apperror"
	"github.com/rocketscienceinc/apologies/internal/board"
	"github.com/rocketscienceinc/apologies/internal/entity"
)

type spot struct {
	owner entity.Color
	pos   entity.Position
}

// Validate checks the board invariants: every player has exactly its four pawns, every pawn
// stands on a real cell, and no two pawns share a main-track square or a safe cell.
func Validate(players []*entity.Player) error {
	taken := make(map[spot]entity.PawnID)

	for _, player := range players {
		if len(player.Pawns) != entity.PawnsPerPlayer {
			return fmt.Errorf("%w: %s has %d pawns", apperror.ErrCorruptState, player.Color, len(player.Pawns))
		}

		for i, pawn := range player.Pawns {
			if pawn.Color != player.Color || pawn.Index != i {
				return fmt.Errorf("%w: pawn %s#%d filed under %s#%d", apperror.ErrCorruptState, pawn.Color, pawn.Index, player.Color, i)
			}

			var key spot
			switch pawn.Position.Kind {
			case entity.KindStart, entity.KindHome:
				continue
			case entity.KindSquare:
				if pawn.Position.Index < 0 || pawn.Position.Index >= board.Squares {
					return fmt.Errorf("%w: %s#%d on %s", apperror.ErrCorruptState, pawn.Color, i, pawn.Position)
				}

				key = spot{pos: pawn.Position}
			case entity.KindSafe:
				if pawn.Position.Index < 1 || pawn.Position.Index > board.SafeSquares {
					return fmt.Errorf("%w: %s#%d on %s", apperror.ErrCorruptState, pawn.Color, i, pawn.Position)
				}

				key = spot{owner: pawn.Color, pos: pawn.Position}
			default:
				return fmt.Errorf("%w: %s#%d has position kind %q", apperror.ErrCorruptState, pawn.Color, i, pawn.Position.Kind)
			}

			if other, ok := taken[key]; ok {
				return fmt.Errorf("%w: %s#%d and %s#%d share %s", apperror.ErrCorruptState,
					other.Color, other.Index, pawn.Color, pawn.Index, pawn.Position)
			}

			taken[key] = pawn.ID()
		}
	}

	return nil
}

// ValidateGame checks the board invariants plus the deck's card accounting, counting the
// cards in every hand as in play.
func ValidateGame(game *entity.Game) error {
	if err := Validate(game.Players); err != nil {
		return err
	}

	if err := game.Deck.Validate(); err != nil {
		return err
	}

	held := 0
	for _, player := range game.Players {
		held += len(player.Hand)
	}

	if held != game.Deck.InPlayCount() {
		return fmt.Errorf("%w: players hold %d cards but %d are in play", apperror.ErrCorruptState, held, game.Deck.InPlayCount())
	}

	return nil
}

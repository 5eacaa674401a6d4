package rules

import (
	"fmt"

	"github.com/rocketscienceinc/apologies/internal/apperror"
	"github.com/rocketscienceinc/apologies/internal/entity"
)

// Apply executes move for the player whose turn it is. The move must be one of the moves
// PlayableMoves currently returns. Pawns are relocated on a scratch copy first and the result
// is committed only if every board invariant holds. The played card leaves the hand and is
// discarded; if all of the mover's pawns are home the game is finished with that color as
// winner. Apply does not advance the turn.
func Apply(game *entity.Game, move entity.Move) error {
	if err := validateMove(game, move); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	scratch := newTable(game.Players)
	scratch.apply(move.Actions)
	if err := Validate(scratch.players); err != nil {
		return err
	}

	player := game.Player(move.Color)
	if err := game.Deck.Discard(move.Card); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCorruptState, err)
	}

	player.RemoveCard(move.Card)

	for _, action := range move.Actions {
		game.Pawn(action.Pawn).Position = scratch.pawn(action.Pawn).Position
	}

	game.History = append(game.History, entity.HistoryEntry{Turn: game.Turns, Color: move.Color, Move: move})

	return updateGameStatus(game, move.Color)
}

// Pass discards card without moving anything. It is only allowed when color has nothing to
// play at all; in adult mode the forfeit moves from PlayableMoves are used instead.
func Pass(game *entity.Game, color entity.Color, card entity.Card) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if game.Turn != color {
		return apperror.ErrNotYourTurn
	}

	player := game.Player(color)
	if player == nil || !player.HasCard(card) {
		return fmt.Errorf("%w: card %s is not in %s's hand", apperror.ErrIllegalMove, card, color)
	}

	if moves := PlayableMoves(game, color); len(moves) > 0 {
		return fmt.Errorf("%w: %s has %d playable moves", apperror.ErrIllegalMove, color, len(moves))
	}

	if err := game.Deck.Discard(card); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCorruptState, err)
	}

	player.RemoveCard(card)
	game.History = append(game.History, entity.HistoryEntry{
		Turn:  game.Turns,
		Color: color,
		Move:  entity.Move{Color: color, Card: card},
		Pass:  true,
	})

	return nil
}

// Evaluate returns the view that results from playing move, leaving view untouched. It lets a
// strategy look ahead without access to the game or its deck.
func Evaluate(view entity.PlayerView, move entity.Move) (entity.PlayerView, error) {
	if !move.Card.Valid() {
		return entity.PlayerView{}, fmt.Errorf("%w: unknown card %q", apperror.ErrIllegalMove, move.Card)
	}

	result := view.Clone()
	if move.IsForfeit() {
		return result, nil
	}

	t := &table{players: result.AllPlayers()}
	if !contains(legalMoves(t, move.Color, move.Card), move) {
		return entity.PlayerView{}, fmt.Errorf("%w: %s", apperror.ErrIllegalMove, move)
	}

	t.apply(move.Actions)

	return result, nil
}

// validateMove - checks the move against the current state of the game.
func validateMove(game *entity.Game, move entity.Move) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if game.Turn != move.Color {
		return apperror.ErrNotYourTurn
	}

	player := game.Player(move.Color)
	if player == nil || !player.HasCard(move.Card) {
		return fmt.Errorf("%w: card %s is not in %s's hand", apperror.ErrIllegalMove, move.Card, move.Color)
	}

	if !contains(PlayableMoves(game, move.Color), move) {
		return fmt.Errorf("%w: %s", apperror.ErrIllegalMove, move)
	}

	return nil
}

// updateGameStatus - finishes the game once every pawn of color is home.
func updateGameStatus(game *entity.Game, color entity.Color) error {
	player := game.Player(color)
	if player == nil || !player.AllPawnsInHome() {
		return nil
	}

	if err := game.Transition(entity.StatusFinished); err != nil {
		return err
	}

	game.Winner = color

	return nil
}

func contains(moves []entity.Move, move entity.Move) bool {
	for _, candidate := range moves {
		if candidate.Equal(move) {
			return true
		}
	}

	return false
}

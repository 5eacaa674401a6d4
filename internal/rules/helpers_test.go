package rules

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/apologies/internal/entity"
)

// newOngoingGame returns a four player game in progress with an unshuffled deck and every
// pawn in start.
func newOngoingGame(t *testing.T, mode entity.GameMode) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("test", mode, 4, nil)
	require.NoError(t, err)

	game.Status = entity.StatusOngoing

	return game
}

// give moves one copy of card from the draw pile into color's hand.
func give(t *testing.T, game *entity.Game, color entity.Color, card entity.Card) {
	t.Helper()

	i := slices.Index(game.Deck.DrawPile, card)
	require.GreaterOrEqual(t, i, 0, "no %s left to draw", card)

	game.Deck.DrawPile = slices.Delete(game.Deck.DrawPile, i, i+1)
	game.Deck.InPlay = append(game.Deck.InPlay, card)

	player := game.Player(color)
	player.Hand = append(player.Hand, card)
}

func place(game *entity.Game, color entity.Color, index int, pos entity.Position) {
	game.Pawn(entity.PawnID{Color: color, Index: index}).Position = pos
}

func pawnID(color entity.Color, index int) entity.PawnID {
	return entity.PawnID{Color: color, Index: index}
}

func moveAction(color entity.Color, index int, from, to entity.Position) entity.Action {
	return entity.Action{Type: entity.ActionMove, Pawn: pawnID(color, index), From: from, To: to}
}

func bumpAction(color entity.Color, index int, from entity.Position) entity.Action {
	return entity.Action{Type: entity.ActionBump, Pawn: pawnID(color, index), From: from, To: entity.StartPosition()}
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/apologies/internal/apperror"
	"github.com/rocketscienceinc/apologies/internal/entity"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(game *entity.Game)
		valid   bool
	}{
		{name: "fresh game", corrupt: func(*entity.Game) {}, valid: true},
		{
			name: "same safe cell in different colors",
			corrupt: func(game *entity.Game) {
				place(game, entity.Red, 0, entity.SafePosition(3))
				place(game, entity.Blue, 0, entity.SafePosition(3))
			},
			valid: true,
		},
		{
			name: "two pawns on one square",
			corrupt: func(game *entity.Game) {
				place(game, entity.Red, 0, entity.SquarePosition(20))
				place(game, entity.Green, 3, entity.SquarePosition(20))
			},
		},
		{
			name: "two pawns on one safe cell",
			corrupt: func(game *entity.Game) {
				place(game, entity.Yellow, 0, entity.SafePosition(1))
				place(game, entity.Yellow, 1, entity.SafePosition(1))
			},
		},
		{
			name:    "square off the track",
			corrupt: func(game *entity.Game) { place(game, entity.Red, 0, entity.SquarePosition(60)) },
		},
		{
			name:    "safe cell out of range",
			corrupt: func(game *entity.Game) { place(game, entity.Red, 0, entity.SafePosition(6)) },
		},
		{
			name: "missing pawn",
			corrupt: func(game *entity.Game) {
				game.Players[1].Pawns = game.Players[1].Pawns[:3]
			},
		},
		{
			name: "pawn of another color",
			corrupt: func(game *entity.Game) {
				game.Players[0].Pawns[2] = &entity.Pawn{Color: entity.Blue, Index: 2, Position: entity.StartPosition()}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a game in the described state
			game := newOngoingGame(t, entity.ModeStandard)
			tt.corrupt(game)

			// When: the board is validated
			err := Validate(game.Players)

			// Then: only broken boards are reported
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperror.ErrCorruptState)
			}
		})
	}
}

func TestValidateGame(t *testing.T) {
	t.Run("Hands must match the cards in play", func(t *testing.T) {
		// Given: a card marked in play that nobody holds
		game := newOngoingGame(t, entity.ModeStandard)
		_, err := game.Deck.Draw()
		require.NoError(t, err)

		// When: the game is validated
		err = ValidateGame(game)

		// Then: the mismatch is reported
		require.ErrorIs(t, err, apperror.ErrCorruptState)
	})

	t.Run("Lost cards are reported", func(t *testing.T) {
		// Given: a deck missing a card
		game := newOngoingGame(t, entity.ModeStandard)
		game.Deck.DrawPile = game.Deck.DrawPile[1:]

		// When: the game is validated
		err := ValidateGame(game)

		// Then: the deck is corrupt
		require.ErrorIs(t, err, apperror.ErrCorruptState)
	})
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/apologies/internal/apperror"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is finished
		isFinished := game.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is ongoing
		isOngoing := game.IsOngoing()

		// Then: it should return true
		assert.True(t, isOngoing)
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// When: checking if the game is waiting
		isWaiting := game.IsWaiting()

		// Then: it should return true
		assert.True(t, isWaiting)
	})
}

func TestGame_Transition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{name: "waiting to ongoing", from: StatusWaiting, to: StatusOngoing, allowed: true},
		{name: "ongoing to finished", from: StatusOngoing, to: StatusFinished, allowed: true},
		{name: "waiting straight to finished", from: StatusWaiting, to: StatusFinished},
		{name: "finished back to ongoing", from: StatusFinished, to: StatusOngoing},
		{name: "ongoing back to waiting", from: StatusOngoing, to: StatusWaiting},
		{name: "finished twice", from: StatusFinished, to: StatusFinished},
		{name: "unknown status", from: "paused", to: StatusOngoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a game in the from status
			game := &Game{Status: tt.from}

			// When: it is moved to the to status
			err := game.Transition(tt.to)

			// Then: only listed changes go through, anything else leaves the status alone
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, game.Status)

				return
			}

			require.ErrorIs(t, err, apperror.ErrCorruptState)
			assert.Equal(t, tt.from, game.Status)
		})
	}
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameIsNotStarted
		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameOver when game is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameOver
		assert.ErrorIs(t, err, apperror.ErrGameOver)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, apperror.ErrCorruptState)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestNewGame(t *testing.T) {
	t.Run("Creates a waiting game", func(t *testing.T) {
		// When: a three player game is created
		game, err := NewGame("123", ModeStandard, 3, nil)

		// Then: players follow the color rotation with every pawn in start
		require.NoError(t, err)
		assert.Equal(t, "123", game.ID)
		assert.True(t, game.IsWaiting())
		assert.Equal(t, []Color{Red, Yellow, Green}, game.Colors())
		assert.Equal(t, Red, game.Turn)
		assert.Equal(t, DeckSize, game.Deck.DrawCount())

		for _, player := range game.Players {
			assert.Equal(t, PawnsPerPlayer, player.PawnsInStart())
			assert.Empty(t, player.Hand)
		}
	})

	t.Run("Rejects player counts outside two to four", func(t *testing.T) {
		for _, players := range []int{0, 1, 5} {
			// When: a game is created with the count
			_, err := NewGame("123", ModeStandard, players, nil)

			// Then: it is refused
			assert.ErrorIs(t, err, apperror.ErrInvalidPlayers, "players %d", players)
		}
	})

	t.Run("Rejects unknown modes", func(t *testing.T) {
		_, err := NewGame("123", GameMode("speed"), 2, nil)
		require.Error(t, err)
	})
}

func TestGame_NextColor(t *testing.T) {
	// Given: a two player game
	game, err := NewGame("123", ModeStandard, 2, nil)
	require.NoError(t, err)

	// Then: the turn alternates between the two colors
	assert.Equal(t, Yellow, game.NextColor(Red))
	assert.Equal(t, Red, game.NextColor(Yellow))
}

func TestGame_View(t *testing.T) {
	// Given: a game where every player holds a card
	game, err := NewGame("123", ModeAdult, 4, nil)
	require.NoError(t, err)

	for _, player := range game.Players {
		player.Hand = []Card{Card5}
	}

	game.Players[1].Pawns[0].Position = SquarePosition(30)

	// When: yellow's view is built
	view, err := game.View(Yellow)
	require.NoError(t, err)

	// Then: yellow sees its own hand and none of the others
	assert.Equal(t, Yellow, view.Player.Color)
	assert.Equal(t, []Card{Card5}, view.Player.Hand)
	require.Len(t, view.Opponents, 3)
	for _, opponent := range view.Opponents {
		assert.Empty(t, opponent.Hand)
	}

	assert.Equal(t, []Color{Yellow, Red, Green, Blue}, colorsOf(view.AllPlayers()))

	// Then: the view is a copy
	view.Player.Pawns[0].Position = HomePosition()
	assert.Equal(t, SquarePosition(30), game.Players[1].Pawns[0].Position)

	// When: a color outside the game asks for a view
	_, err = game.View(Color("purple"))

	// Then: it is refused
	require.Error(t, err)
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with a drawn card
	game, err := NewGame("123", ModeStandard, 2, nil)
	require.NoError(t, err)

	card, err := game.Deck.Draw()
	require.NoError(t, err)
	game.Players[0].Hand = []Card{card}

	// When: the game is cloned and the clone is changed
	clone := game.Clone()
	require.Equal(t, game, clone)

	clone.Players[0].Pawns[0].Position = SquarePosition(10)
	clone.Players[0].Hand = nil
	require.NoError(t, clone.Deck.Discard(card))

	// Then: the original is untouched
	assert.True(t, game.Players[0].Pawns[0].Position.IsStart())
	assert.Equal(t, []Card{card}, game.Players[0].Hand)
	assert.Equal(t, 1, game.Deck.InPlayCount())
}

func TestPlayer_Cards(t *testing.T) {
	// Given: a player holding two 3s and a 7
	player := NewPlayer(Blue)
	player.Hand = []Card{Card3, Card7, Card3}

	// When: one 3 is removed
	removed := player.RemoveCard(Card3)

	// Then: exactly one copy leaves the hand
	assert.True(t, removed)
	assert.Equal(t, []Card{Card7, Card3}, player.Hand)
	assert.True(t, player.HasCard(Card3))
	assert.False(t, player.RemoveCard(Card12))
}

func TestPlayer_AllPawnsInHome(t *testing.T) {
	player := NewPlayer(Green)
	for _, pawn := range player.Pawns[1:] {
		pawn.Position = HomePosition()
	}

	assert.False(t, player.AllPawnsInHome())

	player.Pawns[0].Position = HomePosition()
	assert.True(t, player.AllPawnsInHome())
}

func colorsOf(players []*Player) []Color {
	colors := make([]Color, 0, len(players))
	for _, player := range players {
		colors = append(colors, player.Color)
	}

	return colors
}

// Package apologies drives a game through its turns. It owns no strategy: each color is played
// by a Character that picks one of the moves the rules generate.
package apologies

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/apologies/internal/apperror"
	"github.com/rocketscienceinc/apologies/internal/board"
	"github.com/rocketscienceinc/apologies/internal/entity"
	"github.com/rocketscienceinc/apologies/internal/rules"
)

var ErrMissingCharacters = errors.New("every player needs a character")

// Character chooses the move for one color. It must return one of the given moves, or nil
// when the set is empty.
type Character interface {
	Name() string
	ChooseMove(mode entity.GameMode, view entity.PlayerView, moves []entity.Move) (*entity.Move, error)
}

type GameController struct {
	logger     *slog.Logger
	game       *entity.Game
	characters map[entity.Color]Character
}

// NewGameController binds characters to the game's players in rotation order.
func NewGameController(logger *slog.Logger, game *entity.Game, characters []Character) (*GameController, error) {
	if len(characters) != len(game.Players) {
		return nil, fmt.Errorf("%w: %d players, %d characters", ErrMissingCharacters, len(game.Players), len(characters))
	}

	bound := make(map[entity.Color]Character, len(characters))
	for i, player := range game.Players {
		if characters[i] == nil {
			return nil, fmt.Errorf("%w: %s has none", ErrMissingCharacters, player.Color)
		}

		bound[player.Color] = characters[i]
		player.Character = characters[i].Name()
	}

	return &GameController{
		logger:     logger.With("game", game.ID),
		game:       game,
		characters: bound,
	}, nil
}

func (that *GameController) Game() *entity.Game {
	return that.game
}

// Start deals the opening position and moves the game from waiting to ongoing. In adult mode
// each player's first pawn starts on its exit square and every player is dealt a full hand.
func (that *GameController) Start() error {
	if that.game.IsFinished() {
		return apperror.ErrGameOver
	}

	if !that.game.IsWaiting() {
		return apperror.ErrGameStarted
	}

	if that.game.Mode == entity.ModeAdult {
		for _, player := range that.game.Players {
			player.Pawns[0].Position = entity.SquarePosition(board.ExitSquare(player.Color))

			if err := that.fillHand(player); err != nil {
				return err
			}
		}
	}

	that.game.Turn = that.game.Players[0].Color

	if err := that.game.Transition(entity.StatusOngoing); err != nil {
		return err
	}

	that.logger.Info("game started", "mode", that.game.Mode, "players", len(that.game.Players))

	return nil
}

// PlayNext plays a single turn for the current color: draw, generate, let the character choose,
// execute, then hand the turn to the next color.
func (that *GameController) PlayNext() error {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return err
	}

	color := that.game.Turn
	player := that.game.Player(color)

	if that.game.Mode == entity.ModeStandard && len(player.Hand) == 0 {
		card, err := that.game.Deck.Draw()
		if err != nil {
			return fmt.Errorf("failed to draw card: %w", err)
		}

		player.Hand = append(player.Hand, card)
	}

	moves := rules.PlayableMoves(that.game, color)

	view, err := that.game.View(color)
	if err != nil {
		return fmt.Errorf("failed to build view: %w", err)
	}

	chosen, err := that.characters[color].ChooseMove(that.game.Mode, view, moves)
	if err != nil {
		return fmt.Errorf("%s failed to choose move: %w", that.characters[color].Name(), err)
	}

	var played entity.Card
	switch {
	case len(moves) == 0 && chosen != nil:
		return fmt.Errorf("%w: %s chose a move with none available", apperror.ErrIllegalMove, color)
	case len(moves) == 0:
		played = player.Hand[0]
		if err = rules.Pass(that.game, color, played); err != nil {
			return fmt.Errorf("failed to pass: %w", err)
		}

		that.logger.Debug("turn passed", "color", color, "card", played)
	case chosen == nil:
		return fmt.Errorf("%w: %s must play one of %d moves", apperror.ErrIllegalMove, color, len(moves))
	default:
		played = chosen.Card
		if err = rules.Apply(that.game, *chosen); err != nil {
			return fmt.Errorf("failed to apply move: %w", err)
		}

		that.logger.Debug("move played", "move", chosen.String())
	}

	if that.game.Mode == entity.ModeAdult && !that.game.IsFinished() {
		if err = that.fillHand(player); err != nil {
			return err
		}
	}

	player.Turns++
	that.game.Turns++

	if err = rules.ValidateGame(that.game); err != nil {
		return err
	}

	if that.game.IsFinished() {
		that.logger.Info("game finished", "winner", that.game.Winner, "turns", that.game.Turns)
		return nil
	}

	if !(that.game.Rules.DrawAgainOnTwo && played.DrawsAgain() && len(moves) > 0) {
		that.game.Turn = that.game.NextColor(color)
	}

	return nil
}

// Play runs turns until the game is finished and returns the winner. Cancelling ctx stops the
// loop between turns.
func (that *GameController) Play(ctx context.Context) (entity.Color, error) {
	if that.game.IsWaiting() {
		if err := that.Start(); err != nil {
			return "", err
		}
	}

	for !that.game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if err := that.PlayNext(); err != nil {
			return "", err
		}
	}

	return that.game.Winner, nil
}

func (that *GameController) fillHand(player *entity.Player) error {
	for len(player.Hand) < entity.AdultHandSize {
		card, err := that.game.Deck.Draw()
		if err != nil {
			return fmt.Errorf("failed to deal card: %w", err)
		}

		player.Hand = append(player.Hand, card)
	}

	return nil
}

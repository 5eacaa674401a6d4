package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/apologies/internal/apologies"
	"github.com/rocketscienceinc/apologies/internal/entity"
	"github.com/rocketscienceinc/apologies/internal/random"
	"github.com/rocketscienceinc/apologies/internal/repository"
	"github.com/rocketscienceinc/apologies/internal/service"
)

var (
	ErrInvalidRequest = errors.New("invalid simulation request")
	ErrNoStorage      = errors.New("storage is not configured")
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	RecordWin(ctx context.Context, color entity.Color, character string) error
	Tally(ctx context.Context) (repository.Tally, error)
	Reset(ctx context.Context) error
}

// SimulationRequest describes a batch of games. Characters are assigned to colors in
// rotation order, so their count is the number of players.
type SimulationRequest struct {
	Games      int
	Mode       entity.GameMode
	Characters []string
	Seed       int64
	MaxTurns   int
	Rules      entity.Rules
}

// SimulationSummary aggregates the outcome of a batch.
type SimulationSummary struct {
	Games           int
	Finished        int
	Unfinished      int
	WinsByColor     map[entity.Color]int
	WinsByCharacter map[string]int
	TotalTurns      int
	GameIDs         []string
}

func (that SimulationSummary) AverageTurns() float64 {
	if that.Finished == 0 {
		return 0
	}

	return float64(that.TotalTurns) / float64(that.Finished)
}

type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	resultRepo resultRepo
}

// NewGameManager returns a manager that archives games and win tallies when both repositories
// are given. With nil repositories games are only played in memory.
func NewGameManager(logger *slog.Logger, gameRepo gameRepo, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		resultRepo: resultRepo,
	}
}

// Simulate plays request.Games games one after another. Game i is seeded with Seed+i, so a
// batch is reproducible from its seed. A game that reaches MaxTurns is counted as unfinished.
func (that *GameManager) Simulate(ctx context.Context, request SimulationRequest) (SimulationSummary, error) {
	log := that.logger.With("method", "Simulate")

	if err := validateRequest(request); err != nil {
		return SimulationSummary{}, err
	}

	summary := SimulationSummary{
		Games:           request.Games,
		WinsByColor:     make(map[entity.Color]int),
		WinsByCharacter: make(map[string]int),
		GameIDs:         make([]string, 0, request.Games),
	}

	for i := range request.Games {
		game, err := that.PlayGame(ctx, request, request.Seed+int64(i))
		if err != nil {
			return summary, fmt.Errorf("failed to play game %d: %w", i, err)
		}

		summary.GameIDs = append(summary.GameIDs, game.ID)

		if !game.IsFinished() {
			summary.Unfinished++
			log.Warn("game hit the turn limit", "game", game.ID, "turns", game.Turns)

			continue
		}

		character := game.Player(game.Winner).Character
		summary.Finished++
		summary.TotalTurns += game.Turns
		summary.WinsByColor[game.Winner]++
		summary.WinsByCharacter[character]++

		if that.persists() {
			if err = that.resultRepo.RecordWin(ctx, game.Winner, character); err != nil {
				return summary, fmt.Errorf("failed to record win: %w", err)
			}
		}
	}

	log.Info("simulation finished",
		"games", summary.Games,
		"finished", summary.Finished,
		"average_turns", summary.AverageTurns(),
	)

	return summary, nil
}

// PlayGame plays one game seeded with seed until it finishes or reaches the turn limit, and
// archives it when storage is configured.
func (that *GameManager) PlayGame(ctx context.Context, request SimulationRequest, seed int64) (*entity.Game, error) {
	source := random.New(seed)

	game, err := entity.NewGame(uuid.NewString(), request.Mode, len(request.Characters), source)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game.Rules = request.Rules

	characters := make([]apologies.Character, 0, len(request.Characters))
	for _, name := range request.Characters {
		character, err := service.NewCharacter(name, source)
		if err != nil {
			return nil, fmt.Errorf("failed to create character: %w", err)
		}

		characters = append(characters, character)
	}

	controller, err := apologies.NewGameController(that.logger.With("method", "PlayGame"), game, characters)
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	if err = controller.Start(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	for !game.IsFinished() && (request.MaxTurns <= 0 || game.Turns < request.MaxTurns) {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		if err = controller.PlayNext(); err != nil {
			return nil, fmt.Errorf("failed to play turn %d: %w", game.Turns, err)
		}
	}

	if that.persists() {
		if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to save game: %w", err)
		}
	}

	return game, nil
}

// GetGame loads an archived game.
func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	if !that.persists() {
		return nil, ErrNoStorage
	}

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// Tally returns the wins recorded across every persisted simulation.
func (that *GameManager) Tally(ctx context.Context) (repository.Tally, error) {
	if !that.persists() {
		return repository.Tally{}, ErrNoStorage
	}

	tally, err := that.resultRepo.Tally(ctx)
	if err != nil {
		return repository.Tally{}, fmt.Errorf("failed to get tally: %w", err)
	}

	return tally, nil
}

// DeleteGame removes an archived game.
func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if !that.persists() {
		return ErrNoStorage
	}

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "method", "DeleteGame", "game", id)

	return nil
}

// ResetTally clears every recorded win.
func (that *GameManager) ResetTally(ctx context.Context) error {
	if !that.persists() {
		return ErrNoStorage
	}

	if err := that.resultRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset tally: %w", err)
	}

	that.logger.Info("tally reset", "method", "ResetTally")

	return nil
}

func (that *GameManager) persists() bool {
	return that.gameRepo != nil && that.resultRepo != nil
}

func validateRequest(request SimulationRequest) error {
	if request.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidRequest, request.Games)
	}

	if !request.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidRequest, request.Mode)
	}

	if _, err := entity.ColorsFor(len(request.Characters)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	for _, name := range request.Characters {
		if !service.ValidCharacter(name) {
			return fmt.Errorf("%w: unknown character %q", ErrInvalidRequest, name)
		}
	}

	return nil
}

package application

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"text/tabwriter"

	"github.com/rocketscienceinc/apologies/internal/config"
	"github.com/rocketscienceinc/apologies/internal/entity"
	"github.com/rocketscienceinc/apologies/internal/random"
	"github.com/rocketscienceinc/apologies/internal/repository"
	"github.com/rocketscienceinc/apologies/internal/repository/storage"
	"github.com/rocketscienceinc/apologies/internal/usecase"
)

// RunApp - runs the configured simulation and writes its summary to out.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	manager, closeStorage, err := newGameManager(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	seed := conf.Simulation.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return fmt.Errorf("failed to pick seed: %w", err)
		}
	}

	log.Info("starting simulation", "games", conf.Simulation.Games, "mode", conf.Simulation.Mode,
		"characters", conf.Simulation.Characters, "seed", seed)

	summary, err := manager.Simulate(ctx, usecase.SimulationRequest{
		Games:      conf.Simulation.Games,
		Mode:       entity.GameMode(conf.Simulation.Mode),
		Characters: conf.Simulation.Characters,
		Seed:       seed,
		MaxTurns:   conf.Simulation.MaxTurns,
		Rules:      entity.Rules{DrawAgainOnTwo: conf.Simulation.DrawAgainOnTwo},
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	return writeSummary(out, seed, conf.Simulation.Characters, summary)
}

// ShowTally writes the wins stored across every persisted simulation.
func ShowTally(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) error {
	manager, closeStorage, err := newGameManager(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	tally, err := manager.Tally(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tWINS")

	for _, color := range entity.Colors {
		if wins, ok := tally.ByColor[color]; ok {
			fmt.Fprintf(w, "%s\t%d\n", color, wins)
		}
	}

	names := make([]string, 0, len(tally.ByCharacter))
	for name := range tally.ByCharacter {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintf(w, "%s\t%d\n", name, tally.ByCharacter[name])
	}

	return w.Flush()
}

// ShowGame writes an archived game as indented JSON.
func ShowGame(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer, id string) error {
	manager, closeStorage, err := newGameManager(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	game, err := manager.GetGame(ctx, id)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if err = encoder.Encode(game); err != nil {
		return fmt.Errorf("failed to encode game: %w", err)
	}

	return nil
}

// DeleteGame removes an archived game.
func DeleteGame(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer, id string) error {
	manager, closeStorage, err := newGameManager(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	if err = manager.DeleteGame(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(out, "deleted game %s\n", id)

	return nil
}

// ResetTally clears the wins stored by earlier simulations.
func ResetTally(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) error {
	manager, closeStorage, err := newGameManager(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	if err = manager.ResetTally(ctx); err != nil {
		return err
	}

	fmt.Fprintln(out, "tally reset")

	return nil
}

// newGameManager connects to redis when it is enabled. The returned func closes the
// connection and is safe to call without one.
func newGameManager(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.GameManager, func(), error) {
	log := logger.With("component", "app")

	if !conf.Redis.Enabled {
		return usecase.NewGameManager(logger, nil, nil), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL)
	resultRepo := repository.NewResultRepository(redisStorage.Connection)

	return usecase.NewGameManager(logger, gameRepo, resultRepo), closeStorage, nil
}

func withSignals(ctx context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}

		signal.Stop(sigs)
	}()

	return ctx, cancel
}

func writeSummary(out io.Writer, seed int64, characters []string, summary usecase.SimulationSummary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "seed\t%d\n", seed)
	fmt.Fprintf(w, "games\t%d\n", summary.Games)
	fmt.Fprintf(w, "finished\t%d\n", summary.Finished)
	fmt.Fprintf(w, "unfinished\t%d\n", summary.Unfinished)
	fmt.Fprintf(w, "average turns\t%.1f\n", summary.AverageTurns())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "COLOR\tCHARACTER\tWINS")

	colors, err := entity.ColorsFor(len(characters))
	if err != nil {
		return err
	}

	for i, color := range colors {
		fmt.Fprintf(w, "%s\t%s\t%d\n", color, characters[i], summary.WinsByColor[color])
	}

	return w.Flush()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/apologies/internal"
	"github.com/rocketscienceinc/apologies/internal/config"
)

// main - is the entry point of the application. It parses flags, loads the configuration and the logger, and runs the selected command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", err)
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "apologies",
		Usage: "play simulated games of Apologies between computer characters",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yml", Usage: "path to the YAML config"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.IntFlag{Name: "games", Usage: "number of games to play"},
			&cli.Int64Flag{Name: "seed", Usage: "seed of the first game, 0 picks one"},
			&cli.StringFlag{Name: "mode", Usage: "standard or adult"},
			&cli.StringSliceFlag{Name: "characters", Usage: "one character per player, in color order"},
			&cli.BoolFlag{Name: "draw-again-on-two", Usage: "play again after a 2"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			conf, logger, err := initFromCommand(cmd)
			if err != nil {
				return err
			}

			return app.RunApp(ctx, logger, conf, os.Stdout)
		},
		Commands: []*cli.Command{
			{
				Name:  "tally",
				Usage: "show wins stored by earlier simulations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					conf, logger, err := initFromCommand(cmd)
					if err != nil {
						return err
					}

					return app.ShowTally(ctx, logger, conf, os.Stdout)
				},
			},
			{
				Name:      "show",
				Usage:     "print a stored game as JSON",
				ArgsUsage: "<game-id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return errors.New("show needs exactly one game id")
					}

					conf, logger, err := initFromCommand(cmd)
					if err != nil {
						return err
					}

					return app.ShowGame(ctx, logger, conf, os.Stdout, cmd.Args().First())
				},
			},
			{
				Name:      "delete",
				Usage:     "remove a stored game",
				ArgsUsage: "<game-id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return errors.New("delete needs exactly one game id")
					}

					conf, logger, err := initFromCommand(cmd)
					if err != nil {
						return err
					}

					return app.DeleteGame(ctx, logger, conf, os.Stdout, cmd.Args().First())
				},
			},
			{
				Name:  "reset",
				Usage: "clear the stored win tally",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					conf, logger, err := initFromCommand(cmd)
					if err != nil {
						return err
					}

					return app.ResetTally(ctx, logger, conf, os.Stdout)
				},
			},
		},
	}
}

// initFromCommand loads the config file and lets explicit flags override it.
func initFromCommand(cmd *cli.Command) (*config.Config, *slog.Logger, error) {
	conf, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}

	if cmd.IsSet("log-level") {
		conf.LogLevel = cmd.String("log-level")
	}

	if cmd.IsSet("games") {
		conf.Simulation.Games = cmd.Int("games")
	}

	if cmd.IsSet("seed") {
		conf.Simulation.Seed = cmd.Int64("seed")
	}

	if cmd.IsSet("mode") {
		conf.Simulation.Mode = cmd.String("mode")
	}

	if cmd.IsSet("characters") {
		conf.Simulation.Characters = cmd.StringSlice("characters")
	}

	if cmd.IsSet("draw-again-on-two") {
		conf.Simulation.DrawAgainOnTwo = cmd.Bool("draw-again-on-two")
	}

	return conf, initLogger(conf), nil
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

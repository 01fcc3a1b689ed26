// Package main is the entry point for mazecrawl.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/samdwyer/mazecrawl/internal/game"
	"github.com/samdwyer/mazecrawl/internal/gamedata"
	"github.com/samdwyer/mazecrawl/internal/telemetry"
	"github.com/samdwyer/mazecrawl/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn(".env file not loaded", "err", err)
	}

	setupOTelEnv()

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal("mazecrawl failed", "err", err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "mazecrawl",
		Usage: "explore a random maze and destroy its monsters",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "preset", Value: gamedata.DefaultPresetID, Usage: "named configuration to start from", Sources: cli.EnvVars("MAZECRAWL_PRESET")},
			&cli.IntFlag{Name: "width", Usage: "maze width in junctions", Sources: cli.EnvVars("MAZECRAWL_WIDTH")},
			&cli.IntFlag{Name: "height", Usage: "maze height in junctions", Sources: cli.EnvVars("MAZECRAWL_HEIGHT")},
			&cli.FloatFlag{Name: "density", Usage: "wall probability per candidate cell, 0 to 1", Sources: cli.EnvVars("MAZECRAWL_DENSITY")},
			&cli.IntFlag{Name: "player-life", Usage: "player starting life", Sources: cli.EnvVars("MAZECRAWL_PLAYER_LIFE")},
			&cli.IntFlag{Name: "monster-life", Usage: "monster starting life", Sources: cli.EnvVars("MAZECRAWL_MONSTER_LIFE")},
			&cli.IntFlag{Name: "monsters", Usage: "number of monsters", Sources: cli.EnvVars("MAZECRAWL_MONSTERS")},
			&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 for a time-based seed", Sources: cli.EnvVars("MAZECRAWL_SEED")},
			&cli.BoolFlag{Name: "tui", Usage: "play full-screen instead of on the console"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error", Sources: cli.EnvVars("MAZECRAWL_LOG_LEVEL")},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file instead of stderr"},
			&cli.BoolFlag{Name: "no-telemetry", Usage: "disable trace export", Sources: cli.EnvVars("MAZECRAWL_NO_TELEMETRY")},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger, closeLog, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	if cmd.Bool("no-telemetry") || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		telemetry.Disable()
		logger.Debug("telemetry disabled")
	} else {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, running without traces", "err", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown", "err", err)
				}
			}()
		}
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	session, err := game.NewSession(ctx, cfg, nil, logger)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	var outcome game.Outcome
	if cmd.Bool("tui") {
		outcome, err = runTUI(ctx, session, logger)
	} else {
		outcome, err = game.RunConsole(ctx, session, os.Stdin, os.Stdout)
	}
	if err != nil {
		return err
	}

	logger.Debug("finished", "outcome", outcome, "turns", session.Turn)
	return nil
}

func runTUI(ctx context.Context, session *game.Session, logger *log.Logger) (game.Outcome, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return game.OutcomePlaying, err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return game.OutcomePlaying, fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	return game.New(screen, ui.NewRenderer(screen, palette), session, logger).Run(ctx)
}

// buildConfig starts from the chosen preset and applies every flag or
// environment variable that was set.
func buildConfig(cmd *cli.Command) (game.Config, error) {
	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return game.Config{}, err
	}
	preset, err := presets.Lookup(cmd.String("preset"))
	if err != nil {
		return game.Config{}, err
	}

	cfg := game.ConfigFromPreset(preset)
	if cmd.IsSet("width") {
		cfg.Width = cmd.Int("width")
	}
	if cmd.IsSet("height") {
		cfg.Height = cmd.Int("height")
	}
	if cmd.IsSet("density") {
		cfg.Density = cmd.Float("density")
	}
	if cmd.IsSet("player-life") {
		cfg.PlayerLife = cmd.Int("player-life")
	}
	if cmd.IsSet("monster-life") {
		cfg.MonsterLife = cmd.Int("monster-life")
	}
	if cmd.IsSet("monsters") {
		cfg.MonsterCount = cmd.Int("monsters")
	}
	cfg.Seed = cmd.Int64("seed")

	return cfg, cfg.Validate()
}

// newLogger builds the structured logger. In full-screen mode without a log
// file only errors are reported, since stderr shares the terminal.
func newLogger(cmd *cli.Command) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	out := os.Stderr
	closeLog := func() {}
	if path := cmd.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	} else if cmd.Bool("tui") {
		level = log.ErrorLevel
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazecrawl",
		Level:           level,
	})
	return logger, closeLog, nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is present.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_MAZECRAWL_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_MAZECRAWL_DATASET")
	if dataset == "" {
		dataset = "mazecrawl"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

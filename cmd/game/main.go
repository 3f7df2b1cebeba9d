package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Skies-Seas/internal/config"
	"github.com/Garsondee/Skies-Seas/internal/game"
	"github.com/Garsondee/Skies-Seas/internal/logging"
	"github.com/Garsondee/Skies-Seas/internal/record"
	"github.com/Garsondee/Skies-Seas/internal/ui"
)

func main() {
	var configDir string
	var logFile string
	flag.StringVar(&configDir, "config", ".", "directory holding "+config.FileName)
	flag.StringVar(&logFile, "log-file", "", "also write logs to this file")
	flag.Parse()

	log := logging.NewConsole(zerolog.InfoLevel, nil)
	cfg, err := config.Load(configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	level := logging.ParseLevel(cfg.LogLevel)
	log = logging.NewConsole(level, nil)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) // #nosec G302 G304
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open log file")
		}
		defer f.Close()
		log = logging.NewConsole(level, f)
	}

	opts := []game.SessionOption{
		game.WithPlayerNames(cfg.PlayerOne, cfg.PlayerTwo),
		game.WithActionsPerTurn(cfg.ActionsPerTurn),
		game.WithEventSink(logging.NewEventLogger(log)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}

	if cfg.Record.Enabled {
		rec, err := record.Open(record.Config{
			Driver:    cfg.Record.Driver,
			Path:      cfg.Record.Path,
			DSN:       cfg.Record.DSN,
			PlayerOne: cfg.PlayerOne,
			PlayerTwo: cfg.PlayerTwo,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open match archive")
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close match archive")
			}
		}()
		opts = append(opts, game.WithEventSink(rec))
	}

	session := game.NewSession(opts...)
	log.Info().Str("game", session.GameID()).Msg("Starting Skies & Seas")

	ebiten.SetWindowTitle("Skies & Seas: Fog of War")
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(ui.NewApp(session, log)); err != nil {
		log.Error().Err(err).Msg("Game exited with error")
	}
}

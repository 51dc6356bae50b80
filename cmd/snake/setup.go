package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/audio"
	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile returns the writer for --log-file, or io.Discard when unset.
// The returned close function is always safe to call.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
	}
	//nolint:errcheck // Best-effort close on exit
	return f, func() { f.Close() }, nil
}

// loadConfig loads the YAML config and applies it to new games.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	settings, err := snake.SettingsFromConfig(cfg)
	if err != nil {
		return cfg, err
	}
	snake.SetSettings(settings)
	return cfg, nil
}

// createGame creates the requested variant; the default is "snake".
func createGame(args []string) (*snake.Game, error) {
	id := "snake"
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q, run 'snake list' to see variants", id)
	}
	g, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	sg, ok := g.(*snake.Game)
	if !ok {
		return nil, fmt.Errorf("game %q is not a snake variant", id)
	}
	return sg, nil
}

// newAudio opens the audio device. Failure leaves a silent manager.
func newAudio(cfg config.SnakeConfig, logger *log.Logger) *audio.Manager {
	m := audio.NewManager(audio.Config{
		Enabled:      cfg.Audio.Enabled,
		Muted:        cfg.Audio.Muted,
		MasterVolume: cfg.Audio.MasterVolume,
		MusicVolume:  cfg.Audio.MusicVolume,
	}, logger)
	//nolint:errcheck // Logged by the manager; the game runs silently
	m.Initialize()
	return m
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/lox/rockpaper/cmd/rockpaper/shared"
	"github.com/lox/rockpaper/internal/commit"
	"github.com/lox/rockpaper/internal/config"
	"github.com/lox/rockpaper/internal/console"
	"github.com/lox/rockpaper/internal/display"
	"github.com/lox/rockpaper/internal/game"
	"github.com/lox/rockpaper/internal/moves"
	"github.com/lox/rockpaper/internal/tui"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type PlayCmd struct {
	Moves    []string `arg:"" optional:"" help:"Move names in circle order (odd count, at least 3)"`
	Mode     string   `short:"m" help:"Front end: tui or plain (overrides config)"`
	KeyBits  int      `help:"Secret key size in bits (overrides config)"`
	LogLevel string   `short:"l" help:"Log level (overrides config)"`
	LogFile  string   `help:"Log file path (overrides config)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	if len(c.Moves) > 0 {
		cfg.Game.Moves = c.Moves
	}
	if c.Mode != "" {
		cfg.UI.Mode = c.Mode
	}
	if c.KeyBits != 0 {
		cfg.Game.KeyBits = c.KeyBits
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	set, err := moves.NewMoveSet(cfg.Game.Moves)
	if err != nil {
		return err
	}

	mode := cfg.UI.Mode
	if mode == config.ModeTUI && !isTerminal() {
		mode = config.ModePlain
	}

	logger, closeLog, err := setupLogging(cfg.Log, mode)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := game.NewSession(set,
		game.WithLogger(logger),
		game.WithEngineOptions(commit.WithKeyBits(cfg.Game.KeyBits)),
	)
	if err != nil {
		return err
	}

	if mode == config.ModeTUI {
		return tui.Run(session, logger)
	}
	return console.New(session, stdin, stdout, logger).Run()
}

// loadConfig reads the config file and applies the global flags.
func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if g.NoColor {
		cfg.UI.NoColor = true
	}
	if cfg.UI.NoColor {
		display.DisableColor()
	}
	return cfg, nil
}

// setupLogging logs to the configured file, or to stderr unless the TUI
// owns the terminal.
func setupLogging(cfg config.LogSettings, mode string) (*log.Logger, func(), error) {
	if cfg.File != "" {
		return shared.SetupFileLogger(cfg.File, cfg.Level)
	}

	w := stderr
	if mode == config.ModeTUI {
		w = io.Discard
	}
	logger, err := shared.SetupLogger(w, cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() {}, nil
}

func isTerminal() bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

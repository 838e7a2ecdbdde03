// Package config loads rockpaper settings from an HCL file and the
// environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/rockpaper/internal/commit"
)

// Config represents the complete rockpaper configuration
type Config struct {
	Game GameSettings
	Log  LogSettings
	UI   UISettings
}

// fileConfig is the on-disk shape; every block is optional
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	Log  *LogSettings  `hcl:"log,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings controls the moves and the commitment key size
type GameSettings struct {
	Moves   []string `hcl:"moves,optional"`
	KeyBits int      `hcl:"key_bits,optional" env:"ROCKPAPER_KEY_BITS"`
}

// LogSettings controls where and how much to log
type LogSettings struct {
	Level string `hcl:"level,optional" env:"ROCKPAPER_LOG_LEVEL"`
	File  string `hcl:"file,optional" env:"ROCKPAPER_LOG_FILE"`
}

// UISettings selects the front end
type UISettings struct {
	Mode    string `hcl:"mode,optional" env:"ROCKPAPER_UI_MODE"`
	NoColor bool   `hcl:"no_color,optional" env:"ROCKPAPER_NO_COLOR"`
}

const (
	ModeTUI   = "tui"
	ModePlain = "plain"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Moves:   []string{"rock", "paper", "scissors"},
			KeyBits: commit.MinKeyBits,
		},
		Log: LogSettings{
			Level: "warn",
			File:  "",
		},
		UI: UISettings{
			Mode: ModeTUI,
		},
	}
}

// Load reads filename if it exists, fills in defaults and applies
// environment overrides. A missing file is not an error.
func Load(filename string) (*Config, error) {
	return load(filename, env.Options{})
}

func load(filename string, envOpts env.Options) (*Config, error) {
	cfg := Default()

	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			fileCfg, err := parseFile(filename)
			if err != nil {
				return nil, err
			}
			cfg.merge(fileCfg)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, envOpts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

func parseFile(filename string) (*fileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &cfg, nil
}

// merge copies the values set in the file over c
func (c *Config) merge(other *fileConfig) {
	if g := other.Game; g != nil {
		if len(g.Moves) > 0 {
			c.Game.Moves = g.Moves
		}
		if g.KeyBits != 0 {
			c.Game.KeyBits = g.KeyBits
		}
	}
	if l := other.Log; l != nil {
		if l.Level != "" {
			c.Log.Level = l.Level
		}
		if l.File != "" {
			c.Log.File = l.File
		}
	}
	if u := other.UI; u != nil {
		if u.Mode != "" {
			c.UI.Mode = u.Mode
		}
		if u.NoColor {
			c.UI.NoColor = true
		}
	}
}

// Validate checks settings that do not depend on the moves. Move lists are
// validated by moves.NewMoveSet.
func (c *Config) Validate() error {
	if c.Game.KeyBits < commit.MinKeyBits || c.Game.KeyBits%8 != 0 {
		return fmt.Errorf("key_bits must be a multiple of 8 and at least %d, got %d", commit.MinKeyBits, c.Game.KeyBits)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	switch c.UI.Mode {
	case ModeTUI, ModePlain:
	default:
		return fmt.Errorf("invalid ui mode: %s", c.UI.Mode)
	}

	return nil
}

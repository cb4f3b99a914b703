// Package config loads host settings from the environment and command-line flags
// Wheel physics and layout limits are compile-time constants and are not configurable
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/spin-wheel/constants"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "SPIN_WHEEL_"

// Config holds runtime settings of the terminal host
type Config struct {
	FrameInterval time.Duration `env:"FRAME_INTERVAL"`
	Sound         bool          `env:"SOUND"`
	Volume        int           `env:"VOLUME"`
	Debug         bool          `env:"DEBUG"`
	LogDir        string        `env:"LOG_DIR"`
	Seed          int64         `env:"SEED"`
	Choices       []string      `env:"CHOICES" envSeparator:","`
}

// Load starts from Default, overlays SPIN_WHEEL_* variables, then applies flags from args on top
func Load(name string, args []string) (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	choices := strings.Join(cfg.Choices, ",")
	fs.DurationVar(&cfg.FrameInterval, "frame", cfg.FrameInterval, "frame interval, one spin tick per frame")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "enable sound effects")
	fs.IntVar(&cfg.Volume, "volume", cfg.Volume, "master volume, 0-100")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug log to the log directory")
	fs.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "log directory")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "spin velocity seed, 0 seeds from the clock")
	fs.StringVar(&choices, "choices", choices, "comma separated initial choices")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	cfg.Choices = splitChoices(choices)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the frame loop cannot run with
func (c Config) Validate() error {
	if c.FrameInterval <= 0 {
		return errors.New("frame interval must be positive")
	}
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("volume must be within 0-100, got %d", c.Volume)
	}
	if len(c.Choices) > constants.MaxChoices {
		return fmt.Errorf("at most %d initial choices, got %d", constants.MaxChoices, len(c.Choices))
	}
	return nil
}

// Default returns the settings used when nothing is set, unset variables keep these values
func Default() Config {
	return Config{
		FrameInterval: constants.FrameUpdateInterval,
		Sound:         true,
		Volume:        70,
		LogDir:        "logs",
	}
}

func splitChoices(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

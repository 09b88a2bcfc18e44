package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the optional deck.toml file. Flags override it.
type Config struct {
	Title       string       `toml:"title"`
	Items       []string     `toml:"items"`
	LogLevel    string       `toml:"log_level"`
	LogPath     string       `toml:"log_path"`
	FontPath    string       `toml:"font_path"`
	TouchDevice string       `toml:"touch_device"`
	Language    string       `toml:"language"`
	Stress      StressConfig `toml:"stress"`
	Window      WindowConfig `toml:"window"`
}

type StressConfig struct {
	Enabled    bool `toml:"enabled"`
	DurationMS int  `toml:"duration_ms"`
	IntervalMS int  `toml:"interval_ms"`
}

type WindowConfig struct {
	Width      int32 `toml:"width"`
	Height     int32 `toml:"height"`
	Borderless bool  `toml:"borderless"`
}

var defaultItems = []string{"A", "B", "C", "D", "E", "F", "G"}

func defaultConfig() Config {
	return Config{
		Title:    "Swipe Deck",
		Items:    append([]string(nil), defaultItems...),
		LogLevel: "info",
		Stress: StressConfig{
			DurationMS: 1000,
			IntervalMS: 5,
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error
// unless required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	if c.Stress.DurationMS < 0 || c.Stress.IntervalMS < 0 {
		return errors.New("stress durations must not be negative")
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return errors.New("window size must not be negative")
	}
	return nil
}

func (s StressConfig) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

func (s StressConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

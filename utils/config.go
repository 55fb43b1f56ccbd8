package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	PatternRandom  = "random"
	PatternExample = "example"
	PatternEmpty   = "empty"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	TicksPerFrame       int           `json:"ticks_per_frame"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	HistoryDepth        int           `json:"history_depth"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	Pattern             string        `json:"pattern"`
	PatternFile         string        `json:"pattern_file"`
	Colors              bool          `json:"colors"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              32,
		FrameRate:           150 * time.Millisecond,
		TicksPerFrame:       1,
		AutoRestart:         true,
		StagnationThreshold: 5,
		HistoryDepth:        5,
		MaxGenerations:      1000,
		RandomDensity:       0.5,
		Seed:                42,
		Pattern:             PatternRandom,
		Colors:              true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration describes a runnable game
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] universe size must be positive, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.TicksPerFrame <= 0:
		return errors.Errorf("[Validate] ticks_per_frame must be positive, got %d", c.TicksPerFrame)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	case c.StagnationThreshold <= 0:
		return errors.Errorf("[Validate] stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Pattern == "" && c.PatternFile == "":
		return errors.New("[Validate] either pattern or pattern_file must be set")
	}
	return nil
}

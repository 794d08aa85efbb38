package board

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"sparse-life/internal/core"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls the board's rate, nominal size and initial pattern.
type Config struct {
	FPS       int    `yaml:"fps"`
	BoardSize int    `yaml:"board_size"`
	Pattern   string `yaml:"pattern"`
	Seed      int64  `yaml:"seed"`
	// PanStep is the pan distance in pixels applied per keyboard command.
	PanStep int `yaml:"pan_step"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		FPS:       30,
		BoardSize: 100,
		Seed:      42,
		PanStep:   10,
	}
}

// Validate checks the ranges of every field.
func (c Config) Validate() error {
	if c.FPS < core.MinFPS || c.FPS > core.MaxFPS {
		return fmt.Errorf("%w: fps %d outside [%d, %d]", ErrInvalidConfig, c.FPS, core.MinFPS, core.MaxFPS)
	}
	if c.BoardSize <= 0 {
		return fmt.Errorf("%w: board size %d must be positive", ErrInvalidConfig, c.BoardSize)
	}
	if c.PanStep < 0 {
		return fmt.Errorf("%w: pan step %d must not be negative", ErrInvalidConfig, c.PanStep)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= core.MinFPS && parsed <= core.MaxFPS {
			c.FPS = parsed
		}
	}
	if v, ok := cfg["board_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BoardSize = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pan_step"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PanStep = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: yaml unmarshal: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

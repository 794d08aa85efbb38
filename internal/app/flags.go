package app

import (
	"flag"

	"sparse-life/internal/board"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Pattern    string
	Random     bool
	FPS        int
	BoardSize  int
	Seed       int64
	Width      int
	Height     int
	HUDWidth   int
	CPUProfile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := board.DefaultConfig()
	return &Config{
		FPS:       d.FPS,
		BoardSize: d.BoardSize,
		Seed:      d.Seed,
		Width:     800,
		Height:    800,
		HUDWidth:  220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML board configuration file")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext pattern file to load")
	fs.BoolVar(&c.Random, "random", c.Random, "seed the board randomly instead of loading a pattern")
	fs.IntVar(&c.FPS, "fps", c.FPS, "generations per second (1-60)")
	fs.IntVar(&c.BoardSize, "board", c.BoardSize, "nominal board size used for centring and seeding")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.IntVar(&c.Width, "width", c.Width, "view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "view height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.StringVar(&c.CPUProfile, "cpuprofile", c.CPUProfile, "write a CPU profile into this directory")
}

// BoardConfig builds the board configuration: the YAML file named by -config
// when given, otherwise the defaults, with every flag set on fs applied on
// top.
func (c *Config) BoardConfig(fs *flag.FlagSet) (board.Config, error) {
	cfg := board.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := board.LoadConfig(c.ConfigPath)
		if err != nil {
			return board.Config{}, err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pattern":
			cfg.Pattern = c.Pattern
		case "fps":
			cfg.FPS = c.FPS
		case "board":
			cfg.BoardSize = c.BoardSize
		case "seed":
			cfg.Seed = c.Seed
		}
	})
	if err := cfg.Validate(); err != nil {
		return board.Config{}, err
	}
	return cfg, nil
}

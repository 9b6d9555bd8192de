package app

import (
	"flag"

	"biglife/pkg/life"
)

// Config represents the command-line parameters for the viewers.
type Config struct {
	Rule     string
	CellSize int
	Gap      int
	TPS      int
	Rate     float64
	Seed     int64
	Width    int
	Height   int
	Random   bool
	Workers  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Rule:     life.DefaultPreset,
		CellSize: 7,
		Gap:      1,
		TPS:      60,
		Rate:     30,
		Seed:     def.Seed,
		Width:    1280,
		Height:   720,
		Workers:  def.Workers,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule preset name or B/S notation")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Gap, "gap", c.Gap, "pixels between cells")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.BoolVar(&c.Random, "random", c.Random, "fill the visible window at start")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines for large generations")
}

// EngineConfig derives the engine configuration.
func (c *Config) EngineConfig() life.Config {
	cfg := life.DefaultConfig()
	cfg.Rule = c.Rule
	cfg.Seed = c.Seed
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	return cfg
}

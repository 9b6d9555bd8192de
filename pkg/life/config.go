package life

import (
	"runtime"
	"strconv"
)

// Config controls engine construction.
type Config struct {
	// Rule is a preset name or a rule in B/S notation.
	Rule string
	// Seed feeds the RNG used by SeedRandom.
	Seed int64

	// Workers bounds the goroutines used by the evaluate phase.
	Workers int
	// ParallelThreshold is the minimum tracked cell count before the evaluate
	// phase fans out. Zero disables fan-out.
	ParallelThreshold int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rule:              DefaultPreset,
		Seed:              42,
		Workers:           runtime.NumCPU(),
		ParallelThreshold: 1 << 14,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["parallel_threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ParallelThreshold = parsed
		}
	}
	return c
}

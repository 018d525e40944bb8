package life

import "strconv"

// Config holds parameters for the Life simulation.
type Config struct {
	Width  int
	Height int

	// Odds gives each cell a one-in-Odds chance of starting alive when
	// Pattern is "random".
	Odds    int
	Pattern string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 20, Height: 20, Odds: 2, Pattern: PatternRandom}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["odds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Odds = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if _, known := LookupPattern(v); known || v == PatternRandom {
			c.Pattern = v
		}
	}
	return c
}

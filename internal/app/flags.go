package app

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"toruslife/pkg/core"
	"toruslife/pkg/sims/life"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Sim     string
	Scale   int
	Seed    int64
	Width   int
	Height  int
	Odds    int
	Pattern string
	List    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 24, Seed: 42, Width: 20, Height: 20, Odds: 2, Pattern: "random"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "board columns")
	fs.IntVar(&c.Height, "h", c.Height, "board rows")
	fs.IntVar(&c.Odds, "odds", c.Odds, "one-in-N chance of a cell starting alive")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: "+strings.Join(life.PatternNames(), ", "))
	fs.BoolVar(&c.List, "list", c.List, "list available sims and patterns, then exit")
}

// PrintCatalog writes the registered sims and built-in patterns to w.
func PrintCatalog(w io.Writer) {
	fmt.Fprintf(w, "sims: %s\n", strings.Join(core.Names(), ", "))
	fmt.Fprintf(w, "patterns: %s\n", strings.Join(life.PatternNames(), ", "))
}

// Options converts the configuration into a sim factory map.
func (c *Config) Options() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"odds":    strconv.Itoa(c.Odds),
		"pattern": c.Pattern,
	}
}

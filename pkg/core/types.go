package core

import (
	"errors"
	"fmt"
	"sort"

	"toruslife/pkg/board"
)

// ErrUnknownSim is returned by Lookup for names nobody registered.
var ErrUnknownSim = errors.New("core: unknown sim")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract a driver needs from a discrete-step automaton.
// Step is only ever called in response to an external trigger.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// ChangeReporter is implemented by sims that expose the positions flipped by
// the most recent Step, so drivers can redraw incrementally.
type ChangeReporter interface {
	Toggled() []board.Coord
}

// BoardReporter is implemented by sims backed by a board.Board.
type BoardReporter interface {
	Board() *board.Board
}

// GenerationReporter is implemented by sims that count completed steps.
type GenerationReporter interface {
	Generation() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Names returns the registered sim names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named sim from cfg.
func Lookup(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSim, name, Names())
	}
	return f(cfg)
}

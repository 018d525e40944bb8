package life

import (
	"toruslife/pkg/board"
	"toruslife/pkg/core"
)

// Life adapts a Board and Simulator to the core.Sim driver contract.
type Life struct {
	cfg   Config
	board *board.Board
	sim   *Simulator
	cells []uint8
}

// New returns a Life simulation with every cell dead. Call Reset to seed it.
func New(cfg Config) (*Life, error) {
	if cfg.Odds <= 0 {
		cfg.Odds = DefaultConfig().Odds
	}
	if cfg.Pattern == "" {
		cfg.Pattern = PatternRandom
	}
	b, err := board.New(cfg.Width, cfg.Height, nil)
	if err != nil {
		return nil, err
	}
	return &Life{cfg: cfg, board: b, sim: NewSimulator(), cells: make([]uint8, b.Len())}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.board.Columns(), H: l.board.Rows()} }

// Cells exposes the current grid values as 0/1 bytes in row-major order.
func (l *Life) Cells() []uint8 { return l.cells }

// Board exposes the underlying board for read-back.
func (l *Life) Board() *board.Board { return l.board }

// Generation returns the number of steps since the last Reset.
func (l *Life) Generation() int { return l.sim.Generation() }

// Toggled returns the positions flipped by the last Step.
func (l *Life) Toggled() []board.Coord { return l.sim.Toggled() }

// Reset rebuilds the board from the configured pattern. Random populations
// are drawn from a fresh RNG seeded with seed.
func (l *Life) Reset(seed int64) {
	b, err := board.New(l.cfg.Width, l.cfg.Height, l.initializer(seed))
	if err != nil {
		// New already accepted these dimensions.
		panic(err)
	}
	l.board = b
	l.sim = NewSimulator()
	b.Each(func(c board.Cell) {
		l.cells[b.Index(c.Column, c.Row)] = cellValue(c.Alive)
	})
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.sim.Advance(l.board)
	for _, c := range l.sim.Toggled() {
		l.cells[l.board.Index(c.Column, c.Row)] ^= 1
	}
}

func (l *Life) initializer(seed int64) board.Initializer {
	if p, ok := LookupPattern(l.cfg.Pattern); ok {
		return p.Centered(l.cfg.Width, l.cfg.Height)
	}
	return core.NewRNG(seed).Initializer(l.cfg.Odds)
}

func cellValue(alive bool) uint8 {
	if alive {
		return 1
	}
	return 0
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}

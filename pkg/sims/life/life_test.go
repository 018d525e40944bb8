package life

import (
	"testing"

	"toruslife/pkg/board"
	"toruslife/pkg/core"
)

func boardWith(t *testing.T, columns, rows int, alive ...board.Coord) *board.Board {
	t.Helper()
	live := map[board.Coord]bool{}
	for _, c := range alive {
		live[c] = true
	}
	b, err := board.New(columns, rows, func(column, row int) bool {
		return live[board.Coord{Column: column, Row: row}]
	})
	if err != nil {
		t.Fatalf("board.New(%d, %d): %v", columns, rows, err)
	}
	return b
}

func expectAlive(t *testing.T, b *board.Board, label string, alive ...board.Coord) {
	t.Helper()
	expects := map[board.Coord]bool{}
	for _, c := range alive {
		expects[c] = true
	}
	b.Each(func(cell board.Cell) {
		if shouldBeAlive := expects[cell.Coord]; shouldBeAlive != cell.Alive {
			t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, cell.Column, cell.Row, cell.Alive, shouldBeAlive)
		}
	})
}

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := NextState(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("live cell with %d neighbours -> %v, expected %v", n, got, want)
		}
		if got, want := NextState(false, n), n == 3; got != want {
			t.Fatalf("dead cell with %d neighbours -> %v, expected %v", n, got, want)
		}
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	b := boardWith(t, 3, 3)
	s := NewSimulator()
	s.Advance(b)
	expectAlive(t, b, "3x3 empty")
	if len(s.Toggled()) != 0 {
		t.Fatalf("empty board toggled %d cells", len(s.Toggled()))
	}
}

func TestLoneCellDies(t *testing.T) {
	b := boardWith(t, 4, 4, board.Coord{Column: 1, Row: 2})
	s := NewSimulator()
	s.Advance(b)
	expectAlive(t, b, "lone cell")
	toggled := s.Toggled()
	if len(toggled) != 1 || toggled[0] != (board.Coord{Column: 1, Row: 2}) {
		t.Fatalf("toggled=%v, expected only (1,2)", toggled)
	}
}

func TestBlockIsStill(t *testing.T) {
	block := []board.Coord{{Column: 1, Row: 1}, {Column: 2, Row: 1}, {Column: 1, Row: 2}, {Column: 2, Row: 2}}
	b := boardWith(t, 4, 4, block...)
	s := NewSimulator()
	for i := 0; i < 3; i++ {
		s.Advance(b)
		expectAlive(t, b, "block", block...)
		if len(s.Toggled()) != 0 {
			t.Fatalf("still life toggled %v", s.Toggled())
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := []board.Coord{{Column: 1, Row: 2}, {Column: 2, Row: 2}, {Column: 3, Row: 2}}
	vertical := []board.Coord{{Column: 2, Row: 1}, {Column: 2, Row: 2}, {Column: 2, Row: 3}}
	b := boardWith(t, 5, 5, horizontal...)
	s := NewSimulator()

	s.Advance(b)
	expectAlive(t, b, "after first step", vertical...)
	if len(s.Toggled()) != 4 {
		t.Fatalf("first step toggled %d cells, expected 4", len(s.Toggled()))
	}

	s.Advance(b)
	expectAlive(t, b, "after second step", horizontal...)
	if s.Generation() != 2 {
		t.Fatalf("generation=%d, expected 2", s.Generation())
	}
}

func TestTinyBoardCountsCoincidingNeighbours(t *testing.T) {
	// On a 3x3 torus a full middle row gives every outer cell three live
	// neighbours, and the whole board fills in.
	b := boardWith(t, 3, 3, board.Coord{Column: 0, Row: 1}, board.Coord{Column: 1, Row: 1}, board.Coord{Column: 2, Row: 1})
	s := NewSimulator()
	s.Advance(b)
	if b.Population() != 9 {
		t.Fatalf("population=%d, expected 9", b.Population())
	}
	// Eight live neighbours each: everything dies.
	s.Advance(b)
	expectAlive(t, b, "3x3 overcrowded")

	// On 2x2 the horizontal neighbours of (0,0) are both (1,0), so a full
	// top row survives with two neighbours per cell.
	top := []board.Coord{{Column: 0, Row: 0}, {Column: 1, Row: 0}}
	b = boardWith(t, 2, 2, top...)
	if got := LiveNeighbors(b, board.Coord{Column: 0, Row: 0}); got != 2 {
		t.Fatalf("2x2 neighbours of (0,0)=%d, expected 2", got)
	}
	s.Advance(b)
	expectAlive(t, b, "2x2 top row", top...)
}

func TestCappedCountAgreesWithFullCount(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b, err := board.New(6, 5, core.NewRNG(seed).Initializer(2))
		if err != nil {
			t.Fatalf("board.New: %v", err)
		}
		b.Each(func(cell board.Cell) {
			full := LiveNeighbors(b, cell.Coord)
			capped := liveNeighborsCapped(b, cell.Coord)
			if NextState(cell.Alive, full) != NextState(cell.Alive, capped) {
				t.Fatalf("seed %d cell %v: full=%d capped=%d disagree", seed, cell.Coord, full, capped)
			}
			if full < 4 && capped != full {
				t.Fatalf("seed %d cell %v: capped=%d below the cap but full=%d", seed, cell.Coord, capped, full)
			}
		})
	}
}

// advanceInPlace is the incorrect sequential update, kept to show that
// Advance does not read cells it has already written.
func advanceInPlace(b *board.Board) {
	b.Each(func(cell board.Cell) {
		alive := b.Alive(cell.Column, cell.Row)
		b.SetAlive(cell.Column, cell.Row, NextState(alive, LiveNeighbors(b, cell.Coord)))
	})
}

func TestAdvanceIsSynchronous(t *testing.T) {
	vertical := []board.Coord{{Column: 2, Row: 1}, {Column: 2, Row: 2}, {Column: 2, Row: 3}}
	naive := boardWith(t, 5, 5, vertical...)
	advanceInPlace(naive)

	b := boardWith(t, 5, 5, vertical...)
	NewSimulator().Advance(b)
	expectAlive(t, b, "synchronous", board.Coord{Column: 1, Row: 2}, board.Coord{Column: 2, Row: 2}, board.Coord{Column: 3, Row: 2})
	if b.Equal(naive) {
		t.Fatalf("in-place update unexpectedly matched the synchronous result")
	}
}

func TestToggleBufferIsClearedBetweenCalls(t *testing.T) {
	b := boardWith(t, 4, 4, board.Coord{Column: 0, Row: 0})
	s := NewSimulator()
	s.Advance(b)
	if len(s.Toggled()) != 1 {
		t.Fatalf("toggled=%v, expected one cell", s.Toggled())
	}
	s.Advance(b)
	if len(s.Toggled()) != 0 {
		t.Fatalf("stale toggles %v after advancing an empty board", s.Toggled())
	}
}

func TestAdvanceIsDeterministic(t *testing.T) {
	a, err := board.New(12, 9, core.NewRNG(99).Initializer(3))
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	b, err := board.New(12, 9, core.NewRNG(99).Initializer(3))
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	sa, sb := NewSimulator(), NewSimulator()
	for i := 0; i < 2; i++ {
		sa.Advance(a)
		sb.Advance(b)
	}
	if !a.Equal(b) {
		t.Fatalf("identically seeded boards diverged")
	}
}

func TestAdvanceWritesOnlyToggledCells(t *testing.T) {
	b, err := board.New(8, 7, core.NewRNG(3).Initializer(2))
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	before, err := board.New(8, 7, func(column, row int) bool { return b.Alive(column, row) })
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	s := NewSimulator()
	s.Advance(b)
	toggled := map[board.Coord]bool{}
	for _, c := range s.Toggled() {
		toggled[c] = true
	}
	if len(toggled) == 0 {
		t.Fatalf("random board produced no changes")
	}
	b.Each(func(cell board.Cell) {
		was := before.Alive(cell.Column, cell.Row)
		if toggled[cell.Coord] == (was == cell.Alive) {
			t.Fatalf("cell (%d,%d) was=%v now=%v toggled=%v", cell.Column, cell.Row, was, cell.Alive, toggled[cell.Coord])
		}
		if want := NextState(was, LiveNeighbors(before, cell.Coord)); cell.Alive != want {
			t.Fatalf("cell (%d,%d) alive=%v, expected %v", cell.Column, cell.Row, cell.Alive, want)
		}
	})
}

package life

import "toruslife/pkg/board"

// Simulator advances a board under the B3/S23 rule with a synchronous
// update. A Simulator is owned by a single goroutine, like the board it drives.
type Simulator struct {
	toggles    []board.Coord
	generation int
}

// NewSimulator returns a Simulator positioned at generation zero.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// NextState applies the B3/S23 rule to one cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// LiveNeighbors counts the live cells among all eight neighbours of c.
// Positions that coincide on tiny boards are counted once per direction.
func LiveNeighbors(b *board.Board, c board.Coord) int {
	n := 0
	for _, d := range board.Directions {
		if p := b.Step(c, d); b.Alive(p.Column, p.Row) {
			n++
		}
	}
	return n
}

// liveNeighborsCapped stops examining diagonals once four live neighbours
// are found; NextState treats every count above three the same way.
func liveNeighborsCapped(b *board.Board, c board.Coord) int {
	n := 0
	for _, d := range board.Orthogonal {
		if p := b.Step(c, d); b.Alive(p.Column, p.Row) {
			n++
		}
	}
	for _, d := range board.Diagonal {
		if n >= 4 {
			break
		}
		if p := b.Step(c, d); b.Alive(p.Column, p.Row) {
			n++
		}
	}
	return n
}

// Advance computes the next generation of b and commits it. Every decision
// is taken against the pre-transition board; only cells whose state changes
// are written.
func (s *Simulator) Advance(b *board.Board) {
	s.toggles = s.toggles[:0]
	columns, rows := b.Columns(), b.Rows()
	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			c := board.Coord{Column: column, Row: row}
			alive := b.Alive(column, row)
			if NextState(alive, liveNeighborsCapped(b, c)) != alive {
				s.toggles = append(s.toggles, c)
			}
		}
	}
	for _, c := range s.toggles {
		b.SetAlive(c.Column, c.Row, !b.Alive(c.Column, c.Row))
	}
	s.generation++
}

// Toggled returns the positions flipped by the most recent Advance in
// row-major order. The slice is owned by the Simulator and is overwritten by
// the next Advance; callers must not modify it.
func (s *Simulator) Toggled() []board.Coord { return s.toggles }

// Generation returns the number of completed Advance calls.
func (s *Simulator) Generation() int { return s.generation }

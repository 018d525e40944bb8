package board

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions is returned when a board is requested with a
// non-positive column or row count, or one whose cell count overflows int.
var ErrInvalidDimensions = errors.New("board: dimensions must be positive")

// Initializer decides the initial state of the cell at (column, row).
type Initializer func(column, row int) bool

// Coord is a zero-based (column, row) position on a board.
type Coord struct {
	Column int
	Row    int
}

// Cell is a snapshot of one board position and its state.
type Cell struct {
	Coord
	Alive bool
}

// Board is a fixed-size toroidal grid of binary cells stored in row-major
// order. A Board is not safe for concurrent use.
type Board struct {
	columns, rows int
	alive         []bool
}

// New allocates a columns x rows board and asks init for the state of every
// position. A nil init leaves all cells dead.
func New(columns, rows int, init Initializer) (*Board, error) {
	if columns <= 0 || rows <= 0 || columns > math.MaxInt/rows {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, columns, rows)
	}
	b := &Board{columns: columns, rows: rows, alive: make([]bool, columns*rows)}
	if init == nil {
		return b, nil
	}
	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			b.alive[row*columns+column] = init(column, row)
		}
	}
	return b, nil
}

// Columns returns the board width.
func (b *Board) Columns() int { return b.columns }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Len returns the number of cells on the board.
func (b *Board) Len() int { return len(b.alive) }

// Index returns the linear slice index for (column, row). It panics when the
// position lies outside the board.
func (b *Board) Index(column, row int) int {
	if column < 0 || column >= b.columns || row < 0 || row >= b.rows {
		panic(fmt.Sprintf("board: position (%d,%d) outside %dx%d board", column, row, b.columns, b.rows))
	}
	return row*b.columns + column
}

// Get returns the cell at (column, row).
func (b *Board) Get(column, row int) Cell {
	return Cell{Coord: Coord{Column: column, Row: row}, Alive: b.alive[b.Index(column, row)]}
}

// Alive reports whether the cell at (column, row) is alive.
func (b *Board) Alive(column, row int) bool {
	return b.alive[b.Index(column, row)]
}

// SetAlive overwrites the state of the cell at (column, row).
func (b *Board) SetAlive(column, row int, value bool) {
	b.alive[b.Index(column, row)] = value
}

// Wrap applies toroidal wrapping to an arbitrary position.
func (b *Board) Wrap(column, row int) Coord {
	column = (column%b.columns + b.columns) % b.columns
	row = (row%b.rows + b.rows) % b.rows
	return Coord{Column: column, Row: row}
}

// Step returns the position one move away from c in direction d. Diagonals
// take the horizontal step first and then the vertical one.
func (b *Board) Step(c Coord, d Direction) Coord {
	switch d {
	case Up:
		if c.Row == 0 {
			return Coord{Column: c.Column, Row: b.rows - 1}
		}
		return Coord{Column: c.Column, Row: c.Row - 1}
	case Down:
		if c.Row == b.rows-1 {
			return Coord{Column: c.Column, Row: 0}
		}
		return Coord{Column: c.Column, Row: c.Row + 1}
	case Left:
		if c.Column == 0 {
			return Coord{Column: b.columns - 1, Row: c.Row}
		}
		return Coord{Column: c.Column - 1, Row: c.Row}
	case Right:
		if c.Column == b.columns-1 {
			return Coord{Column: 0, Row: c.Row}
		}
		return Coord{Column: c.Column + 1, Row: c.Row}
	case UpLeft:
		return b.Step(b.Step(c, Left), Up)
	case UpRight:
		return b.Step(b.Step(c, Right), Up)
	case DownLeft:
		return b.Step(b.Step(c, Left), Down)
	case DownRight:
		return b.Step(b.Step(c, Right), Down)
	}
	panic(fmt.Sprintf("board: unknown direction %d", int(d)))
}

// Neighbor returns the cell adjacent to cell in direction d, wrapping around
// the edges.
func (b *Board) Neighbor(cell Cell, d Direction) Cell {
	b.Index(cell.Column, cell.Row)
	n := b.Step(cell.Coord, d)
	return b.Get(n.Column, n.Row)
}

// Each calls fn for every cell in row-major order.
func (b *Board) Each(fn func(Cell)) {
	for row := 0; row < b.rows; row++ {
		for column := 0; column < b.columns; column++ {
			fn(Cell{Coord: Coord{Column: column, Row: row}, Alive: b.alive[row*b.columns+column]})
		}
	}
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, a := range b.alive {
		if a {
			n++
		}
	}
	return n
}

// Equal reports whether two boards have the same size and cell states.
func (b *Board) Equal(o *Board) bool {
	if b.columns != o.columns || b.rows != o.rows {
		return false
	}
	for i := range b.alive {
		if b.alive[i] != o.alive[i] {
			return false
		}
	}
	return true
}

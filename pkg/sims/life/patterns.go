package life

import (
	"sort"

	"toruslife/pkg/board"
)

// PatternRandom selects a seeded random population instead of a fixed pattern.
const PatternRandom = "random"

// Pattern is a fixed arrangement of live cells inside a W x H bounding box.
type Pattern struct {
	W, H  int
	Cells []board.Coord
}

var patterns = map[string]Pattern{
	"empty":   {W: 0, H: 0},
	"blinker": {W: 3, H: 1, Cells: []board.Coord{{Column: 0, Row: 0}, {Column: 1, Row: 0}, {Column: 2, Row: 0}}},
	"block":   {W: 2, H: 2, Cells: []board.Coord{{Column: 0, Row: 0}, {Column: 1, Row: 0}, {Column: 0, Row: 1}, {Column: 1, Row: 1}}},
	"glider": {W: 3, H: 3, Cells: []board.Coord{
		{Column: 1, Row: 0},
		{Column: 2, Row: 1},
		{Column: 0, Row: 2}, {Column: 1, Row: 2}, {Column: 2, Row: 2},
	}},
}

// LookupPattern returns the named built-in pattern.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the built-in patterns plus PatternRandom.
func PatternNames() []string {
	names := []string{PatternRandom}
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Centered returns an initializer placing p in the middle of a
// columns x rows board. Cells that fall off an edge wrap around.
func (p Pattern) Centered(columns, rows int) board.Initializer {
	originC := (columns - p.W) / 2
	originR := (rows - p.H) / 2
	live := make(map[board.Coord]bool, len(p.Cells))
	for _, c := range p.Cells {
		col := ((originC+c.Column)%columns + columns) % columns
		row := ((originR+c.Row)%rows + rows) % rows
		live[board.Coord{Column: col, Row: row}] = true
	}
	return func(column, row int) bool { return live[board.Coord{Column: column, Row: row}] }
}

package board

// Direction names one of the eight neighbour positions around a cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Orthogonal lists the four edge-sharing directions.
var Orthogonal = [4]Direction{Down, Up, Left, Right}

// Diagonal lists the four corner-sharing directions.
var Diagonal = [4]Direction{UpLeft, UpRight, DownLeft, DownRight}

// Directions lists all eight neighbour directions, orthogonals first.
var Directions = [8]Direction{Down, Up, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	}
	return "unknown"
}

// Offset returns the column and row deltas for the direction.
func (d Direction) Offset() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case UpLeft:
		return -1, -1
	case UpRight:
		return 1, -1
	case DownLeft:
		return -1, 1
	case DownRight:
		return 1, 1
	}
	return 0, 0
}

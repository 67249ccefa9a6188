package types

//go:generate stringer -type=Direction,Corner -output=mesh_string.go

// Direction indexes the four axis aligned neighbour slots of a mesh node
type Direction uint8

const (
	Left Direction = iota
	Right
	Down
	Up
)

var Directions = [4]Direction{Left, Right, Down, Up}

func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Down
	}
}

// Offset is the unit grid step taken when moving in direction d
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Left:
		dx = -1
	case Right:
		dx = 1
	case Down:
		dy = -1
	case Up:
		dy = 1
	}
	return
}

// Corner indexes the nodes of a quad element, counter-clockwise from the bottom left
type Corner uint8

const (
	BottomLeft Corner = iota
	BottomRight
	TopRight
	TopLeft
)

var Corners = [4]Corner{BottomLeft, BottomRight, TopRight, TopLeft}

// Sign is the corner position relative to the element centre, in units of half a cell
func (c Corner) Sign() (sx, sy float64) {
	switch c {
	case BottomLeft:
		return -1, -1
	case BottomRight:
		return 1, -1
	case TopRight:
		return 1, 1
	default:
		return -1, 1
	}
}

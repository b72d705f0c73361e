package game

import "fmt"

// Move is a direction for a single agent. None is the sentinel for "no move"
// and is its own opposite.
type Move int

const (
	None Move = iota
	Up
	Down
	Left
	Right
)

// Directions lists the real moves in a fixed order.
var Directions = []Move{Up, Down, Left, Right}

func (m Move) Opposite() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Delta returns the unit step of m. Up increases Y.
func (m Move) Delta() (dx, dy int) {
	switch m {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (m Move) String() string {
	switch m {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("move(%d)", int(m))
	}
}

// JointMove holds one Move per ghost for a single ply.
type JointMove []Move

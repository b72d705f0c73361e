package game

import (
	"math"

	"github.com/samber/lo"
)

// Position is a cell on the board.
type Position struct {
	X int
	Y int
}

// Step returns the cell reached by moving one unit in direction m.
func (p Position) Step(m Move) Position {
	dx, dy := m.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Distance is a metric over board positions.
type Distance func(a, b Position) float64

func Manhattan(a, b Position) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

func Euclidean(a, b Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// DistanceToClosest returns the distance from p to the nearest element of
// targets under metric d, and false when targets is empty.
func DistanceToClosest(d Distance, p Position, targets []Position) (float64, bool) {
	if len(targets) == 0 {
		return 0, false
	}
	return lo.Min(lo.Map(targets, func(t Position, _ int) float64 {
		return d(p, t)
	})), true
}

package engine

import (
	"pacman/game"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// GhostPolicy picks the ghosts' joint move on the host side. It is how the
// ghosts actually play, independent of what the agent assumes about them.
type GhostPolicy interface {
	Choose(state game.State) game.JointMove
}

type randomGhosts struct {
	rng *rand.Rand
}

// RandomGhosts draws each joint move uniformly from the legal set.
func RandomGhosts(seed uint64) GhostPolicy {
	return &randomGhosts{rng: rand.New(rand.NewSource(seed))}
}

func (g *randomGhosts) Choose(state game.State) game.JointMove {
	moves := state.GhostMoves()
	if len(moves) == 0 {
		return nil
	}
	return moves[g.rng.Intn(len(moves))]
}

type chasingGhosts struct{}

// ChasingGhosts picks the joint move bringing the ghosts closest to Pac in
// total Manhattan distance. Ties keep the earliest joint move.
func ChasingGhosts() GhostPolicy {
	return chasingGhosts{}
}

func (chasingGhosts) Choose(state game.State) game.JointMove {
	moves := state.GhostMoves()
	if len(moves) == 0 {
		return nil
	}
	pac := state.PacMan()
	spread := func(m game.JointMove) float64 {
		return lo.SumBy(state.PlayGhosts(m).Ghosts(), func(g game.Position) float64 {
			return game.Manhattan(g, pac)
		})
	}
	return lo.MinBy(moves, func(a, b game.JointMove) bool {
		return spread(a) < spread(b)
	})
}

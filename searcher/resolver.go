package searcher

import (
	"pacman/game"

	"golang.org/x/exp/rand"
)

// Resolver picks the ghost joint moves explored at a min ply.
//
// With optimal ghosts every legal joint move is explored, assuming the ghosts
// always pick the worst outcome for Pac. Otherwise a single joint move is
// drawn uniformly at random. That is a cheap stand-in for a chance node: the
// drawn branch is still scored as a min ply and nothing is averaged, so it is
// not an expectimax.
type Resolver struct {
	optimal bool
	rng     *rand.Rand
}

// OptimalGhosts returns a resolver exploring every joint move.
func OptimalGhosts() *Resolver {
	return &Resolver{optimal: true}
}

// RandomGhosts returns a resolver drawing one joint move per ply from src.
func RandomGhosts(src rand.Source) *Resolver {
	if src == nil {
		panic("random ghosts need a source")
	}
	return &Resolver{rng: rand.New(src)}
}

// SeededGhosts is RandomGhosts with a source seeded from seed.
func SeededGhosts(seed uint64) *Resolver {
	return RandomGhosts(rand.NewSource(seed))
}

func (r *Resolver) Optimal() bool {
	return r.optimal
}

func (r *Resolver) Resolve(s game.State) []game.JointMove {
	moves := s.GhostMoves()
	if r.optimal || len(moves) == 0 {
		return moves
	}
	return []game.JointMove{moves[r.rng.Intn(len(moves))]}
}

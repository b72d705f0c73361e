package arena

import (
	"slices"
	"strings"

	"pacman/game"

	"github.com/samber/lo"
)

// State is an immutable position on a Board.
type State struct {
	board  *Board
	pac    game.Position
	ghosts []game.Position
	dots   []game.Position
	caught bool
}

var _ game.State = (*State)(nil)

func (s *State) PacMan() game.Position {
	return s.pac
}

func (s *State) Ghosts() []game.Position {
	return slices.Clone(s.ghosts)
}

func (s *State) Dots() []game.Position {
	return slices.Clone(s.dots)
}

func (s *State) IsWinning() bool {
	return !s.caught && len(s.dots) == 0
}

func (s *State) IsLosing() bool {
	return s.caught
}

func (s *State) PacManMoves() []game.Move {
	if game.IsFinal(s) {
		return nil
	}
	return s.board.openMoves(s.pac)
}

// GhostMoves is the product of every ghost's open moves, in ghost order. A
// boxed-in ghost contributes game.None.
func (s *State) GhostMoves() []game.JointMove {
	if game.IsFinal(s) {
		return nil
	}
	joint := []game.JointMove{{}}
	for _, g := range s.ghosts {
		moves := s.board.openMoves(g)
		if len(moves) == 0 {
			moves = []game.Move{game.None}
		}
		joint = lo.FlatMap(joint, func(prefix game.JointMove, _ int) []game.JointMove {
			return lo.Map(moves, func(m game.Move, _ int) game.JointMove {
				return append(slices.Clone(prefix), m)
			})
		})
	}
	return joint
}

// Play moves Pac. Pac eats the dot on the cell it enters and is caught if a
// ghost is already there. Moves into walls leave Pac in place.
func (s *State) Play(move game.Move) game.State {
	next := &State{board: s.board, pac: s.pac, ghosts: s.ghosts, dots: s.dots, caught: s.caught}
	if game.IsFinal(s) {
		return next
	}
	if to := s.pac.Step(move); !s.board.IsWall(to) {
		next.pac = to
	}
	if slices.Contains(next.dots, next.pac) {
		next.dots = lo.Without(next.dots, next.pac)
	}
	next.caught = slices.Contains(next.ghosts, next.pac)
	return next
}

// PlayGhosts moves every ghost by its entry in move.
func (s *State) PlayGhosts(move game.JointMove) game.State {
	next := &State{board: s.board, pac: s.pac, ghosts: s.ghosts, dots: s.dots, caught: s.caught}
	if game.IsFinal(s) {
		return next
	}
	if len(move) != len(s.ghosts) {
		panic("joint move does not match the number of ghosts")
	}
	next.ghosts = make([]game.Position, len(s.ghosts))
	for i, g := range s.ghosts {
		next.ghosts[i] = g
		if to := g.Step(move[i]); !s.board.IsWall(to) {
			next.ghosts[i] = to
		}
	}
	next.caught = slices.Contains(next.ghosts, next.pac)
	return next
}

// String draws the state in the layout format, with 'X' for a caught Pac.
func (s *State) String() string {
	var sb strings.Builder
	for y := s.board.height - 1; y >= 0; y-- {
		for x := 0; x < s.board.width; x++ {
			p := game.Position{X: x, Y: y}
			switch {
			case p == s.pac && s.caught:
				sb.WriteByte('X')
			case p == s.pac:
				sb.WriteByte(pacCell)
			case slices.Contains(s.ghosts, p):
				sb.WriteByte(ghostCell)
			case s.board.IsWall(p):
				sb.WriteByte(wallCell)
			case slices.Contains(s.dots, p):
				sb.WriteByte(dotCell)
			default:
				sb.WriteByte(emptyCell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Package searcher implements depth-limited minimax with alpha-beta pruning
// for Pac against a team of ghosts. Each max ply is one Pac move and each
// min ply is one joint move of all ghosts.
package searcher

import (
	"math"

	"pacman/game"

	"github.com/samber/lo"
)

type Option func(s *AlphaBeta)

// WithDepth bounds the number of plies searched, counting Pac and ghost
// plies separately.
func WithDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithEvaluator(e *Evaluator) Option {
	return func(s *AlphaBeta) {
		if e != nil {
			s.evaluate = e.Evaluate
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithResolver(r *Resolver) Option {
	return func(s *AlphaBeta) {
		if r != nil {
			s.resolver = r
		}
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.metrics = NewMetricsCollector()
	}
}

type AlphaBeta struct {
	depth    int
	evaluate game.Evaluate
	resolver *Resolver
	metrics  MetricsCollector
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		depth:    DefaultMaxDepth,
		evaluate: NewEvaluator().Evaluate,
		resolver: OptimalGhosts(),
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *AlphaBeta) Depth() int {
	return s.depth
}

// Start resets the metrics for a new decision.
func (s *AlphaBeta) Start() {
	s.metrics.Start(s.depth)
}

// Complete returns the metrics collected since Start.
func (s *AlphaBeta) Complete() SearchMetric {
	return s.metrics.Complete()
}

// Score searches the line where Pac plays move from state, with a full
// window and the remaining depth budget after the root ply.
func (s *AlphaBeta) Score(state game.State, move game.Move) float64 {
	return s.MinValue(state.Play(move), move, math.Inf(-1), math.Inf(1), s.depth-1)
}

// MaxValue returns the value of state with Pac to move. The reverse of prev
// is not explored.
func (s *AlphaBeta) MaxValue(state game.State, prev game.Move, alpha, beta float64, depth int) float64 {
	s.metrics.AddNode()
	if game.IsFinal(state) || depth < 1 {
		return s.leaf(state)
	}

	moves := state.PacManMoves()
	if prev != game.None {
		moves = lo.Without(moves, prev.Opposite())
	}
	if len(moves) == 0 { // Dead end
		return s.leaf(state)
	}

	v := math.Inf(-1)
	for _, move := range moves {
		v = math.Max(v, s.MinValue(state.Play(move), move, alpha, beta, depth-1))
		if v >= beta {
			s.metrics.AddCutoff()
			break
		}
		alpha = math.Max(alpha, v)
	}
	return v
}

// MinValue returns the value of state with the ghosts to move. prev is Pac's
// last move and is handed on untouched.
func (s *AlphaBeta) MinValue(state game.State, prev game.Move, alpha, beta float64, depth int) float64 {
	s.metrics.AddNode()
	if game.IsFinal(state) || depth < 1 {
		return s.leaf(state)
	}

	joint := s.resolver.Resolve(state)
	if len(joint) == 0 {
		return s.leaf(state)
	}

	v := math.Inf(1)
	for _, move := range joint {
		v = math.Min(v, s.MaxValue(state.PlayGhosts(move), prev, alpha, beta, depth-1))
		if v <= alpha {
			s.metrics.AddCutoff()
			break
		}
		beta = math.Min(beta, v)
	}
	return v
}

func (s *AlphaBeta) leaf(state game.State) float64 {
	s.metrics.AddEvaluation()
	return s.evaluate(state)
}

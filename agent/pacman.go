// Package agent drives the search once per tick and remembers Pac's last
// move, which biases the next decision against turning back.
package agent

import (
	"math"

	"pacman/config"
	"pacman/game"
	"pacman/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(p *PacMan)

// WithReversalPenalty sets the amount subtracted from the score of a move
// that undoes the previous one.
func WithReversalPenalty(penalty float64) Option {
	return func(p *PacMan) {
		if penalty >= 0 {
			p.penalty = penalty
		}
	}
}

// Decision is the outcome of one call to Decide.
type Decision struct {
	Move    game.Move
	Score   float64
	Metrics searcher.SearchMetric
}

// PacMan is a minimax agent. Each instance owns its memory, so instances
// never interfere with one another, but one instance must not be shared by
// concurrent games.
type PacMan struct {
	searcher searcher.Searcher
	penalty  float64
	lastMove game.Move
}

var _ Agent = (*PacMan)(nil)

func NewPacMan(s searcher.Searcher, options ...Option) *PacMan {
	if s == nil {
		panic("pacman needs a searcher")
	}
	p := &PacMan{
		searcher: s,
		penalty:  searcher.DefaultReversalPenalty,
		lastMove: game.None,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *PacMan) LastMove() game.Move {
	return p.lastMove
}

func (p *PacMan) Reset() {
	p.lastMove = game.None
}

func (p *PacMan) ChooseMove(g game.Game) game.Move {
	return p.Decide(g).Move
}

// Decide searches every legal move from the current state and returns the
// best one. Ties keep the earliest move. Without legal moves it returns
// game.None.
func (p *PacMan) Decide(g game.Game) Decision {
	current := g.State()

	p.searcher.Start()
	best := Decision{Move: game.None, Score: math.Inf(-1)}
	for _, move := range current.PacManMoves() {
		score := p.searcher.Score(current, move)
		if p.lastMove != game.None && move == p.lastMove.Opposite() {
			score -= p.penalty
		}
		if score > best.Score {
			best.Score = score
			best.Move = move
		}
	}
	best.Metrics = p.searcher.Complete()

	log.Debug().
		Int("dots", len(current.Dots())).
		Int("time", g.Time()).
		Int("points", g.Points()).
		Stringer("move", best.Move).
		Float64("score", best.Score).
		Int64("nodes", best.Metrics.Nodes).
		Int64("cutoffs", best.Metrics.Cutoffs).
		Dur("elapsed", best.Metrics.Duration).
		Msg("move chosen")

	p.lastMove = best.Move
	return best
}

// FromConfig builds a PacMan with the search and penalty described by cfg.
func FromConfig(cfg config.Config, options ...searcher.Option) (*PacMan, error) {
	s, err := cfg.Searcher(options...)
	if err != nil {
		return nil, err
	}
	return NewPacMan(s, WithReversalPenalty(cfg.ReversalPenalty)), nil
}

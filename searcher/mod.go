package searcher

import "pacman/game"

// Searcher scores Pac's candidate moves at the root of a decision.
type Searcher interface {
	// Start begins a new decision
	Start()
	Score(state game.State, move game.Move) float64
	Complete() SearchMetric
}

var _ Searcher = (*AlphaBeta)(nil)

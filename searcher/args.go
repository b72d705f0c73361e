package searcher

// Default tuning for the search and the evaluation

const DefaultMaxDepth = 8

// Subtracted at the root from a move that undoes the previous one
const DefaultReversalPenalty = 10.0

const (
	DefaultDotWeight         = 5.0
	DefaultDotDistanceWeight = 0.2
	// Kept small on purpose: Pac favors eating over running from weak ghosts
	DefaultGhostDistanceWeight = 0.1
)

// Finite so that scores of lost (or won) lines can still be compared
const (
	WinScore  = 5000.0
	LossScore = -WinScore
)

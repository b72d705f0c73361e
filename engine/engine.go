package engine

import (
	"time"

	"pacman/game"
	"pacman/searcher"
)

const MaxTicks = 1000

// Points awarded to Pac
const (
	DotPoints  = 10
	WinPoints  = 500
	LossPoints = -500
)

type Outcome int

const (
	Ongoing Outcome = iota
	Won
	Lost
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case TimedOut:
		return "timed out"
	default:
		return "ongoing"
	}
}

func outcomeOf(s game.State) Outcome {
	switch {
	case s.IsLosing():
		return Lost
	case s.IsWinning():
		return Won
	default:
		return Ongoing
	}
}

type MoveMetric struct {
	Tick  int
	Move  game.Move
	Score float64
	searcher.SearchMetric
}

type GameMetric struct {
	Outcome   Outcome
	Points    int
	Ticks     int
	DotsLeft  int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

package engine

import (
	"time"

	"pacman/agent"
	"pacman/game"

	"github.com/rs/zerolog/log"
)

// Decider is the agent side of the loop.
type Decider interface {
	Decide(g game.Game) agent.Decision
}

type Option func(e *Engine)

func WithMaxTicks(ticks int) Option {
	return func(e *Engine) {
		if ticks > 0 {
			e.maxTicks = ticks
		}
	}
}

// Engine runs one game locally. It is the live game.Game handed to the agent
// on every tick.
type Engine struct {
	state    game.State
	pac      Decider
	ghosts   GhostPolicy
	time     int
	points   int
	maxTicks int
}

func Local(state game.State, pac Decider, ghosts GhostPolicy, options ...Option) *Engine {
	if state == nil || pac == nil || ghosts == nil {
		panic("engine needs a state, an agent and a ghost policy")
	}
	e := &Engine{
		state:    state,
		pac:      pac,
		ghosts:   ghosts,
		maxTicks: MaxTicks,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) State() game.State {
	return e.state
}

func (e *Engine) Time() int {
	return e.time
}

func (e *Engine) Points() int {
	return e.points
}

// Run plays ticks until the game ends or the tick budget runs out. Each tick
// is one Pac move followed by one ghost joint move.
func (e *Engine) Run() (GameMetric, []MoveMetric) {
	start := time.Now()
	var moveMetrics []MoveMetric

	log.Debug().Int("dots", len(e.state.Dots())).Int("ghosts", len(e.state.Ghosts())).Msg("game starting")

	for !game.IsFinal(e.state) && e.time < e.maxTicks {
		decision := e.pac.Decide(e)
		moveMetrics = append(moveMetrics, MoveMetric{
			Tick:         e.time,
			Move:         decision.Move,
			Score:        decision.Score,
			SearchMetric: decision.Metrics,
		})

		dots := len(e.state.Dots())
		e.state = e.state.Play(decision.Move)
		e.points += DotPoints * (dots - len(e.state.Dots()))

		if !game.IsFinal(e.state) {
			if joint := e.ghosts.Choose(e.state); joint != nil {
				e.state = e.state.PlayGhosts(joint)
			}
		}
		e.time++
	}

	outcome := outcomeOf(e.state)
	switch outcome {
	case Won:
		e.points += WinPoints
	case Lost:
		e.points += LossPoints
	default:
		outcome = TimedOut
	}

	end := time.Now()
	metric := GameMetric{
		Outcome:   outcome,
		Points:    e.points,
		Ticks:     e.time,
		DotsLeft:  len(e.state.Dots()),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}

	log.Debug().
		Stringer("outcome", outcome).
		Int("points", e.points).
		Int("ticks", e.time).
		Int("dots_left", metric.DotsLeft).
		Msg("game over")

	return metric, moveMetrics
}

package engine

import (
	"testing"

	"pacman/agent"
	"pacman/arena"
	"pacman/game"
	"pacman/searcher"

	"github.com/stretchr/testify/require"
)

const corridor = `
%%%%%%%
%P . G%
%%%%%%%
`

func newPacMan(options ...searcher.Option) *agent.PacMan {
	return agent.NewPacMan(searcher.NewAlphaBeta(append([]searcher.Option{searcher.WithDepth(4), searcher.WithMetrics()}, options...)...))
}

func TestRunCorridor(t *testing.T) {
	for name, ghosts := range map[string]GhostPolicy{"random": RandomGhosts(1), "chasing": ChasingGhosts()} {
		t.Run(name, func(t *testing.T) {
			e := Local(arena.MustParse(corridor).Start(), newPacMan(), ghosts)
			metric, moves := e.Run()

			require.Equal(t, Won, metric.Outcome)
			require.Equal(t, 2, metric.Ticks)
			require.Equal(t, DotPoints+WinPoints, metric.Points)
			require.Zero(t, metric.DotsLeft)
			require.Len(t, moves, 2)
			require.Equal(t, game.Right, moves[0].Move)
			require.Equal(t, 1, moves[1].Tick)
			require.Positive(t, moves[0].Nodes, "Search metrics should be collected")
		})
	}
}

func TestRunLoses(t *testing.T) {
	// Pac is walled in next to a ghost that steps onto it
	trap := `
%%%%%
%PG.%
%%%%%
`
	e := Local(arena.MustParse(trap).Start(), newPacMan(), ChasingGhosts())
	metric, _ := e.Run()

	require.Equal(t, Lost, metric.Outcome)
	require.Equal(t, LossPoints, metric.Points)
}

func TestRunTimesOut(t *testing.T) {
	e := Local(arena.MustParse(arena.Classic).Start(), newPacMan(), RandomGhosts(3), WithMaxTicks(5))
	metric, moves := e.Run()

	require.Equal(t, TimedOut, metric.Outcome)
	require.Equal(t, 5, metric.Ticks)
	require.Len(t, moves, 5)
	require.Equal(t, 5, e.Time())
}

func TestRunClassic(t *testing.T) {
	start := arena.MustParse(arena.Classic).Start()
	e := Local(start, newPacMan(), ChasingGhosts(), WithMaxTicks(300))
	metric, moves := e.Run()

	require.NotEqual(t, Ongoing, metric.Outcome)
	require.LessOrEqual(t, metric.Ticks, 300)
	require.Len(t, moves, metric.Ticks)
	eaten := len(start.Dots()) - metric.DotsLeft
	require.Positive(t, eaten, "Pac should eat something on the classic board")

	want := eaten * DotPoints
	switch metric.Outcome {
	case Won:
		want += WinPoints
	case Lost:
		want += LossPoints
	}
	require.Equal(t, want, metric.Points)
}

func TestRunReproducibleWithRandomGhosts(t *testing.T) {
	play := func() (GameMetric, []game.Move) {
		pac := newPacMan(searcher.WithResolver(searcher.SeededGhosts(21)))
		e := Local(arena.MustParse(arena.Classic).Start(), pac, RandomGhosts(8), WithMaxTicks(60))
		metric, moves := e.Run()
		played := make([]game.Move, len(moves))
		for i, m := range moves {
			played[i] = m.Move
		}
		return metric, played
	}

	m1, moves1 := play()
	m2, moves2 := play()
	require.Equal(t, moves1, moves2, "Same seeds should replay the same game")
	require.Equal(t, m1.Outcome, m2.Outcome)
	require.Equal(t, m1.Points, m2.Points)
	require.Equal(t, m1.Ticks, m2.Ticks)
}

func TestChasingGhosts(t *testing.T) {
	s := arena.MustParse(`
%%%%%%%
%P G .%
%%% %%%
%%%%%%%
`).Start()
	require.Len(t, s.GhostMoves(), 3)
	require.Equal(t, game.JointMove{game.Left}, ChasingGhosts().Choose(s), "Left is the only move closing in on Pac")
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "won", Won.String())
	require.Equal(t, "lost", Lost.String())
	require.Equal(t, "timed out", TimedOut.String())
	require.Equal(t, "ongoing", Ongoing.String())
}

func TestLocalPanicsWithoutCollaborators(t *testing.T) {
	require.Panics(t, func() { Local(nil, newPacMan(), ChasingGhosts()) })
}

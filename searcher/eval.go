package searcher

import (
	"fmt"
	"math"

	"pacman/game"
)

// Weights scales each feature of the evaluation. Win and Loss are the fixed
// scores of terminal states.
type Weights struct {
	Dots          float64 `yaml:"dots"`
	DotDistance   float64 `yaml:"dot_distance"`
	GhostDistance float64 `yaml:"ghost_distance"`
	Win           float64 `yaml:"win"`
	Loss          float64 `yaml:"loss"`
}

func DefaultWeights() Weights {
	return Weights{
		Dots:          DefaultDotWeight,
		DotDistance:   DefaultDotDistanceWeight,
		GhostDistance: DefaultGhostDistanceWeight,
		Win:           WinScore,
		Loss:          LossScore,
	}
}

// Validate checks that terminal scores are finite with Win above Loss, and
// that feature weights are finite and non-negative.
func (w Weights) Validate() error {
	if !finite(w.Win) || !finite(w.Loss) {
		return fmt.Errorf("terminal scores must be finite, got win %v and loss %v", w.Win, w.Loss)
	}
	if w.Win <= w.Loss {
		return fmt.Errorf("win score %v must be above loss score %v", w.Win, w.Loss)
	}
	features := map[string]float64{
		"dots":           w.Dots,
		"dot_distance":   w.DotDistance,
		"ghost_distance": w.GhostDistance,
	}
	for name, weight := range features {
		if !finite(weight) || weight < 0 {
			return fmt.Errorf("%s weight %v must be finite and non-negative", name, weight)
		}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// StructurePenalty scores the layout of the remaining dots. It is subtracted
// from the evaluation.
type StructurePenalty func(dots []game.Position) float64

// ConstantPenalty ignores the layout entirely.
func ConstantPenalty(c float64) StructurePenalty {
	return func([]game.Position) float64 { return c }
}

// DotClusters counts the 4-connected groups of remaining dots, so that
// leaving stragglers behind costs one point per stranded group.
func DotClusters(dots []game.Position) float64 {
	remaining := make(map[game.Position]bool, len(dots))
	for _, d := range dots {
		remaining[d] = true
	}

	clusters := 0
	for _, start := range dots {
		if !remaining[start] {
			continue
		}
		clusters++
		delete(remaining, start)
		stack := []game.Position{start}
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, m := range game.Directions {
				n := p.Step(m)
				if remaining[n] {
					delete(remaining, n)
					stack = append(stack, n)
				}
			}
		}
	}
	return float64(clusters)
}

type EvalOption func(e *Evaluator)

func WithWeights(w Weights) EvalOption {
	return func(e *Evaluator) {
		e.weights = w
	}
}

func WithMetric(d game.Distance) EvalOption {
	return func(e *Evaluator) {
		if d != nil {
			e.distance = d
		}
	}
}

func WithStructure(s StructurePenalty) EvalOption {
	return func(e *Evaluator) {
		if s != nil {
			e.structure = s
		}
	}
}

// Evaluator is the static scoring function applied at terminal and cutoff
// states.
type Evaluator struct {
	weights   Weights
	distance  game.Distance
	structure StructurePenalty
}

func NewEvaluator(options ...EvalOption) *Evaluator {
	e := &Evaluator{ // Default values
		weights:   DefaultWeights(),
		distance:  game.Manhattan,
		structure: ConstantPenalty(1),
	}
	for _, option := range options {
		option(e)
	}
	if err := e.weights.Validate(); err != nil {
		panic(err)
	}
	return e
}

// Evaluate scores s from Pac's perspective. Any winning state scores above
// any ongoing state, which scores above any losing state.
func (e *Evaluator) Evaluate(s game.State) float64 {
	if s.IsLosing() {
		return e.weights.Loss
	}
	if s.IsWinning() {
		return e.weights.Win
	}

	dots := s.Dots()
	pac := s.PacMan()

	score := 0.0
	score -= float64(len(dots)) * e.weights.Dots
	if d, ok := game.DistanceToClosest(e.distance, pac, dots); ok {
		score -= d * e.weights.DotDistance
	}
	if d, ok := game.DistanceToClosest(e.distance, pac, s.Ghosts()); ok {
		score += d * e.weights.GhostDistance
	}
	score -= e.structure(dots)

	return e.bound(score)
}

// bound keeps ongoing scores strictly between the terminal scores.
func (e *Evaluator) bound(score float64) float64 {
	floor := math.Nextafter(e.weights.Loss, math.Inf(1))
	ceil := math.Nextafter(e.weights.Win, math.Inf(-1))
	return math.Max(floor, math.Min(ceil, score))
}

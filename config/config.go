// Package config holds the tuning knobs of the Pac agent. The search core
// never reads files itself; hosts load a Config and build the agent from it.
package config

import (
	"errors"
	"fmt"
	"os"

	"pacman/game"
	"pacman/searcher"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

const (
	MetricManhattan = "manhattan"
	MetricEuclidean = "euclidean"

	StructureConstant = "constant"
	StructureClusters = "clusters"
)

type Config struct {
	MaxDepth        int              `yaml:"max_depth"`
	OptimalGhosts   bool             `yaml:"optimal_ghosts"`
	Seed            uint64           `yaml:"seed"` // Only used with random ghosts
	ReversalPenalty float64          `yaml:"reversal_penalty"`
	Metric          string           `yaml:"metric"`
	Structure       string           `yaml:"structure"`
	Weights         searcher.Weights `yaml:"weights"`
}

func Default() Config {
	return Config{
		MaxDepth:        searcher.DefaultMaxDepth,
		OptimalGhosts:   true,
		Seed:            1,
		ReversalPenalty: searcher.DefaultReversalPenalty,
		Metric:          MetricManhattan,
		Structure:       StructureConstant,
		Weights:         searcher.DefaultWeights(),
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults. Keys that are absent keep their
// default value.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d is negative", ErrInvalid, c.MaxDepth)
	}
	if c.ReversalPenalty < 0 {
		return fmt.Errorf("%w: reversal_penalty %v is negative", ErrInvalid, c.ReversalPenalty)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Distance(); err != nil {
		return err
	}
	if _, err := c.StructurePenalty(); err != nil {
		return err
	}
	return nil
}

func (c Config) Distance() (game.Distance, error) {
	switch c.Metric {
	case MetricManhattan, "":
		return game.Manhattan, nil
	case MetricEuclidean:
		return game.Euclidean, nil
	default:
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalid, c.Metric)
	}
}

func (c Config) StructurePenalty() (searcher.StructurePenalty, error) {
	switch c.Structure {
	case StructureConstant, "":
		return searcher.ConstantPenalty(1), nil
	case StructureClusters:
		return searcher.DotClusters, nil
	default:
		return nil, fmt.Errorf("%w: unknown structure penalty %q", ErrInvalid, c.Structure)
	}
}

// Resolver returns the ghost resolver for the configured ghost model.
func (c Config) Resolver() *searcher.Resolver {
	if c.OptimalGhosts {
		return searcher.OptimalGhosts()
	}
	return searcher.SeededGhosts(c.Seed)
}

// Searcher builds the alpha-beta search described by c.
func (c Config) Searcher(options ...searcher.Option) (*searcher.AlphaBeta, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	distance, _ := c.Distance()
	structure, _ := c.StructurePenalty()

	evaluator := searcher.NewEvaluator(
		searcher.WithWeights(c.Weights),
		searcher.WithMetric(distance),
		searcher.WithStructure(structure),
	)
	options = append([]searcher.Option{
		searcher.WithDepth(c.MaxDepth),
		searcher.WithEvaluator(evaluator),
		searcher.WithResolver(c.Resolver()),
	}, options...)
	return searcher.NewAlphaBeta(options...), nil
}

package main

import (
	"flag"
	"fmt"
	"os"

	"pacman/agent"
	"pacman/arena"
	"pacman/config"
	"pacman/engine"
	"pacman/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	layoutPath := flag.String("layout", "", "Layout file (default: built-in classic maze)")
	configPath := flag.String("config", "", "Agent config file in YAML")
	games := flag.Int("games", 5, "Number of games to play")
	ghostKind := flag.String("ghosts", "random", "Ghost behavior: random or chase")
	seed := flag.Uint64("seed", 1, "Seed for random ghosts")
	maxTicks := flag.Int("ticks", engine.MaxTicks, "Tick budget per game")
	verbose := flag.Bool("v", false, "Log every decision")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
	}

	board, err := loadBoard(*layoutPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *layoutPath).Msg("failed to load layout")
	}

	pac, err := agent.FromConfig(cfg, searcher.WithMetrics())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build agent")
	}

	log.Info().Msgf("playing %d games with config %+v", *games, cfg)

	wins, points, ticks := 0, 0, 0
	for i := 0; i < *games; i++ {
		ghosts, err := newGhosts(*ghostKind, *seed+uint64(i))
		if err != nil {
			log.Fatal().Err(err).Msg("bad ghost behavior")
		}

		pac.Reset()
		e := engine.Local(board.Start(), pac, ghosts, engine.WithMaxTicks(*maxTicks))
		metric, _ := e.Run()

		if metric.Outcome == engine.Won {
			wins++
		}
		points += metric.Points
		ticks += metric.Ticks
		log.Info().Msgf("game %d of %d %s: points=%d ticks=%d dots_left=%d duration=%s",
			i+1, *games, metric.Outcome, metric.Points, metric.Ticks, metric.DotsLeft, metric.Duration)
	}

	if *games > 0 {
		log.Info().Msgf("won %d of %d games, average points %.1f, average ticks %.1f",
			wins, *games, float64(points)/float64(*games), float64(ticks)/float64(*games))
	}
}

func loadBoard(path string) (*arena.Board, error) {
	if path == "" {
		return arena.Parse(arena.Classic)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return arena.Parse(string(data))
}

func newGhosts(kind string, seed uint64) (engine.GhostPolicy, error) {
	switch kind {
	case "random":
		return engine.RandomGhosts(seed), nil
	case "chase":
		return engine.ChasingGhosts(), nil
	default:
		return nil, fmt.Errorf("unknown ghost behavior %q", kind)
	}
}

package experiments

import (
	"fmt"

	"minimax/agent"
	"minimax/engine"
	"minimax/experiments/metrics"
	"minimax/game/game2048"
	"minimax/game/tictactoe"
	"minimax/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Run plays every match-up of config and returns the directory the records
// were written to.
func Run(config *Config) (string, error) {
	switch config.Game {
	case GameTicTacToe:
		return runExperiment[*tictactoe.Game, tictactoe.Place](config, tictactoe.New)
	case Game2048:
		return runExperiment[*game2048.Game, game2048.Move](config, game2048.New)
	default:
		return "", fmt.Errorf("%w: unknown game %q", ErrInvalidConfig, config.Game)
	}
}

func runExperiment[S searcher.State[M, S], M comparable](config *Config, newGame func() S) (string, error) {
	agents := make(map[int]metrics.AgentConfig, len(config.Agents))
	for _, a := range config.Agents {
		agents[a.ID] = a
	}
	rng := rand.New(rand.NewSource(uint64(config.Seed)))

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment on %s...", config.Name, config.Game)

	for mi, matchUp := range config.MatchUps {
		config1 := agents[matchUp.First]
		config2 := agents[matchUp.Second]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(config.MatchUps), config1, config2)

		for i := 0; i < config.Games; i++ {
			status, gameMetric, moveMetrics, err := runGame[S, M](newGame(), config1, config2, rng)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with %v", mi+1, len(config.MatchUps), i+1, status)
		}
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	dir, err := writeRecords(config, gameRecords, moveRecords)
	if err != nil {
		return "", err
	}
	log.Info().Str("dir", dir).Msg("stored experiment records")
	return dir, nil
}

func writeRecords(config *Config, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(config.Output, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteConfig(config); err != nil {
		return "", err
	}
	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	return writer.Dir(), nil
}

// runGame plays a single game between two agents from the starting position.
func runGame[S searcher.State[M, S], M comparable](state S, config1, config2 metrics.AgentConfig, rng *rand.Rand) (searcher.Status, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.NewLocalEngine(state, createAgent[S, M](config1, rng.Uint64()), createAgent[S, M](config2, rng.Uint64()))
	return e.Run()
}

func createAgent[S searcher.State[M, S], M comparable](config metrics.AgentConfig, seed uint64) agent.Agent[S, M] {
	if config.Kind == KindRandom {
		return agent.NewRandomAgent[S, M](rand.New(rand.NewSource(seed)))
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	if config.TieBreak == TieBreakRandom {
		return agent.NewShuffledMinimaxAgent[S, M](config.Depth, rand.New(rand.NewSource(seed)), options...)
	}
	return agent.NewMinimaxAgent[S, M](config.Depth, options...)
}

package experiments

import (
	"errors"
	"fmt"

	"minimax/experiments/metrics"
	"minimax/meta"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	GameTicTacToe = "tictactoe"
	Game2048      = "2048"

	KindMinimax = "minimax"
	KindRandom  = "random"

	TieBreakFirst  = "first"
	TieBreakRandom = "random"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

type Config struct {
	Name     string                `yaml:"name" env:"EXPERIMENT_NAME" env-default:"depth"`
	Game     string                `yaml:"game" env:"EXPERIMENT_GAME" env-default:"tictactoe"`
	Games    int                   `yaml:"games" env:"EXPERIMENT_GAMES"` // Per match up
	Seed     int64                 `yaml:"seed" env:"EXPERIMENT_SEED" env-default:"1"`
	Output   string                `yaml:"output" env:"EXPERIMENT_OUTPUT" env-default:"results"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps []MatchUp             `yaml:"match-ups"`
}

// MatchUp pairs two agents by ID. First plays searcher.First.
type MatchUp struct {
	First  int `yaml:"first"`
	Second int `yaml:"second"`
}

// MustLoad - load the experiment configuration from a yaml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}
	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return config.withDefaults()
}

// Default reads the configuration from the environment only. Without agents
// it pairs minimax agents of increasing depth against a random baseline,
// with each side playing first once.
func Default() (*Config, error) {
	config := &Config{}
	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from environment: %w", err)
	}

	if len(config.Agents) == 0 {
		baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom}
		config.Agents = []metrics.AgentConfig{baseline}
		for id, depth := range []int{1, 3, meta.MINIMAX_DEPTH} {
			config.Agents = append(config.Agents, metrics.AgentConfig{
				ID:       id + 1,
				Kind:     KindMinimax,
				Depth:    depth,
				TieBreak: TieBreakRandom,
			})
			config.MatchUps = append(config.MatchUps,
				MatchUp{First: id + 1, Second: baseline.ID},
				MatchUp{First: baseline.ID, Second: id + 1},
			)
		}
	}
	return config.withDefaults()
}

// Usage returns the environment variables understood by Load and Default.
func Usage() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}

func (c *Config) withDefaults() (*Config, error) {
	if c.Games == 0 {
		c.Games = meta.GAMES
	}
	for i := range c.Agents {
		if c.Agents[i].Kind == "" {
			c.Agents[i].Kind = KindMinimax
		}
		if c.Agents[i].TieBreak == "" {
			c.Agents[i].TieBreak = TieBreakFirst
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Game != GameTicTacToe && c.Game != Game2048 {
		return fmt.Errorf("%w: unknown game %q", ErrInvalidConfig, c.Game)
	}
	if c.Games < 0 {
		return fmt.Errorf("%w: negative number of games %d", ErrInvalidConfig, c.Games)
	}

	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, agent.ID)
		}
		ids[agent.ID] = true

		if agent.Kind != KindMinimax && agent.Kind != KindRandom {
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidConfig, agent.ID, agent.Kind)
		}
		if agent.TieBreak != TieBreakFirst && agent.TieBreak != TieBreakRandom {
			return fmt.Errorf("%w: agent %d has unknown tie-break %q", ErrInvalidConfig, agent.ID, agent.TieBreak)
		}
		if agent.Depth < 0 {
			return fmt.Errorf("%w: agent %d has negative depth %d", ErrInvalidConfig, agent.ID, agent.Depth)
		}
	}

	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no match-ups", ErrInvalidConfig)
	}
	for _, m := range c.MatchUps {
		if !ids[m.First] || !ids[m.Second] {
			return fmt.Errorf("%w: match-up %d vs %d refers to an unknown agent", ErrInvalidConfig, m.First, m.Second)
		}
	}
	return nil
}

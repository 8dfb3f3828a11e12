package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"minimax/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	t.Run("tic-tac-toe", func(t *testing.T) {
		config := &Config{
			Name:   "perfect_vs_random",
			Game:   GameTicTacToe,
			Games:  2,
			Seed:   42,
			Output: t.TempDir(),
			Agents: []metrics.AgentConfig{
				{ID: 1, Kind: KindMinimax, Depth: 8, Goroutines: 4, TieBreak: TieBreakRandom},
				{ID: 2, Kind: KindRandom, TieBreak: TieBreakFirst},
			},
			MatchUps: []MatchUp{{First: 1, Second: 2}},
		}
		require.NoError(t, config.Validate())

		dir, err := Run(config)

		require.NoError(t, err)
		require.Equal(t, filepath.Join(config.Output, config.Name), filepath.Dir(dir))

		saved, err := Load(filepath.Join(dir, "config.yml"))
		require.NoError(t, err)
		require.Equal(t, config, saved, "The stored config reproduces the run")

		configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		require.Len(t, configs, 3)
		require.Equal(t, []string{"1", "minimax", "8", "4", "random"}, configs[1])

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 3)
		for _, game := range games[1:] {
			require.Equal(t, []string{"1", "2", "first"}, game[1:4])
			require.NotEqual(t, "finished(win(second))", game[4], "Perfect play should never lose")
		}

		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Greater(t, len(moves), 2*5, "A game of tic-tac-toe lasts at least five moves")
		require.Equal(t, "1", moves[1][0])
		require.Equal(t, "1", moves[1][1])
	})

	t.Run("2048", func(t *testing.T) {
		config := &Config{
			Name:   "slides",
			Game:   Game2048,
			Games:  1,
			Output: t.TempDir(),
			Agents: []metrics.AgentConfig{
				{ID: 1, Kind: KindMinimax, Depth: 1, TieBreak: TieBreakFirst},
				{ID: 2, Kind: KindRandom, TieBreak: TieBreakFirst},
			},
			MatchUps: []MatchUp{{First: 1, Second: 2}},
		}

		dir, err := Run(config)

		require.NoError(t, err)
		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 2)
		require.Equal(t, "second", games[1][3], "The robot places the first tile")
	})

	t.Run("unknown game", func(t *testing.T) {
		_, err := Run(&Config{Game: "go"})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"minimax/meta"
	"minimax/searcher"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errInputClosed = errors.New("input ended before the game finished")

// console plays a game read move by move from the user, printing the best
// moves found by the search before every turn.
type console[S searcher.State[M, S], M comparable] struct {
	state     S
	depth     int
	minimax   *searcher.Minimax[S, M]
	separator string // Between the keys of tied moves

	parse    func(player searcher.Player, input string) (M, error)
	key      func(move M) string
	describe func(err error, input string) string
	result   func(result searcher.GameResult) string
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().Int("depth", meta.MINIMAX_DEPTH, "Search depth of the minimax hints")
	cmd.Flags().Int("goroutines", meta.GO_ROUTINES, "Goroutines used by the minimax hints")
}

func searchFlags(cmd *cobra.Command) (depth int, goroutines int, err error) {
	if depth, err = cmd.Flags().GetInt("depth"); err != nil {
		return 0, 0, err
	}
	if goroutines, err = cmd.Flags().GetInt("goroutines"); err != nil {
		return 0, 0, err
	}
	return depth, goroutines, nil
}

func (c *console[S, M]) run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		player, running := c.state.Status().Player()
		if !running {
			break
		}

		c.printMinimax(out)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return errInputClosed
		}
		fmt.Fprintln(out)
		input := strings.ToUpper(strings.TrimSpace(scanner.Text()))

		move, err := c.parse(player, input)
		if err == nil {
			err = c.state.ApplyMove(move)
		}
		if err != nil {
			log.Debug().Err(err).Str("input", input).Msg("move rejected")
			fmt.Fprintln(out, c.describe(err, input))
			fmt.Fprintln(out)
		}

		fmt.Fprintln(out, c.state)
	}

	result, _ := c.state.Status().Result()
	fmt.Fprintln(out, c.result(result))
	return nil
}

func (c *console[S, M]) printMinimax(out io.Writer) {
	result, _, err := c.minimax.Search(c.state, c.depth)
	if err != nil {
		fmt.Fprintf(out, "Minimax: %v\n\n", err)
		return
	}

	keys := make([]string, len(result.Moves))
	for i, move := range result.Moves {
		keys[i] = c.key(move)
	}
	fmt.Fprintf(out, "Minimax (%v): %s\n\n", result.Outcome, strings.Join(keys, c.separator))
}

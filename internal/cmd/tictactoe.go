package cmd

import (
	"errors"
	"fmt"
	"strings"

	"minimax/game/tictactoe"
	"minimax/searcher"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var ticTacToeInstructions = heredoc.Doc(`
	-----------------------------
	         TIC TAC TOE
	-----------------------------

	Press the following keys and ENTER to fill the blank places:
`)

func TicTacToe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe with minimax hints",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`tictactoe plays a game of tic-tac-toe on the terminal for
			both players, X moving first. Before every turn the best places
			found by the minimax search are listed by their keys, together
			with the outcome they lead to.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			depth, goroutines, err := searchFlags(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ticTacToeInstructions)
			fmt.Fprintln(out, tictactoe.KeyLayout())

			c := &console[*tictactoe.Game, tictactoe.Place]{
				state:     tictactoe.New(),
				depth:     depth,
				minimax:   searcher.NewMinimax[*tictactoe.Game, tictactoe.Place](searcher.WithGoroutines(goroutines)),
				separator: ", ",
				parse: func(_ searcher.Player, input string) (tictactoe.Place, error) {
					return tictactoe.ParseKey(input)
				},
				key:      tictactoe.Place.Key,
				describe: describeTicTacToeError,
				result:   ticTacToeResult,
			}
			return c.run(cmd.InOrStdin(), out)
		},
	}

	addSearchFlags(cmd)
	return cmd
}

func describeTicTacToeError(err error, input string) string {
	switch {
	case errors.Is(err, tictactoe.ErrPlaceAlreadyUsed):
		return "Cannot make that move because that place is already used."
	case errors.Is(err, tictactoe.ErrInvalidKey):
		return fmt.Sprintf("Invalid input: %s\nPlease, enter one of the following: %s.", input, strings.Join(tictactoe.Keys[:], ", "))
	default:
		return fmt.Sprintf("Cannot make that move: %v.", err)
	}
}

func ticTacToeResult(result searcher.GameResult) string {
	if winner, won := result.Winner(); won {
		return tictactoe.Symbol(winner) + " wins."
	}
	return "Draw."
}

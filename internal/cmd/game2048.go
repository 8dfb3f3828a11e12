package cmd

import (
	"errors"
	"fmt"

	"minimax/game/game2048"
	"minimax/searcher"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var game2048Instructions = heredoc.Doc(`
	-----------------------------
	             2048
	-----------------------------

	Enter the robot move in the following format: <place>, <value>
	Where <value> is 2 or 4, and <place> is one the following characters:
`)

var game2048Directions = heredoc.Doc(`
	Enter the human move in the following format: <direction>
	Where <direction> is one of the following characters:

	W: Up
	A: Left
	S: Down
	D: Right
`)

func Game2048() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "2048",
		Short: "Play 2048 against yourself with minimax hints",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`2048 plays both roles of the game on the terminal: the robot
			places a 2 or a 4 on an empty cell, the human slides the tiles.
			The robot wins once the human cannot slide anymore. Before every
			turn the best moves found by the minimax search are listed.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			depth, goroutines, err := searchFlags(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, game2048Instructions)
			fmt.Fprintln(out, game2048.KeyLayout())
			fmt.Fprintln(out, game2048Directions)

			c := &console[*game2048.Game, game2048.Move]{
				state:     game2048.New(),
				depth:     depth,
				minimax:   searcher.NewMinimax[*game2048.Game, game2048.Move](searcher.WithGoroutines(goroutines)),
				separator: "; ",
				parse:     parse2048Move,
				key:       game2048.Key,
				describe:  describe2048Error,
				result: func(searcher.GameResult) string {
					return "The robot wins."
				},
			}
			return c.run(cmd.InOrStdin(), out)
		},
	}

	addSearchFlags(cmd)
	return cmd
}

func parse2048Move(player searcher.Player, input string) (game2048.Move, error) {
	if player == game2048.Human {
		d, err := game2048.ParseDirection(input)
		return game2048.Slide(d), err
	}
	return game2048.ParseSpawn(input)
}

func describe2048Error(err error, input string) string {
	switch {
	case errors.Is(err, game2048.ErrPlaceAlreadyFilled):
		return "Cannot make that move because that place is already used."
	case errors.Is(err, game2048.ErrValueNotAllowed):
		return "Cannot make that move because the given value is not allowed. Use only 2 or 4."
	case errors.Is(err, game2048.ErrDirectionBlocked):
		return "Cannot make that move because the given direction is blocked."
	case errors.Is(err, game2048.ErrInvalidKey):
		return fmt.Sprintf("Invalid input: %s", input)
	default:
		return fmt.Sprintf("Cannot make that move: %v.", err)
	}
}

package agent

import (
	"fmt"

	"minimax/experiments/metrics"
	"minimax/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent[S searcher.State[M, S], M comparable] struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays any legal move.
func NewRandomAgent[S searcher.State[M, S], M comparable](rng *rand.Rand) Agent[S, M] {
	return &randomAgent[S, M]{rng: rng}
}

func (a *randomAgent[S, M]) FindMove(state S) (M, metrics.MoveMetric, error) {
	var move M
	if state.Status().IsFinished() {
		return move, metrics.MoveMetric{}, searcher.ErrAlreadyFinished
	}
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		return move, metrics.MoveMetric{}, searcher.ErrNoLegalMoves
	}

	move = moves[a.rng.Intn(len(moves))]
	return move, metrics.MoveMetric{
		Move: fmt.Sprint(move),
		Ties: len(moves),
	}, nil
}

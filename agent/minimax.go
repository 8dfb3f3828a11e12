package agent

import (
	"fmt"

	"minimax/experiments/metrics"
	"minimax/searcher"

	"golang.org/x/exp/rand"
)

type minimaxAgent[S searcher.State[M, S], M comparable] struct {
	minimax *searcher.Minimax[S, M]
	depth   int
	rng     *rand.Rand // nil plays the first best move
}

// NewMinimaxAgent returns an agent that plays the first of the best moves
// found by a search of the given depth.
func NewMinimaxAgent[S searcher.State[M, S], M comparable](depth int, opts ...searcher.Option) Agent[S, M] {
	return &minimaxAgent[S, M]{
		minimax: searcher.NewMinimax[S, M](opts...),
		depth:   depth,
	}
}

// NewShuffledMinimaxAgent returns an agent that picks uniformly among the
// best moves, so that equal positions do not always lead to the same game.
func NewShuffledMinimaxAgent[S searcher.State[M, S], M comparable](depth int, rng *rand.Rand, opts ...searcher.Option) Agent[S, M] {
	return &minimaxAgent[S, M]{
		minimax: searcher.NewMinimax[S, M](opts...),
		depth:   depth,
		rng:     rng,
	}
}

func (a *minimaxAgent[S, M]) FindMove(state S) (M, metrics.MoveMetric, error) {
	var move M
	result, searchMetric, err := a.minimax.Search(state, a.depth)
	if err != nil {
		return move, metrics.MoveMetric{}, fmt.Errorf("minimax search at depth %d: %w", a.depth, err)
	}

	move = result.Moves[0]
	if a.rng != nil {
		move = result.Moves[a.rng.Intn(len(result.Moves))]
	}

	return move, metrics.MoveMetric{
		Move:         fmt.Sprint(move),
		Outcome:      result.Outcome.String(),
		Ties:         len(result.Moves),
		SearchMetric: searchMetric,
	}, nil
}

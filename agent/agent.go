package agent

import (
	"minimax/experiments/metrics"
	"minimax/searcher"
)

type Agent[S searcher.State[M, S], M comparable] interface {
	// FindMove returns the move to play in state and performance metrics (if collected) from the search
	FindMove(state S) (M, metrics.MoveMetric, error)
}

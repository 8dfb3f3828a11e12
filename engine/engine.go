package engine

import (
	"minimax/experiments/metrics"
	"minimax/searcher"
)

type Engine interface {
	// Run plays a game till it is finished or a max number of moves is reached
	Run() (status searcher.Status, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

package engine

import (
	"errors"
	"fmt"
	"time"

	"minimax/agent"
	"minimax/experiments/metrics"
	"minimax/meta"
	"minimax/searcher"
	"minimax/utils"

	"github.com/rs/zerolog/log"
)

var ErrIllegalMove = errors.New("agent chose an illegal move")

type LocalEngine[S searcher.State[M, S], M comparable] struct {
	State    S
	Agents   [2]agent.Agent[S, M] // Indexed by searcher.Player
	MaxMoves int
}

func NewLocalEngine[S searcher.State[M, S], M comparable](state S, first, second agent.Agent[S, M]) *LocalEngine[S, M] {
	if first == nil || second == nil {
		panic("need an agent for both players")
	}
	return &LocalEngine[S, M]{
		State:    state,
		Agents:   [2]agent.Agent[S, M]{first, second},
		MaxMoves: meta.MAX_MOVES,
	}
}

// Run executes the game loop until the game is finished. A game still
// running after MaxMoves moves is returned with its running status.
func (e *LocalEngine[S, M]) Run() (searcher.Status, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	if player, running := e.State.Status().Player(); running {
		gameMetric.StartingPlayer = player.String()
		log.Info().Msgf("player %s is starting", player)
	}

	moveMetrics := []metrics.MoveMetric{}
	for step := 1; step <= e.MaxMoves; step++ {
		player, running := e.State.Status().Player()
		if !running {
			break
		}

		move, moveMetric, err := e.Agents[player].FindMove(e.State.Clone())
		if err != nil {
			return e.State.Status(), gameMetric, moveMetrics, fmt.Errorf("player %s at move %d: %w", player, step, err)
		}
		if utils.FindIndex(e.State.PossibleMoves(), move) < 0 {
			return e.State.Status(), gameMetric, moveMetrics, fmt.Errorf("%w: player %s played %v at move %d", ErrIllegalMove, player, move, step)
		}
		if err := e.State.ApplyMove(move); err != nil {
			return e.State.Status(), gameMetric, moveMetrics, fmt.Errorf("player %s at move %d: %w", player, step, err)
		}

		moveMetric.Step = step
		moveMetric.Player = player.String()
		moveMetrics = append(moveMetrics, moveMetric)
		log.Debug().Msgf("move %d: player %s played %v (%s)", step, player, move, moveMetric.Outcome)
	}

	status := e.State.Status()
	if !status.IsFinished() {
		log.Warn().Msgf("stopped after %d moves without a result", e.MaxMoves)
	}

	gameMetric.Result = status.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return status, gameMetric, moveMetrics, nil
}

package searcher

import (
	"minimax/experiments/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(o *options)

type options struct {
	goroutines int
	metrics    metrics.Collector
}

// WithGoroutines evaluates the moves of the root position on up to n
// goroutines. The result is the same as for a sequential search.
func WithGoroutines(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.goroutines = n
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = metrics.NewCollector()
	}
}

// Result is the best outcome found for the player to move together with
// every move reaching it, in the order the game enumerated them.
type Result[M comparable] struct {
	Outcome Outcome
	Moves   []M
}

// Minimax explores the full game tree down to a fixed depth. A Minimax must
// not run more than one search at a time.
type Minimax[S State[M, S], M comparable] struct {
	options
}

func NewMinimax[S State[M, S], M comparable](opts ...Option) *Minimax[S, M] {
	m := &Minimax[S, M]{ // Default values
		options: options{
			goroutines: 1,
			metrics:    metrics.NewDummyCollector(),
		},
	}
	for _, opt := range opts {
		opt(&m.options)
	}
	return m
}

// Search runs a sequential search with default options.
func Search[S State[M, S], M comparable](state S, depth int) (Result[M], error) {
	result, _, err := NewMinimax[S, M]().Search(state, depth)
	return result, err
}

// Search finds the best moves for the player to move in state. After depth
// further plies without the game finishing, positions are scored
// heuristically, so depth 0 looks exactly one move ahead.
func (m *Minimax[S, M]) Search(state S, depth int) (Result[M], metrics.SearchMetric, error) {
	if depth < 0 {
		return Result[M]{}, metrics.SearchMetric{}, ErrNegativeDepth
	}

	m.metrics.Start(m.goroutines, depth)
	result, err := m.search(state, depth, m.goroutines > 1)
	metric := m.metrics.Complete()
	if err != nil {
		log.Debug().Err(err).Int("depth", depth).Msg("search failed")
		return Result[M]{}, metric, err
	}

	log.Debug().
		Int("depth", depth).
		Int("goroutines", m.goroutines).
		Stringer("outcome", result.Outcome).
		Int("ties", len(result.Moves)).
		Int("nodes", metric.Nodes).
		Msg("search completed")
	return result, metric, nil
}

func (m *Minimax[S, M]) search(state S, depth int, parallel bool) (Result[M], error) {
	player, running := state.Status().Player()
	if !running {
		return Result[M]{}, ErrAlreadyFinished
	}

	moves := state.PossibleMoves()
	if len(moves) == 0 {
		return Result[M]{}, ErrNoLegalMoves
	}

	var outcomes []Outcome
	var err error
	if parallel {
		outcomes, err = m.evaluateParallel(state, moves, depth)
	} else {
		outcomes, err = m.evaluateSequential(state, moves, depth)
	}
	if err != nil {
		return Result[M]{}, err
	}

	return best(player, moves, outcomes)
}

func (m *Minimax[S, M]) evaluateSequential(state S, moves []M, depth int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(moves))
	for i, move := range moves {
		outcome, err := m.evaluate(state, move, depth)
		if err != nil {
			return nil, err
		}
		outcomes[i] = outcome
	}
	return outcomes, nil
}

// evaluateParallel reports the error of the first failing move in
// enumeration order, like evaluateSequential.
func (m *Minimax[S, M]) evaluateParallel(state S, moves []M, depth int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(moves))
	errs := make([]error, len(moves))

	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i, move := range moves {
		child := state.Clone()
		g.Go(func() error {
			outcomes[i], errs[i] = m.evaluate(child, move, depth)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return outcomes, nil
}

// evaluate plays move on a copy of state and returns the outcome of the
// resulting position.
func (m *Minimax[S, M]) evaluate(state S, move M, depth int) (Outcome, error) {
	child := state.Clone()
	if err := child.ApplyMove(move); err != nil {
		return Outcome{}, &MoveError[M]{Move: move, Err: err}
	}
	m.metrics.AddNode()

	if result, finished := child.Status().Result(); finished {
		m.metrics.AddTerminal()
		return Definite(result, 0), nil
	}

	if depth == 0 {
		m.metrics.AddHorizon()
		return Indefinite(heuristicScore(child)), nil
	}

	r, err := m.search(child, depth-1, false)
	if err != nil {
		return Outcome{}, err
	}
	return r.Outcome.deeper(), nil
}

func best[M comparable](player Player, moves []M, outcomes []Outcome) (Result[M], error) {
	if len(outcomes) == 0 {
		return Result[M]{}, ErrNoLegalMoves
	}

	top := outcomes[0]
	for _, outcome := range outcomes[1:] {
		if Compare(player, outcome, top) > 0 {
			top = outcome
		}
	}

	tied := []M{}
	for i, outcome := range outcomes {
		if Compare(player, outcome, top) == 0 {
			tied = append(tied, moves[i])
		}
	}

	return Result[M]{Outcome: top, Moves: tied}, nil
}

package searcher

// State is the capability contract a game must satisfy to be searched.
// S is the concrete state type itself, so that Clone returns a value the
// search can keep applying moves to.
//
// Status must report Finished exactly once the game is over, and
// PossibleMoves must be non-empty while it is Running. ApplyMove mutates the
// receiver and must leave it untouched when it fails.
type State[M comparable, S any] interface {
	Status() Status
	PossibleMoves() []M
	ApplyMove(M) error
	Clone() S
}

// Scorer is implemented by states that can estimate how favourable a
// position is for First. States without it score 0.
type Scorer interface {
	HeuristicScore() int
}

func heuristicScore(state any) int {
	if scorer, ok := state.(Scorer); ok {
		return scorer.HeuristicScore()
	}
	return 0
}

package searcher

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyFinished = errors.New("game is already finished")
	ErrNoLegalMoves    = errors.New("no possible moves from a running game")
	ErrNegativeDepth   = errors.New("search depth must not be negative")
)

// MoveError reports a candidate move the game refused to apply.
type MoveError[M comparable] struct {
	Move M
	Err  error
}

func (e *MoveError[M]) Error() string {
	return fmt.Sprintf("applying move %v: %v", e.Move, e.Err)
}

func (e *MoveError[M]) Unwrap() error {
	return e.Err
}

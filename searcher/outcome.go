package searcher

import (
	"cmp"
	"fmt"
)

// Outcome is the value of a position found by the search. A definite
// outcome is a forced result reached after distance more plies, an
// indefinite one is a heuristic score taken at the search horizon.
//
// Outcomes have no absolute order, use Compare with a viewpoint.
type Outcome struct {
	definite bool
	result   GameResult
	distance int
	score    int
}

func Definite(result GameResult, distance int) Outcome {
	if distance < 0 {
		panic(fmt.Sprintf("negative outcome distance %d", distance))
	}
	return Outcome{definite: true, result: result, distance: distance}
}

func Indefinite(score int) Outcome {
	return Outcome{score: score}
}

func (o Outcome) IsDefinite() bool {
	return o.definite
}

// Result returns the forced result and its distance in plies. It returns
// false for indefinite outcomes.
func (o Outcome) Result() (GameResult, int, bool) {
	return o.result, o.distance, o.definite
}

// Score returns the heuristic score. It returns false for definite outcomes.
func (o Outcome) Score() (int, bool) {
	return o.score, !o.definite
}

// deeper returns the outcome as seen one ply further up the tree.
func (o Outcome) deeper() Outcome {
	if o.definite {
		o.distance++
	}
	return o
}

func (o Outcome) String() string {
	if o.definite {
		return fmt.Sprintf("%s in %d", o.result, o.distance)
	}
	return fmt.Sprintf("indefinite(%d)", o.score)
}

func (o Outcome) winner() (Player, bool) {
	if !o.definite {
		return First, false
	}
	return o.result.Winner()
}

func (o Outcome) isDraw() bool {
	return o.definite && o.result.IsDraw()
}

// Compare reports whether lhs is worse (-1), equal (0) or better (+1) than
// rhs for the viewpoint player. It returns 0 only for identical outcomes.
//
// A win for the viewpoint beats everything, sooner wins first. A loss is
// worse than everything, later losses first. Between draws the shorter one
// wins. A draw beats a heuristic score only when the score favours the
// opponent. Heuristic scores compare after normalizing to the viewpoint.
func Compare(viewpoint Player, lhs, rhs Outcome) int {
	if lhs == rhs {
		return 0
	}

	normalize := func(score int) int {
		if viewpoint == Second {
			return -score
		}
		return score
	}
	greaterIf := func(b bool) int {
		if b {
			return 1
		}
		return -1
	}

	lhsWinner, lhsWon := lhs.winner()
	rhsWinner, rhsWon := rhs.winner()

	switch {
	case lhsWon && rhsWon && lhsWinner == viewpoint && rhsWinner == viewpoint:
		return cmp.Compare(rhs.distance, lhs.distance)
	case lhsWon && rhsWon && lhsWinner != viewpoint && rhsWinner != viewpoint:
		return cmp.Compare(lhs.distance, rhs.distance)
	case lhsWon:
		return greaterIf(lhsWinner == viewpoint)
	case lhs.isDraw() && rhs.isDraw():
		return cmp.Compare(rhs.distance, lhs.distance)
	case lhs.isDraw() && !rhs.definite:
		return greaterIf(normalize(rhs.score) < 0)
	case !lhs.definite && !rhs.definite:
		return cmp.Compare(normalize(lhs.score), normalize(rhs.score))
	}

	return -Compare(viewpoint, rhs, lhs)
}

package tictactoe

import (
	"testing"

	"minimax/searcher"

	"github.com/stretchr/testify/require"
)

func play(t *testing.T, places ...Place) *Game {
	t.Helper()
	g := New()
	for _, place := range places {
		require.NoError(t, g.ApplyMove(place))
	}
	return g
}

func TestMakeMove(t *testing.T) {
	g := New()

	require.NoError(t, g.MakeMove(searcher.First, Center))
	require.NoError(t, g.MakeMove(searcher.Second, UpperLeft))
	require.NoError(t, g.MakeMove(searcher.First, LowerLeft))

	require.ErrorIs(t, g.MakeMove(searcher.First, UpperRight), ErrWrongPlayer)
	require.ErrorIs(t, g.MakeMove(searcher.Second, UpperLeft), ErrPlaceAlreadyUsed)

	require.NoError(t, g.MakeMove(searcher.Second, Upper))
	require.NoError(t, g.MakeMove(searcher.First, UpperRight))

	require.Equal(t, searcher.Finished(searcher.Win(searcher.First)), g.Status())
	require.ErrorIs(t, g.MakeMove(searcher.Second, LowerRight), ErrInvalidStatus)
	require.Empty(t, g.PossibleMoves(), "A finished game has no moves")
}

func TestDraw(t *testing.T) {
	g := play(t, Center, UpperLeft, UpperRight, LowerLeft, Left, Right, Upper, Lower, LowerRight)

	require.Equal(t, searcher.Finished(searcher.Draw()), g.Status())
}

func TestRevertMove(t *testing.T) {
	g := play(t, Center, UpperLeft)

	require.ErrorIs(t, g.RevertMove(searcher.First, Lower), ErrEmptyPlace)
	require.ErrorIs(t, g.RevertMove(searcher.First, UpperLeft), ErrWrongPlayer)

	require.NoError(t, g.RevertMove(searcher.Second, UpperLeft))
	require.Equal(t, searcher.Running(searcher.Second), g.Status())
	_, used := g.At(UpperLeft)
	require.False(t, used)

	t.Run("reverting a winning move reopens the game", func(t *testing.T) {
		g := play(t, Center, UpperLeft, LowerLeft, Upper, UpperRight)
		require.True(t, g.Status().IsFinished())

		require.NoError(t, g.RevertMove(searcher.First, UpperRight))
		require.Equal(t, searcher.Running(searcher.First), g.Status())
	})
}

func TestPossibleMoves(t *testing.T) {
	g := play(t, Center, UpperLeft)

	require.Equal(t, []Place{Upper, UpperRight, Left, Right, LowerLeft, Lower, LowerRight}, g.PossibleMoves())
}

func TestClone(t *testing.T) {
	g := play(t, Center)
	clone := g.Clone()

	require.NoError(t, clone.ApplyMove(Upper))

	_, used := g.At(Upper)
	require.False(t, used, "Moves on a clone should not affect the game it was cloned from")
	require.Equal(t, searcher.Running(searcher.Second), g.Status())
}

func TestParseKey(t *testing.T) {
	place, err := ParseKey(" s ")
	require.NoError(t, err)
	require.Equal(t, Center, place)

	_, err = ParseKey("P")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestString(t *testing.T) {
	g := play(t, Center, UpperLeft)

	expected := " O |   |   \n" +
		"---+---+---\n" +
		"   | X |   \n" +
		"---+---+---\n" +
		"   |   |   \n"
	require.Equal(t, expected, g.String())
}

func TestSearch(t *testing.T) {
	t.Run("two winning places are both returned", func(t *testing.T) {
		g := play(t, UpperLeft, Center, Upper, Right, Left, LowerRight)

		for _, depth := range []int{1, 2, 3} {
			result, err := searcher.Search[*Game, Place](g, depth)

			require.NoError(t, err)
			require.Equal(t, searcher.Definite(searcher.Win(searcher.First), 0), result.Outcome)
			require.Equal(t, []Place{UpperRight, LowerLeft}, result.Moves)
		}
	})

	t.Run("blocking the only threat", func(t *testing.T) {
		g := play(t, UpperLeft, Center, Upper)

		result, err := searcher.Search[*Game, Place](g, 1)

		require.NoError(t, err)
		require.Equal(t, searcher.Indefinite(0), result.Outcome)
		require.Equal(t, []Place{UpperRight}, result.Moves, "O should not leave an immediate win for X")
	})

	t.Run("depth 0 without a heuristic is indifferent", func(t *testing.T) {
		result, err := searcher.Search[*Game, Place](New(), 0)

		require.NoError(t, err)
		require.Equal(t, searcher.Indefinite(0), result.Outcome)
		require.Len(t, result.Moves, NumPlaces)
	})

	t.Run("perfect play from the start is a draw", func(t *testing.T) {
		result, _, err := searcher.NewMinimax[*Game, Place](searcher.WithGoroutines(4)).Search(New(), 8)

		require.NoError(t, err)
		require.Equal(t, searcher.Definite(searcher.Draw(), 8), result.Outcome)
		require.Len(t, result.Moves, NumPlaces, "Every opening move draws")
	})

	t.Run("finished game is rejected", func(t *testing.T) {
		g := play(t, Center, UpperLeft, LowerLeft, Upper, UpperRight)

		_, err := searcher.Search[*Game, Place](g, 3)

		require.ErrorIs(t, err, searcher.ErrAlreadyFinished)
	})
}

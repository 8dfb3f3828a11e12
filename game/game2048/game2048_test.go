package game2048

import (
	"testing"

	"minimax/searcher"

	"github.com/stretchr/testify/require"
)

func requireValues(t *testing.T, g *Game, expected map[Place]int) {
	t.Helper()
	for i, v := range g.Values() {
		require.Equal(t, expected[Place(i)], v, "value at %v", Place(i))
	}
}

func TestApplyMove(t *testing.T) {
	g := New()

	require.ErrorIs(t, g.ApplyMove(Slide(Up)), ErrWrongPlayer)
	require.ErrorIs(t, g.ApplyMove(Spawn(MustPlaceAt(1, 1), 1)), ErrValueNotAllowed)

	require.NoError(t, g.ApplyMove(Spawn(MustPlaceAt(1, 1), 2)))
	require.NoError(t, g.ApplyMove(Slide(Down)))

	require.ErrorIs(t, g.ApplyMove(Spawn(MustPlaceAt(1, 0), 2)), ErrPlaceAlreadyFilled)
	require.NoError(t, g.ApplyMove(Spawn(MustPlaceAt(2, 3), 2)))
	require.NoError(t, g.ApplyMove(Slide(Down)))

	require.NoError(t, g.ApplyMove(Spawn(MustPlaceAt(2, 3), 4)))
	require.NoError(t, g.ApplyMove(Slide(Left)))

	require.NoError(t, g.ApplyMove(Spawn(MustPlaceAt(1, 3), 2)))
	require.NoError(t, g.ApplyMove(Slide(Down)))

	require.Equal(t, searcher.Running(Robot), g.Status())
	requireValues(t, g, map[Place]int{
		MustPlaceAt(0, 0): 8,
		MustPlaceAt(1, 0): 2,
	})
}

func TestInterleavedSlides(t *testing.T) {
	g := New()

	require.NoError(t, g.ApplyMove(Spawn(MustPlaceAt(1, 0), 4)))
	require.NoError(t, g.ApplyMove(Slide(Left)))
	require.NoError(t, g.ApplyMove(Spawn(MustPlaceAt(1, 1), 2)))
	require.NoError(t, g.ApplyMove(Slide(Left)))
	require.NoError(t, g.ApplyMove(Spawn(MustPlaceAt(0, 3), 4)))
	require.NoError(t, g.ApplyMove(Slide(Down)))

	requireValues(t, g, map[Place]int{
		MustPlaceAt(0, 0): 4,
		MustPlaceAt(0, 1): 2,
		MustPlaceAt(0, 2): 4,
	})
}

func TestSlide(t *testing.T) {
	t.Run("each tile merges at most once", func(t *testing.T) {
		g := FromGrid([GridSize]int{2, 2, 2, 2}, Human)

		require.NoError(t, g.ApplyMove(Slide(Left)))

		requireValues(t, g, map[Place]int{
			MustPlaceAt(0, 0): 4,
			MustPlaceAt(1, 0): 4,
		})
	})

	t.Run("merges start at the head of the line", func(t *testing.T) {
		g := FromGrid([GridSize]int{2, 2, 2, 0}, Human)

		require.NoError(t, g.ApplyMove(Slide(Right)))

		requireValues(t, g, map[Place]int{
			MustPlaceAt(2, 0): 2,
			MustPlaceAt(3, 0): 4,
		})
	})

	t.Run("blocked direction", func(t *testing.T) {
		g := FromGrid([GridSize]int{2}, Human)

		require.ErrorIs(t, g.ApplyMove(Slide(Down)), ErrDirectionBlocked)
		require.ErrorIs(t, g.ApplyMove(Slide(Left)), ErrDirectionBlocked)
		require.Equal(t, searcher.Running(Human), g.Status(), "A blocked slide keeps the turn")
		require.Equal(t, []Move{Slide(Up), Slide(Right)}, g.PossibleMoves())
	})
}

func TestFinish(t *testing.T) {
	t.Run("robot wins when the human is stuck", func(t *testing.T) {
		g := FromGrid([GridSize]int{0, 4, 2, 4, 4, 2, 4, 2, 2, 4, 2, 4, 4, 2, 4, 2}, Robot)

		require.NoError(t, g.ApplyMove(Spawn(MustPlaceAt(0, 0), 2)))

		require.Equal(t, searcher.Finished(searcher.Win(Robot)), g.Status())
		require.Empty(t, g.PossibleMoves())
		require.ErrorIs(t, g.ApplyMove(Slide(Up)), ErrInvalidStatus)
	})

	t.Run("full grid with a merge left is still running", func(t *testing.T) {
		g := FromGrid([GridSize]int{4, 8, 2, 2, 64, 128, 4, 4, 8, 8, 16, 2, 4, 4, 2, 0}, Robot)

		require.NoError(t, g.ApplyMove(Spawn(MustPlaceAt(3, 3), 4)))

		require.Equal(t, searcher.Running(Human), g.Status())
	})
}

func TestPossibleMoves(t *testing.T) {
	grid := [GridSize]int{}
	for i := range grid {
		grid[i] = 2 << (i % 2)
	}
	grid[5] = 0

	g := FromGrid(grid, Robot)

	require.Equal(t, []Move{Spawn(5, 2), Spawn(5, 4)}, g.PossibleMoves())
	require.Equal(t, 1, g.HeuristicScore())
}

func TestPlace(t *testing.T) {
	p, err := PlaceAt(2, 1)
	require.NoError(t, err)
	require.Equal(t, Place(6), p)

	x, y := p.XY()
	require.Equal(t, 2, x)
	require.Equal(t, 1, y)

	_, err = PlaceAt(4, 0)
	require.ErrorIs(t, err, ErrInvalidPlace)

	_, err = MustPlaceAt(0, 3).Step(Up)
	require.ErrorIs(t, err, ErrInvalidPlace)
}

func TestParse(t *testing.T) {
	d, err := ParseDirection(" a ")
	require.NoError(t, err)
	require.Equal(t, Left, d)

	_, err = ParseDirection("up")
	require.ErrorIs(t, err, ErrInvalidKey)

	p, err := ParsePlace("1")
	require.NoError(t, err)
	require.Equal(t, MustPlaceAt(0, 3), p, "The top keyboard row is the top grid row")

	move, err := ParseSpawn("v, 4")
	require.NoError(t, err)
	require.Equal(t, Spawn(MustPlaceAt(3, 0), 4), move)
	require.Equal(t, "V, 4", Key(move))
	require.Equal(t, "W", Key(Slide(Up)))

	_, err = ParseSpawn("v, 8")
	require.ErrorIs(t, err, ErrValueNotAllowed)

	_, err = ParseSpawn("v")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestString(t *testing.T) {
	g := FromGrid([GridSize]int{2}, Human)

	border := "+---+---+---+---+\n"
	spacer := "|   +   +   +   |\n"
	empty := "|               |\n"
	expected := border +
		empty + spacer +
		empty + spacer +
		empty + spacer +
		"| 2             |\n" +
		border
	require.Equal(t, expected, g.String())
}

func TestSearch(t *testing.T) {
	t.Run("robot takes the finishing spawn", func(t *testing.T) {
		g := FromGrid([GridSize]int{0, 4, 2, 4, 4, 2, 4, 2, 2, 4, 2, 4, 4, 2, 4, 2}, Robot)

		result, err := searcher.Search[*Game, Move](g, 0)

		require.NoError(t, err)
		require.Equal(t, searcher.Definite(searcher.Win(Robot), 0), result.Outcome)
		require.Equal(t, []Move{Spawn(0, 2)}, result.Moves)
	})

	t.Run("human keeps the most room", func(t *testing.T) {
		g := FromGrid([GridSize]int{2, 2}, Human)

		result, err := searcher.Search[*Game, Move](g, 0)

		require.NoError(t, err)
		require.Equal(t, searcher.Indefinite(15), result.Outcome)
		require.Equal(t, []Move{Slide(Left), Slide(Right)}, result.Moves)
	})

	t.Run("search leaves the position untouched", func(t *testing.T) {
		g := FromGrid([GridSize]int{2, 2}, Human)
		before := g.Values()

		_, _, err := searcher.NewMinimax[*Game, Move](searcher.WithGoroutines(2)).Search(g, 2)

		require.NoError(t, err)
		require.Equal(t, before, g.Values())
		require.Equal(t, searcher.Running(Human), g.Status())
	})
}

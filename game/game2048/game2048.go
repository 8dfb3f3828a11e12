package game2048

import (
	"errors"
	"fmt"

	"minimax/searcher"
)

const (
	GridWidth  = 4
	GridHeight = 4
	GridSize   = GridWidth * GridHeight
)

// Roles in the search: the human slides tiles, the robot places new ones.
// The robot wins once the human cannot move.
const (
	Human = searcher.First
	Robot = searcher.Second
)

var (
	ErrInvalidPlace       = errors.New("place is outside the grid")
	ErrInvalidStatus      = errors.New("game status does not allow moves")
	ErrWrongPlayer        = errors.New("wrong player")
	ErrPlaceAlreadyFilled = errors.New("place is already filled")
	ErrValueNotAllowed    = errors.New("value not allowed")
	ErrDirectionBlocked   = errors.New("direction is blocked")
)

// Place indexes the grid row by row, starting at the lower left corner.
type Place int

func PlaceAt(x, y int) (Place, error) {
	if x < 0 || x >= GridWidth || y < 0 || y >= GridHeight {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrInvalidPlace, x, y)
	}
	return Place(y*GridWidth + x), nil
}

// MustPlaceAt is PlaceAt for coordinates known to be valid.
func MustPlaceAt(x, y int) Place {
	p, err := PlaceAt(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Place) XY() (int, int) {
	return int(p) % GridWidth, int(p) / GridWidth
}

func (p Place) String() string {
	x, y := p.XY()
	return fmt.Sprintf("(%d, %d)", x, y)
}

// Step returns the neighbouring place in direction d.
func (p Place) Step(d Direction) (Place, error) {
	x, y := p.XY()
	switch d {
	case Up:
		y++
	case Down:
		y--
	case Left:
		x--
	case Right:
		x++
	}
	return PlaceAt(x, y)
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var Directions = []Direction{Up, Down, Left, Right}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	return [...]string{"up", "down", "left", "right"}[d]
}

// Move is either a human slide or a robot tile placement.
type Move struct {
	Player    searcher.Player
	Direction Direction // Human moves only
	Place     Place     // Robot moves only
	Value     int       // Robot moves only
}

func Slide(d Direction) Move {
	return Move{Player: Human, Direction: d}
}

func Spawn(place Place, value int) Move {
	return Move{Player: Robot, Place: place, Value: value}
}

func (m Move) String() string {
	if m.Player == Human {
		return m.Direction.String()
	}
	return fmt.Sprintf("%d at %v", m.Value, m.Place)
}

type Game struct {
	status searcher.Status
	grid   [GridSize]int
}

// New returns an empty grid with the robot to move.
func New() *Game {
	return &Game{status: searcher.Running(Robot)}
}

// FromGrid returns a position with the given tiles, listed from the lower
// left corner row by row, and the given player to move.
func FromGrid(grid [GridSize]int, toMove searcher.Player) *Game {
	return &Game{status: searcher.Running(toMove), grid: grid}
}

func (g *Game) Status() searcher.Status {
	return g.status
}

func (g *Game) Value(place Place) int {
	return g.grid[place]
}

func (g *Game) Values() [GridSize]int {
	return g.grid
}

func (g *Game) PossibleMoves() []Move {
	player, running := g.status.Player()
	if !running {
		return []Move{}
	}

	moves := []Move{}
	if player == Human {
		for _, d := range Directions {
			if g.canSlide(d) {
				moves = append(moves, Slide(d))
			}
		}
		return moves
	}

	for i, v := range g.grid {
		if v == 0 {
			moves = append(moves, Spawn(Place(i), 2), Spawn(Place(i), 4))
		}
	}
	return moves
}

func (g *Game) ApplyMove(move Move) error {
	player, running := g.status.Player()
	if !running {
		return fmt.Errorf("%w: %v", ErrInvalidStatus, g.status)
	}
	if move.Player != player {
		return fmt.Errorf("%w: %v to move", ErrWrongPlayer, player)
	}

	if player == Human {
		return g.slide(move.Direction)
	}
	return g.spawn(move.Place, move.Value)
}

// HeuristicScore counts the empty cells: room to move favours the human.
func (g *Game) HeuristicScore() int {
	empty := 0
	for _, v := range g.grid {
		if v == 0 {
			empty++
		}
	}
	return empty
}

func (g *Game) Clone() *Game {
	clone := *g
	return &clone
}

func (g *Game) canSlide(d Direction) bool {
	for i, v := range g.grid {
		if v == 0 {
			continue
		}
		next, err := Place(i).Step(d)
		if err != nil {
			continue
		}
		if w := g.grid[next]; w == 0 || w == v {
			return true
		}
	}
	return false
}

// lineHeads returns the edge places tiles move towards when sliding in d.
func lineHeads(d Direction) []Place {
	heads := make([]Place, 0, GridWidth)
	switch d {
	case Up, Down:
		y := 0
		if d == Up {
			y = GridHeight - 1
		}
		for x := 0; x < GridWidth; x++ {
			heads = append(heads, MustPlaceAt(x, y))
		}
	default:
		x := 0
		if d == Right {
			x = GridWidth - 1
		}
		for y := 0; y < GridHeight; y++ {
			heads = append(heads, MustPlaceAt(x, y))
		}
	}
	return heads
}

// slide packs every line towards its head, merging equal neighbours once.
func (g *Game) slide(d Direction) error {
	back := d.Opposite()
	changed := false

	for _, head := range lineHeads(d) {
		line := []Place{head}
		for p, err := head.Step(back); err == nil; p, err = p.Step(back) {
			line = append(line, p)
		}

		packed := make([]int, 0, len(line))
		merged := false
		for _, p := range line {
			v := g.grid[p]
			if v == 0 {
				continue
			}
			if n := len(packed); n > 0 && !merged && packed[n-1] == v {
				packed[n-1] = 2 * v
				merged = true
				continue
			}
			packed = append(packed, v)
			merged = false
		}

		for i, p := range line {
			v := 0
			if i < len(packed) {
				v = packed[i]
			}
			if g.grid[p] != v {
				changed = true
			}
			g.grid[p] = v
		}
	}

	if !changed {
		return fmt.Errorf("%w: %v", ErrDirectionBlocked, d)
	}
	g.status = searcher.Running(Robot)
	return nil
}

func (g *Game) spawn(place Place, value int) error {
	if place < 0 || place >= GridSize {
		return fmt.Errorf("%w: %d", ErrInvalidPlace, int(place))
	}
	if g.grid[place] != 0 {
		return fmt.Errorf("%w: %v", ErrPlaceAlreadyFilled, place)
	}
	if value != 2 && value != 4 {
		return fmt.Errorf("%w: %d", ErrValueNotAllowed, value)
	}

	g.grid[place] = value
	g.status = searcher.Running(Human)
	if len(g.PossibleMoves()) == 0 {
		g.status = searcher.Finished(searcher.Win(Robot))
	}
	return nil
}

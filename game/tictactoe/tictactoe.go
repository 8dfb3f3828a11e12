package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"minimax/searcher"
)

// Place is one of the nine cells, numbered row by row from the upper left.
type Place int

const (
	UpperLeft Place = iota
	Upper
	UpperRight
	Left
	Center
	Right
	LowerLeft
	Lower
	LowerRight
)

const NumPlaces = 9

var placeNames = [NumPlaces]string{
	"upper-left", "upper", "upper-right",
	"left", "center", "right",
	"lower-left", "lower", "lower-right",
}

// Keys maps each place to the keyboard key laid out like the board.
var Keys = [NumPlaces]string{
	"Q", "W", "E",
	"A", "S", "D",
	"Z", "X", "C",
}

var (
	ErrInvalidStatus    = errors.New("game status does not allow moves")
	ErrWrongPlayer      = errors.New("wrong player")
	ErrPlaceAlreadyUsed = errors.New("place is already used")
	ErrEmptyPlace       = errors.New("place is empty")
	ErrInvalidKey       = errors.New("invalid place key")

	lines = [][3]Place{
		{UpperLeft, Upper, UpperRight},
		{Left, Center, Right},
		{LowerLeft, Lower, LowerRight},
		{UpperLeft, Left, LowerLeft},
		{Upper, Center, Lower},
		{UpperRight, Right, LowerRight},
		{UpperLeft, Center, LowerRight},
		{UpperRight, Center, LowerLeft},
	}
)

func (p Place) String() string {
	if p < 0 || p >= NumPlaces {
		return fmt.Sprintf("place(%d)", int(p))
	}
	return placeNames[p]
}

func (p Place) Key() string {
	return Keys[p]
}

// ParseKey returns the place for a keyboard key, case-insensitively.
func ParseKey(key string) (Place, error) {
	key = strings.ToUpper(strings.TrimSpace(key))
	for i, k := range Keys {
		if k == key {
			return Place(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
}

// Symbol returns the mark a player puts on the board, X for First.
func Symbol(player searcher.Player) string {
	if player == searcher.First {
		return "X"
	}
	return "O"
}

type cell struct {
	player searcher.Player
	used   bool
}

// Game is a tic-tac-toe position. X (searcher.First) moves first.
type Game struct {
	status searcher.Status
	grid   [NumPlaces]cell
}

func New() *Game {
	return &Game{status: searcher.Running(searcher.First)}
}

func (g *Game) Status() searcher.Status {
	return g.status
}

// At returns the player who marked place, or false if it is empty.
func (g *Game) At(place Place) (searcher.Player, bool) {
	c := g.grid[place]
	return c.player, c.used
}

// PossibleMoves returns the empty places while the game is running.
func (g *Game) PossibleMoves() []Place {
	if g.status.IsFinished() {
		return []Place{}
	}

	moves := make([]Place, 0, NumPlaces)
	for i, c := range g.grid {
		if !c.used {
			moves = append(moves, Place(i))
		}
	}
	return moves
}

// MakeMove marks place for player, who must be the player to move.
func (g *Game) MakeMove(player searcher.Player, place Place) error {
	toMove, running := g.status.Player()
	if !running {
		return fmt.Errorf("%w: %v", ErrInvalidStatus, g.status)
	}
	if place < 0 || place >= NumPlaces {
		panic(fmt.Sprintf("%d is not a valid place", int(place)))
	}
	if owner, used := g.At(place); used {
		return fmt.Errorf("%w: %v taken by %s", ErrPlaceAlreadyUsed, place, Symbol(owner))
	}
	if toMove != player {
		return fmt.Errorf("%w: %s to move", ErrWrongPlayer, Symbol(toMove))
	}

	g.grid[place] = cell{player: player, used: true}
	g.updateStatus(player.Other())
	return nil
}

// ApplyMove marks place for the player to move.
func (g *Game) ApplyMove(place Place) error {
	toMove, running := g.status.Player()
	if !running {
		return fmt.Errorf("%w: %v", ErrInvalidStatus, g.status)
	}
	return g.MakeMove(toMove, place)
}

// RevertMove clears a place marked by player and gives the turn back to them.
func (g *Game) RevertMove(player searcher.Player, place Place) error {
	owner, used := g.At(place)
	if !used {
		return fmt.Errorf("%w: %v", ErrEmptyPlace, place)
	}
	if owner != player {
		return fmt.Errorf("%w: %v marked by %s", ErrWrongPlayer, place, Symbol(owner))
	}

	g.grid[place] = cell{}
	g.updateStatus(player)
	return nil
}

func (g *Game) Clone() *Game {
	clone := *g
	return &clone
}

func (g *Game) updateStatus(next searcher.Player) {
	if result, over := g.checkWin(); over {
		g.status = searcher.Finished(result)
	} else {
		g.status = searcher.Running(next)
	}
}

func (g *Game) checkWin() (searcher.GameResult, bool) {
	for _, line := range lines {
		first := g.grid[line[0]]
		if first.used && g.grid[line[1]] == first && g.grid[line[2]] == first {
			return searcher.Win(first.player), true
		}
	}

	for _, c := range g.grid {
		if !c.used {
			return searcher.GameResult{}, false
		}
	}
	return searcher.Draw(), true
}

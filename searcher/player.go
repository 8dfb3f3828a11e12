package searcher

import "fmt"

// Player identifies one of the two sides of a game. Heuristic scores are
// always expressed from First's perspective.
type Player int

const (
	First Player = iota
	Second
)

func (p Player) Other() Player {
	if p == First {
		return Second
	}
	return First
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// GameResult is the outcome of a finished game. The zero value is a draw.
type GameResult struct {
	winner Player
	won    bool
}

func Draw() GameResult {
	return GameResult{}
}

func Win(winner Player) GameResult {
	return GameResult{winner: winner, won: true}
}

// Winner returns the winning player, or false for a draw.
func (r GameResult) Winner() (Player, bool) {
	return r.winner, r.won
}

func (r GameResult) IsDraw() bool {
	return !r.won
}

func (r GameResult) String() string {
	if !r.won {
		return "draw"
	}
	return "win(" + r.winner.String() + ")"
}

// Status reports whether a game is still running, and for whom, or how it
// finished. Values are comparable with ==.
type Status struct {
	finished bool
	player   Player
	result   GameResult
}

func Running(toMove Player) Status {
	return Status{player: toMove}
}

func Finished(result GameResult) Status {
	return Status{finished: true, result: result}
}

// Player returns the player to move, or false once the game is finished.
func (s Status) Player() (Player, bool) {
	return s.player, !s.finished
}

// Result returns the final result, or false while the game is running.
func (s Status) Result() (GameResult, bool) {
	return s.result, s.finished
}

func (s Status) IsFinished() bool {
	return s.finished
}

func (s Status) String() string {
	if s.finished {
		return "finished(" + s.result.String() + ")"
	}
	return "running(" + s.player.String() + ")"
}

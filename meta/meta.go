// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// MINIMAX_DEPTH defines the search depth of the interactive opponents.
const MINIMAX_DEPTH = 5

// MAX_MOVES defines the number of moves after which a game is stopped.
const MAX_MOVES = 2000

// GAMES defines the number of games per match-up.
const GAMES = 10

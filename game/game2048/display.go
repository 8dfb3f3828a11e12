package game2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidKey = errors.New("invalid key")

// placeKeys lists the keyboard rows from the top of the grid down.
var placeKeys = [GridHeight]string{"1234", "QWER", "ASDF", "ZXCV"}

var directionKeys = map[string]Direction{"W": Up, "A": Left, "S": Down, "D": Right}

// ParseDirection reads a human move typed as W, A, S or D.
func ParseDirection(key string) (Direction, error) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if d, ok := directionKeys[key]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
}

// ParsePlace reads a cell typed with the key at its position on the keyboard.
func ParsePlace(key string) (Place, error) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if len(key) == 1 {
		for row, keys := range placeKeys {
			if x := strings.Index(keys, key); x >= 0 {
				return MustPlaceAt(x, GridHeight-1-row), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
}

// ParseSpawn reads a robot move typed as "<place>, <value>".
func ParseSpawn(input string) (Move, error) {
	fields := strings.Split(input, ",")
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidKey, input)
	}

	place, err := ParsePlace(fields[0])
	if err != nil {
		return Move{}, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || (value != 2 && value != 4) {
		return Move{}, fmt.Errorf("%w: %q", ErrValueNotAllowed, strings.TrimSpace(fields[1]))
	}
	return Spawn(place, value), nil
}

// Key returns the keys that describe move in the input format.
func Key(move Move) string {
	if move.Player == Human {
		for k, d := range directionKeys {
			if d == move.Direction {
				return k
			}
		}
	}
	x, y := move.Place.XY()
	return fmt.Sprintf("%c, %d", placeKeys[GridHeight-1-y][x], move.Value)
}

// KeyLayout renders the place keys in grid layout.
func KeyLayout() string {
	var b strings.Builder
	b.WriteString("+---+---+---+---+\n")
	for row, keys := range placeKeys {
		if row > 0 {
			b.WriteString("|   +   +   +   |\n")
		}
		b.WriteString("| " + strings.Join(strings.Split(keys, ""), "   ") + " |\n")
	}
	b.WriteString("+---+---+---+---+\n")
	return b.String()
}

func (g *Game) String() string {
	digits := 1
	for _, v := range g.grid {
		digits = max(digits, len(strconv.Itoa(v)))
	}
	width := digits + 2

	border := "+" + strings.Repeat(strings.Repeat("-", width)+"+", GridWidth-1) + strings.Repeat("-", width) + "+\n"
	spacer := "|" + strings.Repeat(strings.Repeat(" ", width)+"+", GridWidth-1) + strings.Repeat(" ", width) + "|\n"

	var b strings.Builder
	b.WriteString(border)
	for y := GridHeight - 1; y >= 0; y-- {
		b.WriteString("|")
		for x := 0; x < GridWidth; x++ {
			if x > 0 {
				b.WriteString(" ")
			}
			label := ""
			if v := g.grid[MustPlaceAt(x, y)]; v > 0 {
				label = strconv.Itoa(v)
			}
			pad := width - len(label)
			b.WriteString(strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2))
		}
		b.WriteString("|\n")
		if y > 0 {
			b.WriteString(spacer)
		}
	}
	b.WriteString(border)
	return b.String()
}

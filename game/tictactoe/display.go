package tictactoe

import (
	"fmt"
	"strings"
)

func (g *Game) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}
		cells := make([]any, 3)
		for col := range cells {
			cells[col] = " "
			if player, used := g.At(Place(row*3 + col)); used {
				cells[col] = Symbol(player)
			}
		}
		fmt.Fprintf(&b, " %s | %s | %s \n", cells...)
	}
	return b.String()
}

// KeyLayout renders the keyboard keys in board layout.
func KeyLayout() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}
		fmt.Fprintf(&b, " %s | %s | %s \n", Keys[row*3], Keys[row*3+1], Keys[row*3+2])
	}
	return b.String()
}

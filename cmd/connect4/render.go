package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"connect4/internal/game"
)

var (
	humanDisc = color.New(color.FgRed, color.Bold).Sprint("●")
	botDisc   = color.New(color.FgGreen, color.Bold).Sprint("●")
	emptyDisc = color.New(color.FgBlue).Sprint("·")
)

func disc(p game.Player) string {
	switch p {
	case game.Player1:
		return humanDisc
	case game.Player2:
		return botDisc
	}
	return emptyDisc
}

// render draws the board top row first with a column header.
func render(w io.Writer, b *game.Board) {
	header := make([]string, b.Cols())
	for col := range header {
		header[col] = fmt.Sprint(col)
	}
	fmt.Fprintln(w, " "+strings.Join(header, " "))

	for row := b.Rows() - 1; row >= 0; row-- {
		cells := make([]string, b.Cols())
		for col := range cells {
			cells[col] = disc(b.At(row, col))
		}
		fmt.Fprintln(w, "|"+strings.Join(cells, "|")+"|")
	}
}

package eval

import "connect4/internal/game"

// Window is a run of WinLength cells along one axis.
type Window [game.WinLength]game.Player

func (w Window) count(p game.Player) int {
	n := 0
	for _, c := range w {
		if c == p {
			n++
		}
	}
	return n
}

// Windows calls fn for every window on the board: rows, columns and both
// diagonals, each exactly once.
func Windows(b *game.Board, fn func(Window)) {
	for _, d := range game.Directions {
		for row := 0; row < b.Rows(); row++ {
			for col := 0; col < b.Cols(); col++ {
				if !b.InBounds(row+d.DRow*(game.WinLength-1), col+d.DCol*(game.WinLength-1)) {
					continue
				}
				var w Window
				for i := range w {
					w[i] = b.At(row+d.DRow*i, col+d.DCol*i)
				}
				fn(w)
			}
		}
	}
}

// Package eval scores a board from one player's point of view.
package eval

import "connect4/internal/game"

const (
	FourScore  = 100
	ThreeScore = 10
	TwoScore   = 5

	OpponentThreePenalty = 90
	OpponentTwoPenalty   = 10

	CenterWeight = 3
)

func ScoreWindow(w Window, player game.Player) int {
	own := w.count(player)
	empty := w.count(game.Empty)

	switch {
	case own == 4:
		return FourScore
	case own == 3 && empty == 1:
		return ThreeScore
	case own == 2 && empty == 2:
		return TwoScore
	}
	return 0
}

// PenalizeWindow weighs an opponent's near-win just below a completed line
// of our own.
func PenalizeWindow(w Window, opponent game.Player) int {
	theirs := w.count(opponent)
	empty := w.count(game.Empty)

	switch {
	case theirs == 3 && empty == 1:
		return OpponentThreePenalty
	case theirs == 2 && empty == 2:
		return OpponentTwoPenalty
	}
	return 0
}

func WindowScore(w Window, player game.Player) int {
	return ScoreWindow(w, player) - PenalizeWindow(w, player.Opponent())
}

// Evaluate sums WindowScore over every window and adds CenterWeight for
// each of player's pieces in the center column.
func Evaluate(b *game.Board, player game.Player) int {
	score := 0
	Windows(b, func(w Window) {
		score += WindowScore(w, player)
	})

	center := b.Cols() / 2
	for row := 0; row < b.Rows(); row++ {
		if b.At(row, center) == player {
			score += CenterWeight
		}
	}
	return score
}

package bot

import (
	"fmt"

	"connect4/internal/eval"
	"connect4/internal/game"
)

// greedy plays each open column one ply deep and keeps the first column
// with the strictly highest evaluation.
func greedy(board *game.Board, player game.Player) (int, error) {
	bestCol := -1
	bestScore := 0

	for _, col := range board.OpenColumns() {
		testBoard := board.Clone()
		if _, err := testBoard.Place(col, player); err != nil {
			return -1, fmt.Errorf("%w: %v", ErrSearchInvariant, err)
		}
		score := eval.Evaluate(testBoard, player)
		if bestCol == -1 || score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	if bestCol == -1 {
		return -1, ErrNoMoves
	}
	return bestCol, nil
}

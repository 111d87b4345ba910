package bot

import (
	"fmt"
	"sync"

	"connect4/internal/eval"
	"connect4/internal/game"
)

// Search runs a depth-limited minimax for player with player to move and
// returns the chosen column with its score.
func Search(board *game.Board, depth int, player game.Player) (int, Score, error) {
	return minimax(board, depth, true, player)
}

func leafScore(board *game.Board, player game.Player) Score {
	if board.IsTerminal() {
		switch {
		case board.HasWon(player.Opponent()):
			return LossScore()
		case board.HasWon(player):
			return WinScore()
		}
		return DrawScore()
	}
	return HeuristicScore(eval.Evaluate(board, player))
}

// better reports whether candidate replaces best for the side to move.
// Strict comparison keeps the earliest column on ties.
func better(candidate, best Score, maximizing bool) bool {
	if maximizing {
		return best.Less(candidate)
	}
	return candidate.Less(best)
}

func minimax(board *game.Board, ply int, maximizing bool, player game.Player) (int, Score, error) {
	if ply == 0 || board.IsTerminal() {
		return -1, leafScore(board, player), nil
	}

	cols := board.OpenColumns()
	if len(cols) == 0 {
		return -1, Score{}, ErrSearchInvariant
	}

	mover := player
	if !maximizing {
		mover = player.Opponent()
	}

	bestCol := -1
	var best Score
	for _, col := range cols {
		child := board.Clone()
		if _, err := child.Place(col, mover); err != nil {
			return -1, Score{}, fmt.Errorf("%w: %v", ErrSearchInvariant, err)
		}
		_, score, err := minimax(child, ply-1, !maximizing, player)
		if err != nil {
			return -1, Score{}, err
		}
		if bestCol == -1 || better(score, best, maximizing) {
			best = score
			bestCol = col
		}
	}

	return bestCol, best, nil
}

// rootMinimax searches the top-level branches on e.workers goroutines. The
// result matches a sequential Search.
func (e *Engine) rootMinimax(board *game.Board, depth int) (int, Score, error) {
	if e.workers <= 1 || depth <= 1 {
		return Search(board, depth, e.player)
	}

	cols := board.OpenColumns()
	if len(cols) == 0 {
		return -1, Score{}, ErrSearchInvariant
	}

	scores := make([]Score, len(cols))
	errs := make([]error, len(cols))
	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i, col := range cols {
		wg.Add(1)
		go func(i, col int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			child := board.Clone()
			if _, err := child.Place(col, e.player); err != nil {
				errs[i] = fmt.Errorf("%w: %v", ErrSearchInvariant, err)
				return
			}
			_, scores[i], errs[i] = minimax(child, depth-1, false, e.player)
		}(i, col)
	}
	wg.Wait()

	bestCol := -1
	var best Score
	for i, col := range cols {
		if errs[i] != nil {
			return -1, Score{}, errs[i]
		}
		if bestCol == -1 || better(scores[i], best, true) {
			best = scores[i]
			bestCol = col
		}
	}
	return bestCol, best, nil
}

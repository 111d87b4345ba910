package bot

import "connect4/internal/game"

// random draws uniformly from the open columns only, so a full column is
// never proposed.
func (e *Engine) random(board *game.Board) (int, error) {
	cols := board.OpenColumns()
	if len(cols) == 0 {
		return -1, ErrNoMoves
	}

	e.mu.Lock()
	i := e.rng.Intn(len(cols))
	e.mu.Unlock()

	return cols[i], nil
}

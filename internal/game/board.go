package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	DefaultRows = 6
	DefaultCols = 7
	WinLength   = 4
)

type Player int

const (
	Empty   Player = 0
	Player1 Player = 1
	Player2 Player = 2
)

// Opponent returns the other player. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Board is a rows x cols grid stored row-major, row 0 at the bottom.
type Board struct {
	rows  int
	cols  int
	cells []Player
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 || (rows < WinLength && cols < WinLength) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Player, rows*cols),
	}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// At returns the cell at row, col. Row 0 is the bottom.
func (b *Board) At(row, col int) Player {
	return b.cells[row*b.cols+col]
}

// InBounds reports whether row, col lies on the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) set(row, col int, p Player) {
	b.cells[row*b.cols+col] = p
}

// Place drops player into column and returns the row it landed on.
func (b *Board) Place(column int, player Player) (int, error) {
	if !player.Valid() {
		return -1, fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}
	if column < 0 || column >= b.cols {
		return -1, fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	}

	for row := 0; row < b.rows; row++ {
		if b.At(row, column) == Empty {
			b.set(row, column, player)
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: %d", ErrColumnFull, column)
}

func (b *Board) IsColumnOpen(column int) bool {
	if column < 0 || column >= b.cols {
		return false
	}
	return b.At(b.rows-1, column) == Empty
}

// OpenColumns lists playable columns in ascending order.
func (b *Board) OpenColumns() []int {
	valid := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.IsColumnOpen(col) {
			valid = append(valid, col)
		}
	}
	return valid
}

func (b *Board) Full() bool {
	for col := 0; col < b.cols; col++ {
		if b.IsColumnOpen(col) {
			return false
		}
	}
	return true
}

func (b *Board) HasWon(player Player) bool {
	if player == Empty {
		return false
	}

	for _, d := range Directions {
		for row := 0; row < b.rows; row++ {
			for col := 0; col < b.cols; col++ {
				if b.runOf(row, col, d, player) {
					return true
				}
			}
		}
	}

	return false
}

// runOf reports whether WinLength cells starting at row, col along d all
// belong to player.
func (b *Board) runOf(row, col int, d Direction, player Player) bool {
	if !b.InBounds(row+d.DRow*(WinLength-1), col+d.DCol*(WinLength-1)) {
		return false
	}
	for i := 0; i < WinLength; i++ {
		if b.At(row+d.DRow*i, col+d.DCol*i) != player {
			return false
		}
	}
	return true
}

// Winner returns the player holding a completed line, if any.
func (b *Board) Winner() (Player, bool) {
	if b.HasWon(Player1) {
		return Player1, true
	}
	if b.HasWon(Player2) {
		return Player2, true
	}
	return Empty, false
}

func (b *Board) IsTerminal() bool {
	return len(b.OpenColumns()) == 0 || b.HasWon(Player1) || b.HasWon(Player2)
}

func (b *Board) Clone() *Board {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid top row first, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.rows - 1; row >= 0; row-- {
		for col := 0; col < b.cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte('0' + b.At(row, col)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MarshalJSON encodes the grid as rows, bottom row first.
func (b *Board) MarshalJSON() ([]byte, error) {
	grid := make([][]Player, b.rows)
	for row := 0; row < b.rows; row++ {
		grid[row] = b.cells[row*b.cols : (row+1)*b.cols]
	}
	return json.Marshal(grid)
}

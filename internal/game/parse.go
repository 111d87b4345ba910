package game

import (
	"fmt"
	"strings"
)

// ParseBoard reads the String format: one line per row, top row first,
// cells as 0/1/2 optionally separated by spaces. Floating pieces are
// rejected.
func ParseBoard(s string) (*Board, error) {
	var lines [][]Player
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		row := make([]Player, 0, len(line))
		for _, r := range line {
			switch r {
			case '0', '.':
				row = append(row, Empty)
			case '1':
				row = append(row, Player1)
			case '2':
				row = append(row, Player2)
			default:
				return nil, fmt.Errorf("%w: unexpected cell %q", ErrInvalidBoard, r)
			}
		}
		if len(lines) > 0 && len(row) != len(lines[0]) {
			return nil, fmt.Errorf("%w: ragged row %d", ErrInvalidBoard, len(lines))
		}
		lines = append(lines, row)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidBoard)
	}

	b, err := NewBoard(len(lines), len(lines[0]))
	if err != nil {
		return nil, err
	}
	for i, cells := range lines {
		row := b.rows - 1 - i
		for col, p := range cells {
			b.set(row, col, p)
		}
	}

	for col := 0; col < b.cols; col++ {
		for row := 1; row < b.rows; row++ {
			if b.At(row, col) != Empty && b.At(row-1, col) == Empty {
				return nil, fmt.Errorf("%w: floating piece at row %d column %d", ErrInvalidBoard, row, col)
			}
		}
	}
	return b, nil
}

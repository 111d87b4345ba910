package game

import "errors"

var (
	ErrColumnFull        = errors.New("column is full")
	ErrInvalidColumn     = errors.New("invalid column")
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidBoard      = errors.New("invalid board")
)

package game

// Direction is a unit step along one of the four line axes.
type Direction struct {
	DRow int
	DCol int
}

var (
	Horizontal         = Direction{DRow: 0, DCol: 1}
	Vertical           = Direction{DRow: 1, DCol: 0}
	AscendingDiagonal  = Direction{DRow: 1, DCol: 1}
	DescendingDiagonal = Direction{DRow: -1, DCol: 1}
)

// Directions lists every axis a line of WinLength can run along.
var Directions = []Direction{Horizontal, Vertical, AscendingDiagonal, DescendingDiagonal}

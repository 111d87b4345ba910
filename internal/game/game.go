package game

const DrawWinner = "Draw"

type Move struct {
	Column int    `json:"column"`
	Row    int    `json:"row"`
	Player Player `json:"player"`
}

type GameState struct {
	ID          string `json:"id"`
	Player1     string `json:"player1"`
	Player2     string `json:"player2"`
	Board       *Board `json:"board"`
	CurrentTurn Player `json:"currentTurn"`
	Winner      string `json:"winner,omitempty"`
	IsFinished  bool   `json:"isFinished"`
	Moves       []Move `json:"moves"`
}

// NameOf returns the display name seated as p.
func (g *GameState) NameOf(p Player) string {
	if p == Player1 {
		return g.Player1
	}
	return g.Player2
}

func NewGame(rows, cols int) (*Board, error) {
	return NewBoard(rows, cols)
}

func NewDefaultGame() *Board {
	b, _ := NewBoard(DefaultRows, DefaultCols)
	return b
}

func ApplyMove(board *Board, column int, player Player) (int, error) {
	return board.Place(column, player)
}

// MakeMove applies a move and returns the resulting record.
func MakeMove(board *Board, column int, player Player) (*Move, error) {
	row, err := board.Place(column, player)
	if err != nil {
		return nil, err
	}
	return &Move{
		Column: column,
		Row:    row,
		Player: player,
	}, nil
}

// CheckWinner reports the winner, or Empty with isDraw set on a full board.
func CheckWinner(board *Board) (winner Player, isDraw bool) {
	if p, ok := board.Winner(); ok {
		return p, false
	}
	return Empty, board.Full()
}

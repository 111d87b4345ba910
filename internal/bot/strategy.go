package bot

import (
	"fmt"
	"strings"
)

type Strategy int

const (
	Random Strategy = iota
	Greedy
	Minimax
)

const DefaultDepth = 4

// Params tunes a strategy. Depth only applies to Minimax; zero or less
// selects DefaultDepth.
type Params struct {
	Depth int `json:"depth"`
}

func (p Params) depth() int {
	if p.Depth <= 0 {
		return DefaultDepth
	}
	return p.Depth
}

func (s Strategy) Valid() bool {
	return s == Random || s == Greedy || s == Minimax
}

func (s Strategy) String() string {
	switch s {
	case Random:
		return "random"
	case Greedy:
		return "greedy"
	case Minimax:
		return "minimax"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts strategy names and the easy/medium/hard
// difficulty aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random", "easy":
		return Random, nil
	case "greedy", "medium":
		return Greedy, nil
	case "minimax", "hard":
		return Minimax, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

package bot

import "fmt"

type Outcome int8

const (
	Loss Outcome = iota - 1
	Heuristic
	Win
)

// Score orders Loss below every heuristic value and Win above every one.
// Value is only meaningful for Heuristic scores.
type Score struct {
	Outcome Outcome
	Value   int
}

func LossScore() Score { return Score{Outcome: Loss} }
func WinScore() Score { return Score{Outcome: Win} }
func DrawScore() Score { return Score{Outcome: Heuristic} }
func HeuristicScore(v int) Score { return Score{Outcome: Heuristic, Value: v} }

func (s Score) Less(o Score) bool {
	if s.Outcome != o.Outcome {
		return s.Outcome < o.Outcome
	}
	if s.Outcome != Heuristic {
		return false
	}
	return s.Value < o.Value
}

func (s Score) String() string {
	switch s.Outcome {
	case Loss:
		return "-inf"
	case Win:
		return "+inf"
	}
	return fmt.Sprintf("%d", s.Value)
}

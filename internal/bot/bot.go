// Package bot picks moves for the synthetic player.
package bot

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"connect4/internal/game"
)

const BotUsername = "AI Bot"

type Option func(e *Engine)

// WithSeed fixes the random source so Random choices are reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWorkers spreads the top-level Minimax branches over n goroutines.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithPlayer sets which piece the engine plays. Defaults to Player2.
func WithPlayer(p game.Player) Option {
	return func(e *Engine) {
		if p.Valid() {
			e.player = p
		}
	}
}

type Engine struct {
	mu      sync.Mutex
	rng     *rand.Rand
	workers int
	player  game.Player
}

func New(opts ...Option) *Engine {
	e := &Engine{
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		workers: 1,
		player:  game.Player2,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Player() game.Player {
	return e.player
}

// ChooseMove returns the column the engine's player should drop into.
func (e *Engine) ChooseMove(board *game.Board, strategy Strategy, params Params) (int, error) {
	if board.IsTerminal() {
		return -1, ErrNoMoves
	}

	switch strategy {
	case Random:
		return e.random(board)
	case Greedy:
		return greedy(board, e.player)
	case Minimax:
		col, _, err := e.rootMinimax(board, params.depth())
		return col, err
	}
	return -1, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
}

var defaultEngine = New()

// ChooseMove picks a move for Player2 using a shared default engine.
func ChooseMove(board *game.Board, strategy Strategy, params Params) (int, error) {
	return defaultEngine.ChooseMove(board, strategy, params)
}

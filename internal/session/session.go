package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"connect4/internal/bot"
	"connect4/internal/game"
	"connect4/internal/kafka"
)

var (
	ErrGameNotFound = errors.New("no active game found")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("not your turn")
)

// The human always plays Player1; the bot plays Player2.
const (
	HumanPlayer = game.Player1
	BotPlayer   = game.Player2
)

type Manager struct {
	mu       sync.RWMutex
	games    map[string]*game.GameState
	engine   *bot.Engine
	strategy bot.Strategy
	params   bot.Params
	rows     int
	cols     int
	onEvent  func(string, interface{})
}

func NewManager(engine *bot.Engine, strategy bot.Strategy, params bot.Params, rows, cols int) (*Manager, error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %v", bot.ErrUnknownStrategy, strategy)
	}
	if _, err := game.NewGame(rows, cols); err != nil {
		return nil, err
	}
	if engine == nil {
		engine = bot.New()
	}
	return &Manager{
		games:    make(map[string]*game.GameState),
		engine:   engine,
		strategy: strategy,
		params:   params,
		rows:     rows,
		cols:     cols,
	}, nil
}

// SetEventCallback registers callback for game events. It runs while the
// manager holds its lock and must not call back into the Manager.
func (m *Manager) SetEventCallback(callback func(string, interface{})) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onEvent = callback
}

// emit forwards an event to the callback. Callers hold m.mu.
func (m *Manager) emit(eventType string, data interface{}) {
	if m.onEvent != nil {
		m.onEvent(eventType, data)
	}
}

// Start creates a game for username against the bot. When humanFirst is
// false the bot's opening move is already on the board. A failed opening
// leaves nothing registered.
func (m *Manager) Start(username string, humanFirst bool) (*game.GameState, error) {
	board, err := game.NewGame(m.rows, m.cols)
	if err != nil {
		return nil, err
	}

	gameState := &game.GameState{
		ID:          uuid.New().String(),
		Player1:     username,
		Player2:     bot.BotUsername,
		Board:       board,
		CurrentTurn: HumanPlayer,
	}

	opening := -1
	if !humanFirst {
		gameState.CurrentTurn = BotPlayer
		if opening, err = m.chooseReply(gameState.ID, board); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[gameState.ID] = gameState

	log.Info().
		Str("game", gameState.ID).
		Str("player", username).
		Stringer("strategy", m.strategy).
		Msg("game created against bot")
	m.emit(kafka.EventGameStarted, gameState)

	if opening >= 0 {
		if _, err := m.apply(gameState, opening, BotPlayer); err != nil {
			delete(m.games, gameState.ID)
			return nil, err
		}
	}
	return gameState, nil
}

// Play applies the human's move in column and, unless that ends the game,
// the bot's reply. Both moves are settled on a copy of the board first, so
// a rejected move or a failed reply leaves the game untouched.
func (m *Manager) Play(gameID string, column int) (human *game.Move, reply *game.Move, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gameState, exists := m.games[gameID]
	if !exists {
		return nil, nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if gameState.IsFinished {
		return nil, nil, ErrGameFinished
	}
	if gameState.CurrentTurn != HumanPlayer {
		return nil, nil, ErrNotYourTurn
	}

	next := gameState.Board.Clone()
	if _, err := next.Place(column, HumanPlayer); err != nil {
		return nil, nil, err
	}
	replyColumn := -1
	if !next.IsTerminal() {
		if replyColumn, err = m.chooseReply(gameState.ID, next); err != nil {
			return nil, nil, err
		}
	}

	if human, err = m.apply(gameState, column, HumanPlayer); err != nil {
		return nil, nil, err
	}
	if replyColumn < 0 {
		return human, nil, nil
	}
	if reply, err = m.apply(gameState, replyColumn, BotPlayer); err != nil {
		return human, nil, err
	}
	return human, reply, nil
}

func (m *Manager) chooseReply(gameID string, board *game.Board) (int, error) {
	column, err := m.engine.ChooseMove(board, m.strategy, m.params)
	if err != nil {
		return -1, fmt.Errorf("bot move for game %s: %w", gameID, err)
	}
	return column, nil
}

// apply places a piece, records it, passes the turn and settles the game
// when the board is terminal. Callers hold m.mu.
func (m *Manager) apply(gameState *game.GameState, column int, player game.Player) (*game.Move, error) {
	move, err := game.MakeMove(gameState.Board, column, player)
	if err != nil {
		return nil, err
	}

	gameState.Moves = append(gameState.Moves, *move)
	gameState.CurrentTurn = player.Opponent()

	log.Debug().
		Str("game", gameState.ID).
		Str("player", gameState.NameOf(player)).
		Int("column", move.Column).
		Int("row", move.Row).
		Msg("move made")
	m.emit(kafka.EventMoveMade, map[string]interface{}{
		"gameId": gameState.ID,
		"player": gameState.NameOf(player),
		"move":   move,
	})

	winner, isDraw := game.CheckWinner(gameState.Board)
	if winner != game.Empty || isDraw {
		m.end(gameState, winner, isDraw)
	}
	return move, nil
}

func (m *Manager) end(gameState *game.GameState, winner game.Player, isDraw bool) {
	gameState.IsFinished = true
	if isDraw {
		gameState.Winner = game.DrawWinner
	} else {
		gameState.Winner = gameState.NameOf(winner)
	}

	log.Info().
		Str("game", gameState.ID).
		Str("winner", gameState.Winner).
		Int("moves", len(gameState.Moves)).
		Msg("game ended")
	m.emit(kafka.EventGameEnded, gameState)
}

func (m *Manager) Get(gameID string) (*game.GameState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gameState, exists := m.games[gameID]
	return gameState, exists
}

func (m *Manager) Remove(gameID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.games[gameID]; exists {
		delete(m.games, gameID)
		log.Info().Str("game", gameID).Msg("game removed")
	}
}

func (m *Manager) All() []*game.GameState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	games := make([]*game.GameState, 0, len(m.games))
	for _, gameState := range m.games {
		games = append(games, gameState)
	}
	return games
}

package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"xiangqi/internal/xiangqi"
)

var (
	ErrNotFound    = errors.New("game not found")
	ErrIllegalMove = errors.New("illegal move")
	ErrNoMoves     = errors.New("no legal moves")
	ErrNoHistory   = errors.New("no moves to undo")
)

// Manager 管所有在线对局，按 uuid 索引。
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 开一盘新棋。fen 为空用初始局面，否则按给定局面开。
func (m *Manager) NewGame(fen string) (*GameState, error) {
	pos := xiangqi.NewPosition()
	if fen != "" {
		var err error
		pos, err = xiangqi.ParseFEN(fen)
		if err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := &GameState{
		ID:        id,
		CreatedAt: time.Now(),
		pos:       pos,
		updatedAt: time.Now(),
	}
	m.games[id] = g
	return g, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

// Remove 删掉一盘对局，幂等。
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

// Count 当前在管的对局数。
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

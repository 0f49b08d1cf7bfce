package game

import (
	"sync"
	"time"

	"xiangqi/internal/xiangqi"
)

// 对局状态标签，直接进 JSON。
const (
	StatusOngoing    = "ongoing"
	StatusNoMoves    = "no_moves"
	StatusRepetition = "repetition"
	StatusRule60     = "rule60_draw"
)

// GameState 一盘对局的服务端状态。撤销帧逐步在堆上新建，
// 指针收在 frames 里保证链条存活；Position 不能并发改写，
// 全部访问都在 mu 下串行。
type GameState struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	pos       *xiangqi.Position
	frames    []*xiangqi.StateFrame
	moves     []xiangqi.Move
	updatedAt time.Time
}

// Snapshot 是一次加锁读出的局面视图，编码后发给前端。
type Snapshot struct {
	FEN        string
	ToMove     xiangqi.Side
	Moves      []string
	LegalMoves []string
	Status     string
	InCheck    bool
	Hash       uint64
}

func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *GameState) snapshotLocked() Snapshot {
	legal := g.pos.GenerateLegalMoves()
	s := Snapshot{
		FEN:        g.pos.FEN(),
		ToMove:     g.pos.SideToMove(),
		Moves:      make([]string, len(g.moves)),
		LegalMoves: make([]string, len(legal)),
		Status:     StatusOngoing,
		InCheck:    g.pos.InCheck(),
		Hash:       g.pos.Hash(),
	}
	for i, m := range g.moves {
		s.Moves[i] = m.String()
	}
	for i, m := range legal {
		s.LegalMoves[i] = m.String()
	}
	switch {
	case len(legal) == 0:
		s.Status = StatusNoMoves
	case g.pos.IsRepetition():
		s.Status = StatusRepetition
	case g.pos.Rule60() >= 120:
		s.Status = StatusRule60
	}
	return s
}

// Apply 解析坐标着法并落子。不在合法列表里的一律拒绝。
func (g *GameState) Apply(text string) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, err := g.pos.ParseMove(text)
	if err != nil {
		return Snapshot{}, ErrIllegalMove
	}
	return g.applyLocked(m)
}

// ApplyPicked 在对局锁内让 pick 挑一步再落子，拿引擎走棋用。
// pick 收到的 Position 只许临时试走，返回前必须复原。
func (g *GameState) ApplyPicked(pick func(*xiangqi.Position) xiangqi.Move) (xiangqi.Move, Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	m := pick(g.pos)
	if m == xiangqi.NoMove {
		return xiangqi.NoMove, g.snapshotLocked(), ErrNoMoves
	}
	snap, err := g.applyLocked(m)
	return m, snap, err
}

func (g *GameState) applyLocked(m xiangqi.Move) (Snapshot, error) {
	legal := false
	for _, lm := range g.pos.GenerateLegalMoves() {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return Snapshot{}, ErrIllegalMove
	}

	st := &xiangqi.StateFrame{}
	if !g.pos.MakeMove(m, st) {
		return Snapshot{}, ErrIllegalMove
	}
	g.frames = append(g.frames, st)
	g.moves = append(g.moves, m)
	g.updatedAt = time.Now()
	return g.snapshotLocked(), nil
}

// Revert 悔一步。没有历史可悔返回 ErrNoHistory。
func (g *GameState) Revert() (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.moves)
	if n == 0 {
		return Snapshot{}, ErrNoHistory
	}
	g.pos.UndoMove(g.moves[n-1])
	g.moves = g.moves[:n-1]
	g.frames = g.frames[:n-1]
	g.updatedAt = time.Now()
	return g.snapshotLocked(), nil
}

// UpdatedAt 返回最近一次落子或悔棋的时间。
func (g *GameState) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt
}

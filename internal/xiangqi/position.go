package xiangqi

// StateFrame 记录撤销一步所需的最小快照，按后进先出串成链。
// 帧由调用方分配：搜索里做一层局部变量即可，长期持有的对局
// 要逐步新分配并保存指针，撤销之前帧必须保持存活。
type StateFrame struct {
	hash     uint64
	rule60   int
	previous *StateFrame
}

// Position 是完整的局面：盘面、走子方、两帅缓存、各类计数和增量哈希。
// 字段全部不导出，修改只能走 MakeMove/UndoMove 一族事务入口。
// 同一个 Position 不能被多个 goroutine 并发改写。
type Position struct {
	board      [NumSquares]Piece
	sideToMove Side
	kingSquare [2]int
	rule60     int // 连续可逆步数，吃子清零
	gamePly    int
	searchPly  int
	hash       uint64
	st         *StateFrame
}

func (p *Position) SideToMove() Side { return p.sideToMove }
func (p *Position) Hash() uint64     { return p.hash }
func (p *Position) Rule60() int      { return p.rule60 }
func (p *Position) GamePly() int     { return p.gamePly }
func (p *Position) SearchPly() int   { return p.searchPly }

// KingSquare 返回 side 方帅的格子下标缓存。
func (p *Position) KingSquare(side Side) int { return p.kingSquare[side] }

// PieceOn 返回格子上的棋子；界外（含下标越界）返回哨兵。
func (p *Position) PieceOn(sq int) Piece {
	if sq < 0 || sq >= NumSquares {
		return Offboard
	}
	return p.board[sq]
}

// MakeMove 按事务执行一步：先全部落账（盘面、计数、增量哈希、帅位缓存），
// 再检查走子方的帅是否暴露在攻击之下，暴露则原样回滚并返回 false。
// 生成器不滤送将，合法性就在这里统一兜底。st 保存回滚快照。
func (p *Position) MakeMove(m Move, st *StateFrame) bool {
	st.hash = p.hash
	st.rule60 = p.rule60
	st.previous = p.st
	p.st = st

	p.gamePly++
	p.searchPly++

	from, to := m.From(), m.To()
	pc := m.Piece()
	captured := m.Captured()

	p.board[to] = pc
	p.board[from] = 0

	if captured != 0 {
		p.rule60 = 0
		p.hash ^= zobrist.pieceKey(captured, to)
	} else {
		p.rule60++
	}
	p.hash ^= zobrist.pieceKey(pc, from)
	p.hash ^= zobrist.pieceKey(pc, to)
	p.hash ^= zobrist.side

	us := p.sideToMove
	if pc.Type() == PieceKing {
		p.kingSquare[us] = to
	}
	p.sideToMove = opposite(us)

	if p.IsSquareAttacked(p.kingSquare[us], p.sideToMove) {
		p.UndoMove(m)
		return false
	}
	return true
}

// UndoMove 精确还原 MakeMove：盘面从走法编码里倒放，被吃子原地复活，
// 哈希和可逆步数直接从帧里弹回，不做反向增量。
func (p *Position) UndoMove(m Move) {
	p.gamePly--
	p.searchPly--

	from, to := m.From(), m.To()
	pc := m.Piece()

	p.board[from] = pc
	p.board[to] = m.Captured()

	p.sideToMove = opposite(p.sideToMove)
	if pc.Type() == PieceKing {
		p.kingSquare[p.sideToMove] = from
	}

	p.rule60 = p.st.rule60
	p.hash = p.st.hash
	p.st = p.st.previous
}

// MakeNullMove 只交换走子方，供外部搜索做威胁探测。
// 被将军时不允许调用。空着算一步可逆步。
func (p *Position) MakeNullMove(st *StateFrame) {
	st.hash = p.hash
	st.rule60 = p.rule60
	st.previous = p.st
	p.st = st

	p.rule60++
	p.hash ^= zobrist.side
	p.sideToMove = opposite(p.sideToMove)
}

// UndoNullMove 还原 MakeNullMove：只回切走子方并弹帧。
func (p *Position) UndoNullMove() {
	p.sideToMove = opposite(p.sideToMove)
	p.rule60 = p.st.rule60
	p.hash = p.st.hash
	p.st = p.st.previous
}

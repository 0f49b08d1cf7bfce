package xiangqi

// 全部格子键在包初始化时从固定种子一次生成，建好后只读，
// 跨进程可复现，多 goroutine 共享安全。除此之外不得改写。
const zobristSeed = 1070372

type zobristTable struct {
	pieces [2][pieceTypeNB][NumSquares]uint64
	side   uint64
}

var zobrist = newZobristTable(zobristSeed)

// newZobristTable 用 splitmix64 流填表，键序固定：先红后黑、
// 按子类升序、每类扫满整个数组（含哨兵格，保证键序与几何无关）。
func newZobristTable(seed uint64) *zobristTable {
	next := func() uint64 {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	t := &zobristTable{}
	for side := 0; side < 2; side++ {
		for pt := 1; pt < pieceTypeNB; pt++ {
			for sq := 0; sq < NumSquares; sq++ {
				t.pieces[side][pt][sq] = next()
			}
		}
	}
	t.side = next()
	return t
}

// pieceKey 返回“某子在某格”的键；空位和哨兵贡献零。
func (t *zobristTable) pieceKey(pc Piece, sq int) uint64 {
	if pc == 0 || pc == Offboard {
		return 0
	}
	side := 0
	if pc.Side() == Black {
		side = 1
	}
	return t.pieces[side][pc.Type()][sq]
}

// ComputeHash 全盘重扫计算 Zobrist 键，是增量维护结果的对照基准。
func (p *Position) ComputeHash() uint64 {
	var h uint64
	for _, sq := range realSquares {
		if pc := p.board[sq]; pc != 0 {
			h ^= zobrist.pieceKey(pc, sq)
		}
	}
	if p.sideToMove == Black {
		h ^= zobrist.side
	}
	return h
}

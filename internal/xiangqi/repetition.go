package xiangqi

// 循环检测用的 cuckoo 表，思路来自 Marcel van Kervinck 的
// http://web.archive.org/web/20201107002606/https://marcelk.net/2013-04-06/paper/upcoming-rep-v2.pdf
// 把所有可逆着法的 Zobrist 差量建成两哈希开放寻址表，
// 回溯历史时一次探测就能发现“再走一步就回到旧局面”。

const cuckooSize = 8192

type cuckooTable struct {
	keys  [cuckooSize]uint64
	moves [cuckooSize]Move
}

func cuckooH1(key uint64) int { return int(key & (cuckooSize - 1)) }
func cuckooH2(key uint64) int { return int((key >> 16) & (cuckooSize - 1)) }

var cuckoo = newCuckooTable()

// newCuckooTable 在空盘上枚举每个非兵棋子的可逆着法（兵不回头，
// 不可能参与循环）。起点先按站位规则过滤：帅仕限九宫，相限己方半场，
// 落点的过滤生成器自己就做了。空盘可达在站位过滤之后是对称的，
// 每个无序点对只录一次。
func newCuckooTable() *cuckooTable {
	t := &cuckooTable{}

	scratch := &Position{}
	for sq := range scratch.board {
		if !onBoardSq(sq) {
			scratch.board[sq] = Offboard
		}
	}

	for _, side := range []Side{Red, Black} {
		for pt := PieceAdvisor; pt <= PieceKing; pt++ {
			pc := makePiece(side, pt)
			for _, from := range realSquares {
				if !cuckooStandable(side, pt, from) {
					continue
				}
				scratch.board[from] = pc
				moves := make([]Move, 0, MaxMoves)
				genPieceMoves(scratch, from, &moves, false)
				for _, m := range moves {
					if m.To() <= from {
						continue
					}
					key := zobrist.pieceKey(pc, from) ^ zobrist.pieceKey(pc, m.To()) ^ zobrist.side
					t.insert(key, m)
				}
				scratch.board[from] = 0
			}
		}
	}
	return t
}

func cuckooStandable(side Side, pt PieceType, sq int) bool {
	switch pt {
	case PieceKing, PieceAdvisor:
		return boardZones[side][sq] == 2
	case PieceBishop:
		return boardZones[side][sq] != 0
	default:
		return true
	}
}

// insert 做标准的 cuckoo 驱逐：两个槽位轮换挤占，直到腾出空位。
func (t *cuckooTable) insert(key uint64, move Move) {
	i := cuckooH1(key)
	for {
		t.keys[i], key = key, t.keys[i]
		t.moves[i], move = move, t.moves[i]
		if move == NoMove {
			return
		}
		if i == cuckooH1(key) {
			i = cuckooH2(key)
		} else {
			i = cuckooH1(key)
		}
	}
}

// hashBack 返回 plies 步之前的局面哈希。帧里存的是走那步之前的值，
// 所以回退 k 步等于沿链走 k-1 条边再取 hash。
func (p *Position) hashBack(plies int) (uint64, bool) {
	st := p.st
	for k := 1; k < plies; k++ {
		if st == nil {
			return 0, false
		}
		st = st.previous
	}
	if st == nil {
		return 0, false
	}
	return st.hash, true
}

// HasGameCycle 判断当前着法线上是否存在一步可逆着法能回到出现过的局面。
// ply 是距搜索根的深度：环在根之后开始的直接算数，跨过根的还要求
// 那个旧局面在更早的历史里真出现过第二次。表命中只是候选，
// 还要确认走子路径当前为空。奇数步差才可能同色循环，扫描窗口
// 以吃子（rule60 清零）为界。
func (p *Position) HasGameCycle(ply int) bool {
	end := p.rule60
	if end < 3 {
		return false
	}
	for i := 3; i <= end; i += 2 {
		h, ok := p.hashBack(i)
		if !ok {
			return false
		}
		moveKey := p.hash ^ h
		j := cuckooH1(moveKey)
		if cuckoo.keys[j] != moveKey {
			j = cuckooH2(moveKey)
			if cuckoo.keys[j] != moveKey {
				continue
			}
		}
		mv := cuckoo.moves[j]
		if !p.pathClear(mv.From(), mv.To()) {
			continue
		}
		if ply > i {
			return true
		}
		for k := i + 2; k <= end; k += 2 {
			h2, ok := p.hashBack(k)
			if !ok {
				break
			}
			if h2 == h {
				return true
			}
		}
	}
	return false
}

// IsRepetition 判断当前局面在本线历史里是否已经出现过。
// 同一局面只能隔偶数步重现，窗口同样以吃子为界。
func (p *Position) IsRepetition() bool {
	for i := 4; i <= p.rule60; i += 2 {
		h, ok := p.hashBack(i)
		if !ok {
			return false
		}
		if h == p.hash {
			return true
		}
	}
	return false
}

// pathClear 检查 from/to 连线上（不含端点）是否全空。
// 两格不共线时（马跳）中间没有格子，按无遮挡算；
// 相飞田字的象眼正好落在对角连线中点上，也被这里覆盖。
func (p *Position) pathClear(from, to int) bool {
	sr := sign(rankOf(to) - rankOf(from))
	sf := sign(fileOf(to) - fileOf(from))
	if sr != 0 && sf != 0 && abs(rankOf(to)-rankOf(from)) != abs(fileOf(to)-fileOf(from)) {
		return true
	}
	step := -Cols*sr + sf
	if step == 0 {
		return true
	}
	for sq := from + step; sq != to; sq += step {
		if p.board[sq] != 0 {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

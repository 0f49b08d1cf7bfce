package engine

import "xiangqi/internal/xiangqi"

// Engine 驱动棋核做校验和挑步：perft 统计带一层哈希缓存，
// 选步用一层贪心静态评估。单个 Engine 不做并发安全。
type Engine struct {
	tt *perftTable
}

func NewEngine() *Engine {
	return &Engine{tt: newPerftTable()}
}

// Perft 返回 depth 层的叶子节点总数：伪合法生成，试走失败的跳过。
func (e *Engine) Perft(pos *xiangqi.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return e.perft(pos, depth)
}

func (e *Engine) perft(pos *xiangqi.Position, depth int) uint64 {
	key := pos.Hash()
	if nodes, ok := e.tt.probe(key, depth); ok {
		return nodes
	}

	var nodes uint64
	var st xiangqi.StateFrame
	moves := pos.GenerateMoves(make([]xiangqi.Move, 0, xiangqi.MaxMoves), false)
	for _, m := range moves {
		if !pos.MakeMove(m, &st) {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += e.perft(pos, depth-1)
		}
		pos.UndoMove(m)
	}

	e.tt.store(key, depth, nodes)
	return nodes
}

// DivideEntry 是 perft 按根着法拆分的计数。
type DivideEntry struct {
	Move  xiangqi.Move
	Nodes uint64
}

// Divide 把 depth 层 perft 按第一层的每个合法着法拆开，定位生成器分歧用。
func (e *Engine) Divide(pos *xiangqi.Position, depth int) ([]DivideEntry, uint64) {
	var entries []DivideEntry
	var total uint64
	var st xiangqi.StateFrame
	moves := pos.GenerateMoves(make([]xiangqi.Move, 0, xiangqi.MaxMoves), false)
	for _, m := range moves {
		if !pos.MakeMove(m, &st) {
			continue
		}
		nodes := uint64(1)
		if depth > 1 {
			nodes = e.perft(pos, depth-1)
		}
		pos.UndoMove(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: nodes})
		total += nodes
	}
	return entries, total
}

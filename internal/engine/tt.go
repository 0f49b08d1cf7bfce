package engine

// perft 缓存条目：同一局面同一深度的节点数恒定，可以放心复用。
type perftEntry struct {
	Depth int
	Nodes uint64
}

// perftTable 是按 Zobrist 键索引的 perft 缓存。不加锁，
// 跟 Engine 一样只归一个 goroutine 用。
type perftTable struct {
	entries map[uint64]perftEntry
}

func newPerftTable() *perftTable {
	return &perftTable{entries: make(map[uint64]perftEntry, 1<<18)}
}

func (t *perftTable) probe(key uint64, depth int) (uint64, bool) {
	hit, ok := t.entries[key]
	if !ok || hit.Depth != depth {
		return 0, false
	}
	return hit.Nodes, true
}

// store 超限就整张重建，深的条目优先留下。
func (t *perftTable) store(key uint64, depth int, nodes uint64) {
	if len(t.entries) > 1_000_000 {
		t.entries = make(map[uint64]perftEntry, 1<<18)
	}
	old, ok := t.entries[key]
	if !ok || depth >= old.Depth {
		t.entries[key] = perftEntry{Depth: depth, Nodes: nodes}
	}
}

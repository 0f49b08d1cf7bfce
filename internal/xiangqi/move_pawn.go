package xiangqi

// 兵/卒：永远能直进一格；还在己方半场就到此为止，
// 过了河才轮到左右横移。兵不回头，步表里没有后退方向。
func genPawnMoves(p *Position, from int, moves *[]Move, onlyCaptures bool) {
	pc := p.board[from]
	side := pc.Side()
	for i, d := range pawnSteps[side] {
		pushMove(p, moves, from, from+d, pc, onlyCaptures)
		if i == 0 && boardZones[side][from] != 0 {
			break // 未过河
		}
	}
}

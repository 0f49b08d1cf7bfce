package xiangqi

// 马走日：正交一格是马腿，腿上有子（含哨兵）两个落点一起作废。
// 落点本身的界外与占用判断全部交给 pushMove。
func genKnightMoves(p *Position, from int, moves *[]Move, onlyCaptures bool) {
	pc := p.board[from]
	for i, d := range orthoDirs {
		if p.board[from+d] != 0 {
			continue // 蹩马腿
		}
		for _, jump := range knightJumps[i] {
			pushMove(p, moves, from, from+jump, pc, onlyCaptures)
		}
	}
}

package xiangqi

// 车：四个正交方向滑行，碰到第一个子就停，能不能吃交给 pushMove。
func genRookMoves(p *Position, from int, moves *[]Move, onlyCaptures bool) {
	pc := p.board[from]
	for _, d := range orthoDirs {
		for to := from + d; p.board[to] != Offboard; to += d {
			pushMove(p, moves, from, to, pc, onlyCaptures)
			if p.board[to] != 0 {
				break
			}
		}
	}
}

// 炮：空格段产生安静步；碰到第一个子当炮架，之后这条线上
// 出现的第一个子是唯一吃点，产出后立即收线。
func genCannonMoves(p *Position, from int, moves *[]Move, onlyCaptures bool) {
	pc := p.board[from]
	for _, d := range orthoDirs {
		jumpOver := 0
		for to := from + d; p.board[to] != Offboard; to += d {
			if p.board[to] == 0 {
				if jumpOver == 0 {
					pushMove(p, moves, from, to, pc, onlyCaptures)
				}
				continue
			}
			jumpOver++
			if jumpOver == 2 {
				pushMove(p, moves, from, to, pc, onlyCaptures)
				break
			}
		}
	}
}

// 相/象：飞田字且不过河。象眼有子整步作废，与落点占用无关。
func genBishopMoves(p *Position, from int, moves *[]Move, onlyCaptures bool) {
	pc := p.board[from]
	side := pc.Side()
	for i, d := range diagDirs {
		if p.board[from+d] != 0 {
			continue // 塞象眼
		}
		to := from + bishopJumps[i]
		if zoneOf(side, to) == 0 {
			continue
		}
		pushMove(p, moves, from, to, pc, onlyCaptures)
	}
}

// 仕/士：九宫内斜走一格。
func genAdvisorMoves(p *Position, from int, moves *[]Move, onlyCaptures bool) {
	pc := p.board[from]
	side := pc.Side()
	for _, d := range diagDirs {
		to := from + d
		if zoneOf(side, to) != 2 {
			continue
		}
		pushMove(p, moves, from, to, pc, onlyCaptures)
	}
}

// 帅/将：九宫内直走一格。对脸禁手不在这里管，由事后合法性校验兜底。
func genKingMoves(p *Position, from int, moves *[]Move, onlyCaptures bool) {
	pc := p.board[from]
	side := pc.Side()
	for _, d := range orthoDirs {
		to := from + d
		if zoneOf(side, to) != 2 {
			continue
		}
		pushMove(p, moves, from, to, pc, onlyCaptures)
	}
}

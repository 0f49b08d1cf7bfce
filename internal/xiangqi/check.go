package xiangqi

// IsSquareAttacked 判断 sq 是否被 by 方攻击。探测方向全部反着来：
// 马从目标格的对角腿往外找；车、帅（对脸）、炮共用一条带隔子计数的
// 正交射线，第一个子看车和帅，第二个子看炮；兵只看正后方一格。
func (p *Position) IsSquareAttacked(sq int, by Side) bool {
	knight := makePiece(by, PieceKnight)
	for i, d := range diagDirs {
		if p.board[sq+d] != 0 {
			continue
		}
		if p.board[sq+knightChecks[i][0]] == knight || p.board[sq+knightChecks[i][1]] == knight {
			return true
		}
	}

	rook := makePiece(by, PieceRook)
	king := makePiece(by, PieceKing)
	cannon := makePiece(by, PieceCannon)
	for _, d := range orthoDirs {
		jumpOver := 0
		for to := sq + d; p.board[to] != Offboard; to += d {
			target := p.board[to]
			if target == 0 {
				continue
			}
			jumpOver++
			if jumpOver == 1 {
				if target == rook || target == king {
					return true
				}
				continue
			}
			if target == cannon {
				return true
			}
			break
		}
	}

	return p.board[sq+pawnChecks[by]] == makePiece(by, PiecePawn)
}

// InCheck 报告走子方的帅是否正被将军。
func (p *Position) InCheck() bool {
	ksq := p.kingSquare[p.sideToMove]
	if ksq == SquareNone {
		return false
	}
	return p.IsSquareAttacked(ksq, opposite(p.sideToMove))
}

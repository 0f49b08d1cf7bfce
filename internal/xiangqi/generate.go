package xiangqi

// MaxMoves 是单个局面伪合法着法数的安全上界，调用方可按它一次性备好缓冲。
const MaxMoves = 128

// GenerateMoves 生成走子方的全部伪合法着法，追加进 moves 并返回新切片。
// 不过滤送将，合法性由 MakeMove 事后判定；onlyCaptures 为真时只产吃子步。
// 常见用法：moves := p.GenerateMoves(make([]Move, 0, MaxMoves), false)
func (p *Position) GenerateMoves(moves []Move, onlyCaptures bool) []Move {
	for _, sq := range realSquares {
		pc := p.board[sq]
		if pc == 0 || pc.Side() != p.sideToMove {
			continue
		}
		genPieceMoves(p, sq, &moves, onlyCaptures)
	}
	return moves
}

// GenerateLegalMoves 生成全部合法着法：逐个试走，过不了事后校验的丢弃。
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GenerateMoves(make([]Move, 0, MaxMoves), false)
	legal := make([]Move, 0, len(pseudo))
	var st StateFrame
	for _, m := range pseudo {
		if p.MakeMove(m, &st) {
			p.UndoMove(m)
			legal = append(legal, m)
		}
	}
	return legal
}

func genPieceMoves(p *Position, from int, moves *[]Move, onlyCaptures bool) {
	switch p.board[from].Type() {
	case PiecePawn:
		genPawnMoves(p, from, moves, onlyCaptures)
	case PieceAdvisor:
		genAdvisorMoves(p, from, moves, onlyCaptures)
	case PieceBishop:
		genBishopMoves(p, from, moves, onlyCaptures)
	case PieceKnight:
		genKnightMoves(p, from, moves, onlyCaptures)
	case PieceCannon:
		genCannonMoves(p, from, moves, onlyCaptures)
	case PieceRook:
		genRookMoves(p, from, moves, onlyCaptures)
	case PieceKing:
		genKingMoves(p, from, moves, onlyCaptures)
	}
}

// pushMove 是唯一的落点判定入口：空位产生安静步（onlyCaptures 时抑制），
// 对方棋子产生吃子步，己方棋子和界外哨兵一律丢弃。
// 调用方探到哨兵格也可以直接丢进来，不需要先做越界判断。
func pushMove(p *Position, moves *[]Move, from, to int, pc Piece, onlyCaptures bool) {
	target := p.board[to]
	if target == 0 {
		if !onlyCaptures {
			*moves = append(*moves, makeMove(from, to, pc, 0))
		}
		return
	}
	if target != Offboard && target.Side() != pc.Side() {
		*moves = append(*moves, makeMove(from, to, pc, target))
	}
}

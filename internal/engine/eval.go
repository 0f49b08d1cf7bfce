package engine

import "xiangqi/internal/xiangqi"

// 子力基础分。帅的分只是占位，合法对局里帅吃不掉。
var materialWeights = [...]int{
	0,
	30,   // 兵
	120,  // 仕
	120,  // 相
	270,  // 马
	285,  // 炮
	600,  // 车
	6000, // 帅
}

// 位置分表只有兵、马、炮、车四张，仕相帅的站位本来就没几格。
// 表按红方视角存（上面是 9 路黑方底线），黑子用 180° 镜像格查。
const (
	pstPawn = iota
	pstKnight
	pstCannon
	pstRook
	pstNB
)

var pieceSquareTables = [pstNB][xiangqi.NumSquares]int{
	pstPawn: {
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 3, 6, 9, 12, 9, 6, 3, 0, 0,
		0, 18, 36, 56, 80, 120, 80, 56, 36, 18, 0,
		0, 14, 26, 42, 60, 80, 60, 42, 26, 14, 0,
		0, 10, 20, 30, 34, 40, 34, 30, 20, 10, 0,
		0, 6, 12, 18, 18, 20, 18, 18, 12, 6, 0,
		0, 2, 0, 8, 0, 8, 0, 8, 0, 2, 0,
		0, 0, 0, -2, 0, 4, 0, -2, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	pstKnight: {
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 4, 8, 16, 12, 4, 12, 16, 8, 4, 0,
		0, 4, 10, 28, 16, 8, 16, 28, 10, 4, 0,
		0, 12, 14, 16, 20, 18, 20, 16, 14, 12, 0,
		0, 8, 24, 18, 24, 20, 24, 18, 24, 8, 0,
		0, 6, 16, 14, 18, 16, 18, 14, 16, 6, 0,
		0, 4, 12, 16, 14, 12, 14, 16, 12, 4, 0,
		0, 2, 6, 8, 6, 10, 6, 8, 6, 2, 0,
		0, 4, 2, 8, 8, 4, 8, 8, 2, 4, 0,
		0, 0, 2, 4, 4, -2, 4, 4, 2, 0, 0,
		0, 0, -4, 0, 0, 0, 0, 0, -4, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	pstCannon: {
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 6, 4, 0, -10, -12, -10, 0, 4, 6, 0,
		0, 2, 2, 0, -4, -14, -4, 0, 2, 2, 0,
		0, 2, 2, 0, -10, -8, -10, 0, 2, 2, 0,
		0, 0, 0, -2, 4, 10, 4, -2, 0, 0, 0,
		0, 0, 0, 0, 2, 8, 2, 0, 0, 0, 0,
		0, -2, 0, 4, 2, 6, 2, 4, 0, -2, 0,
		0, 0, 0, 0, 2, 4, 2, 0, 0, 0, 0,
		0, 4, 0, 8, 6, 10, 6, 8, 0, 4, 0,
		0, 0, 2, 4, 6, 6, 6, 4, 2, 0, 0,
		0, 0, 0, 2, 6, 6, 6, 2, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	pstRook: {
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 14, 14, 12, 18, 16, 18, 12, 14, 14, 0,
		0, 16, 20, 18, 24, 26, 24, 18, 20, 16, 0,
		0, 12, 12, 12, 18, 18, 18, 12, 12, 12, 0,
		0, 12, 18, 16, 22, 22, 22, 16, 18, 12, 0,
		0, 12, 14, 12, 18, 18, 18, 12, 14, 12, 0,
		0, 12, 16, 14, 20, 20, 20, 14, 16, 12, 0,
		0, 6, 10, 8, 14, 14, 14, 8, 10, 6, 0,
		0, 4, 8, 6, 14, 12, 14, 6, 8, 4, 0,
		0, 8, 4, 8, 16, 8, 16, 8, 4, 8, 0,
		0, -2, 10, 6, 14, 12, 14, 6, 10, -2, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
}

func pstIndex(pt xiangqi.PieceType) int {
	switch pt {
	case xiangqi.PiecePawn:
		return pstPawn
	case xiangqi.PieceKnight:
		return pstKnight
	case xiangqi.PieceCannon:
		return pstCannon
	case xiangqi.PieceRook:
		return pstRook
	}
	return -1
}

// Evaluate 返回走子方视角的静态分：子力加位置分。
// 先按“红正黑负”累加，最后按走子方翻符号。
func Evaluate(pos *xiangqi.Position) int {
	score := 0
	for sq := 0; sq < xiangqi.NumSquares; sq++ {
		pc := pos.PieceOn(sq)
		if pc == 0 || pc == xiangqi.Offboard {
			continue
		}
		v := materialWeights[pc.Type()]
		if tbl := pstIndex(pc.Type()); tbl >= 0 {
			if pc.Side() == xiangqi.Red {
				v += pieceSquareTables[tbl][sq]
			} else {
				v += pieceSquareTables[tbl][xiangqi.NumSquares-1-sq]
			}
		}
		if pc.Side() == xiangqi.Red {
			score += v
		} else {
			score -= v
		}
	}
	if pos.SideToMove() == xiangqi.Black {
		return -score
	}
	return score
}

// PickMove 一层贪心：试走每个合法着法，取走完之后对手局面分最差的那步。
// 同分取先生成的，结果确定；无着可走返回 NoMove。
func (e *Engine) PickMove(pos *xiangqi.Position) xiangqi.Move {
	best := xiangqi.NoMove
	bestScore := 0
	var st xiangqi.StateFrame
	moves := pos.GenerateMoves(make([]xiangqi.Move, 0, xiangqi.MaxMoves), false)
	for _, m := range moves {
		if !pos.MakeMove(m, &st) {
			continue
		}
		score := -Evaluate(pos)
		pos.UndoMove(m)
		if best == xiangqi.NoMove || score > bestScore {
			best = m
			bestScore = score
		}
	}
	return best
}

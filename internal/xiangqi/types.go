package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

type PieceType int8

const (
	PieceNone    PieceType = iota
	PiecePawn              // 兵/卒
	PieceAdvisor           // 仕/士
	PieceBishop            // 相/象
	PieceKnight            // 马
	PieceCannon            // 炮
	PieceRook              // 车
	PieceKing              // 帅/将
)

const pieceTypeNB = 8 // PieceType 范围 [1..7]，0 保留空位不用

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceType

// Offboard 哨兵格：界外不是空位，任何棋子都不能走上去或被当作可吃目标。
const Offboard Piece = 127

func makePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p == Offboard {
		return PieceNone
	}
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 || p == Offboard {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

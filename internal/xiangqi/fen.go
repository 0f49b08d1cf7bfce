package xiangqi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN 是标准开局。
const StartFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrInvalidMove = errors.New("invalid move")
)

// 字母表沿用西式记谱：大写红小写黑；e/h 是 b/n 的别名（elephant/horse 记法）。
var letterToPiece = map[byte]PieceType{
	'p': PiecePawn,
	'a': PieceAdvisor,
	'b': PieceBishop,
	'e': PieceBishop,
	'n': PieceKnight,
	'h': PieceKnight,
	'c': PieceCannon,
	'r': PieceRook,
	'k': PieceKing,
}

func pieceChar(pc Piece) byte {
	ch := " pabncrk"[pc.Type()]
	if pc.Side() == Red {
		return ch - 'a' + 'A'
	}
	return ch
}

// NewPosition 返回标准开局局面。
func NewPosition() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseFEN 从 FEN 建立局面。盘面段 10 行、从黑方底线（9 路）开始，
// 行内数字跳空位；走子方段 w/b；易位和吃过路兵两段是国象遗产，
// 写 "-" 占位或整个省略都行；末两段是可逆步数与回合数。
// 双方必须恰好各有一个帅。
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, ErrInvalidFEN
	}

	p := &Position{
		kingSquare: [2]int{SquareNone, SquareNone},
		st:         &StateFrame{},
	}
	for sq := range p.board {
		if !onBoardSq(sq) {
			p.board[sq] = Offboard
		}
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != Ranks {
		return nil, ErrInvalidFEN
	}
	for i, row := range rows {
		rank := Ranks - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '9' {
				file += int(ch - '0')
				continue
			}
			pt, ok := letterToPiece[ch|0x20]
			if !ok || file >= Files {
				return nil, ErrInvalidFEN
			}
			side := Black
			if ch < 'a' {
				side = Red
			}
			sq := squareOf(file, rank)
			p.board[sq] = makePiece(side, pt)
			if pt == PieceKing {
				if p.kingSquare[side] != SquareNone {
					return nil, ErrInvalidFEN
				}
				p.kingSquare[side] = sq
			}
			file++
		}
		if file != Files {
			return nil, ErrInvalidFEN
		}
	}
	if p.kingSquare[Red] == SquareNone || p.kingSquare[Black] == SquareNone {
		return nil, ErrInvalidFEN
	}

	switch fields[1] {
	case "w", "r":
		p.sideToMove = Red
	case "b":
		p.sideToMove = Black
	default:
		return nil, ErrInvalidFEN
	}

	rest := fields[2:]
	for len(rest) > 0 && rest[0] == "-" {
		rest = rest[1:]
	}
	if len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil || n < 0 {
			return nil, ErrInvalidFEN
		}
		p.rule60 = n
	}
	if len(rest) > 1 {
		n, err := strconv.Atoi(rest[1])
		if err != nil || n < 1 {
			return nil, ErrInvalidFEN
		}
		p.gamePly = (n - 1) * 2
		if p.sideToMove == Black {
			p.gamePly++
		}
	}

	p.hash = p.ComputeHash()
	return p, nil
}

// FEN 输出当前局面，格式与 ParseFEN 对应。
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := Ranks - 1; rank >= 0; rank-- {
		if rank < Ranks-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < Files; file++ {
			pc := p.board[squareOf(file, rank)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	side := 'w'
	if p.sideToMove == Black {
		side = 'b'
	}
	fmt.Fprintf(&sb, " %c - - %d %d", side, p.rule60, p.gamePly/2+1)
	return sb.String()
}

// ParseMove 解析 "h2e2" 形式的着法并结合当前盘面补全编码字段。
// 只做编码，不校验走法规则；要判合法就拿返回值去对生成列表。
func (p *Position) ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, ErrInvalidMove
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return NoMove, ErrInvalidMove
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return NoMove, ErrInvalidMove
	}
	pc := p.board[from]
	if pc == 0 || pc == Offboard || pc.Side() != p.sideToMove {
		return NoMove, ErrInvalidMove
	}
	captured := p.board[to]
	if captured == Offboard || (captured != 0 && captured.Side() == pc.Side()) {
		return NoMove, ErrInvalidMove
	}
	return makeMove(from, to, pc, captured), nil
}

package xiangqi

// Move 把一步棋打包进一个 uint32：{from:8, to:8, 走子:8, 被吃子:8}。
// 编码自带还原所需的全部信息，悔棋不需要任何旁路栈；零值表示“无着法”。
type Move uint32

const (
	moveSquareBits = 8
	movePieceBits  = 8

	moveFromShift     = 0
	moveToShift       = moveSquareBits
	movePieceShift    = 2 * moveSquareBits
	moveCapturedShift = 2*moveSquareBits + movePieceBits

	moveSquareMask = 1<<moveSquareBits - 1
)

const NoMove Move = 0

func init() {
	// 位宽不变量：格子下标和棋子编码必须装得进各自的字段
	if NumSquares > 1<<moveSquareBits {
		panic("xiangqi: square index overflows move field")
	}
	if pieceTypeNB > 1<<(movePieceBits-1) {
		panic("xiangqi: piece type overflows move field")
	}
}

func makeMove(from, to int, pc, captured Piece) Move {
	return Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(uint8(pc))<<movePieceShift |
		Move(uint8(captured))<<moveCapturedShift
}

func (m Move) From() int { return int(m >> moveFromShift & moveSquareMask) }
func (m Move) To() int   { return int(m >> moveToShift & moveSquareMask) }

func (m Move) Piece() Piece    { return Piece(int8(uint8(m >> movePieceShift))) }
func (m Move) Captured() Piece { return Piece(int8(uint8(m >> moveCapturedShift))) }

func (m Move) IsCapture() bool { return m.Captured() != 0 }

// String 输出“起点终点”坐标记法，如 h2e2。
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return SquareName(m.From()) + SquareName(m.To())
}

package xiangqi

import "errors"

// 棋盘编码：9×10 的真实盘面嵌在 11×14 的一维数组中间，
// 四周至少留两圈哨兵格，马跳/炮滑的最大偏移也不会绕回到另一边。
// 下标 = (11-rank)*11 + 1 + file，a9 = 23，i0 = 130；黑方九路在低下标一侧。
const (
	Files = 9
	Ranks = 10

	Cols       = 11
	Rows       = 14
	NumSquares = Cols * Rows

	SquareNone = -1
)

func squareOf(file, rank int) int { return (11-rank)*Cols + 1 + file }
func fileOf(sq int) int           { return sq%Cols - 1 }
func rankOf(sq int) int           { return 11 - sq/Cols }

func onBoardSq(sq int) bool {
	if sq < 0 || sq >= NumSquares {
		return false
	}
	row, col := sq/Cols, sq%Cols
	return row >= 2 && row <= 11 && col >= 1 && col <= 9
}

// 方向偏移。向“上”（红方前进方向，朝九路）是 -11。
// bishopJumps、knightJumps、knightChecks 与各自腿/眼方向按下标对齐。
var (
	orthoDirs = [4]int{-Cols, Cols, -1, 1}
	diagDirs  = [4]int{-Cols - 1, -Cols + 1, Cols - 1, Cols + 1}

	// 相飞田字：落点 = 眼位方向再走一步
	bishopJumps = [4]int{2 * (-Cols - 1), 2 * (-Cols + 1), 2 * (Cols - 1), 2 * (Cols + 1)}

	// 马走日：按正交马腿方向分组，每条腿两个落点
	knightJumps = [4][2]int{
		{-2*Cols - 1, -2*Cols + 1}, // 腿 -11
		{2*Cols - 1, 2*Cols + 1},   // 腿 +11
		{-Cols - 2, Cols - 2},      // 腿 -1
		{-Cols + 2, Cols + 2},      // 腿 +1
	}

	// 反向查“马是否攻击此格”：按对角腿方向分组
	knightChecks = [4][2]int{
		{-2*Cols - 1, -Cols - 2}, // 腿 -12
		{-2*Cols + 1, -Cols + 2}, // 腿 -10
		{2*Cols - 1, Cols - 2},   // 腿 +10
		{2*Cols + 1, Cols + 2},   // 腿 +12
	}

	// 兵的候选步：先直进，过河后才试横移
	pawnSteps = [2][3]int{
		{-Cols, -1, 1}, // 红
		{Cols, -1, 1},  // 黑
	}

	// 反向查“兵是否攻击此格”：攻击方的兵位于目标格的正后方一格
	pawnChecks = [2]int{Cols, -Cols}
)

// 区域表：0=对方半场或界外，1=己方半场，2=己方九宫。
// 兵过河、相不过河、帅仕不出宫都用它判定。
var boardZones = buildBoardZones()

// 真实格的紧凑列表，全盘扫描时跳过哨兵格。
var realSquares = buildRealSquares()

func buildBoardZones() [2][NumSquares]uint8 {
	var zones [2][NumSquares]uint8
	for sq := 0; sq < NumSquares; sq++ {
		if !onBoardSq(sq) {
			continue
		}
		f, r := fileOf(sq), rankOf(sq)
		if r <= 4 {
			zones[Red][sq] = 1
			if f >= 3 && f <= 5 && r <= 2 {
				zones[Red][sq] = 2
			}
		} else {
			zones[Black][sq] = 1
			if f >= 3 && f <= 5 && r >= 7 {
				zones[Black][sq] = 2
			}
		}
	}
	return zones
}

func buildRealSquares() [Files * Ranks]int {
	var squares [Files * Ranks]int
	n := 0
	for sq := 0; sq < NumSquares; sq++ {
		if onBoardSq(sq) {
			squares[n] = sq
			n++
		}
	}
	return squares
}

// zoneOf 带界外保护的区域查询；相飞田字的落点可能越出数组，按界外处理。
func zoneOf(side Side, sq int) uint8 {
	if sq < 0 || sq >= NumSquares {
		return 0
	}
	return boardZones[side][sq]
}

var ErrInvalidSquare = errors.New("invalid square")

// SquareName 返回坐标记法，如 23 -> "a9"。
func SquareName(sq int) string {
	if !onBoardSq(sq) {
		return "xx"
	}
	return string([]byte{byte('a' + fileOf(sq)), byte('0' + rankOf(sq))})
}

// ParseSquare 解析 "h3" 这样的坐标记法。
func ParseSquare(s string) (int, error) {
	if len(s) != 2 {
		return SquareNone, ErrInvalidSquare
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '0')
	if file < 0 || file >= Files || rank < 0 || rank >= Ranks {
		return SquareNone, ErrInvalidSquare
	}
	return squareOf(file, rank), nil
}

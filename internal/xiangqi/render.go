package xiangqi

import (
	"fmt"
	"strings"
)

// String 输出带边框的 ASCII 盘面加几行状态摘要，只用于调试和日志。
func (p *Position) String() string {
	const sep = " +---+---+---+---+---+---+---+---+---+\n"

	var sb strings.Builder
	sb.WriteByte('\n')
	sb.WriteString(sep)
	for rank := Ranks - 1; rank >= 0; rank-- {
		for file := 0; file < Files; file++ {
			ch := byte(' ')
			if pc := p.board[squareOf(file, rank)]; pc != 0 {
				ch = pieceChar(pc)
			}
			fmt.Fprintf(&sb, " | %c", ch)
		}
		fmt.Fprintf(&sb, " | %d\n", rank)
		sb.WriteString(sep)
	}
	sb.WriteString("   a   b   c   d   e   f   g   h   i\n\n")

	fmt.Fprintf(&sb, " Side to move: %s\n", p.sideToMove)
	fmt.Fprintf(&sb, " Hash key:     %016x\n", p.hash)
	fmt.Fprintf(&sb, " King squares: %s %s\n",
		SquareName(p.kingSquare[Red]), SquareName(p.kingSquare[Black]))
	fmt.Fprintf(&sb, " Rule 60:      %d\n", p.rule60)
	fmt.Fprintf(&sb, " Game ply:     %d\n", p.gamePly)
	return sb.String()
}

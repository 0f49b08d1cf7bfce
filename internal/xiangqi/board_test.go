package xiangqi

import "testing"

func TestSquareCoordinates(t *testing.T) {
	cases := []struct {
		name string
		sq   int
	}{
		{"a9", 23},
		{"i9", 31},
		{"e4", 82},
		{"a0", 122},
		{"e0", 126},
		{"i0", 130},
	}
	for _, c := range cases {
		sq, err := ParseSquare(c.name)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", c.name, err)
		}
		if sq != c.sq {
			t.Fatalf("ParseSquare(%q): got=%d want=%d", c.name, sq, c.sq)
		}
		if got := SquareName(c.sq); got != c.name {
			t.Fatalf("SquareName(%d): got=%q want=%q", c.sq, got, c.name)
		}
	}
}

func TestParseSquareRejectsBadCoordinates(t *testing.T) {
	for _, s := range []string{"", "e", "e10", "j0", "55", "xx"} {
		if _, err := ParseSquare(s); err == nil {
			t.Fatalf("ParseSquare(%q) should fail", s)
		}
	}
}

func TestRealSquaresCoverBoard(t *testing.T) {
	seen := make(map[int]bool, len(realSquares))
	last := -1
	for _, sq := range realSquares {
		if !onBoardSq(sq) {
			t.Fatalf("real square %d is off board", sq)
		}
		if sq <= last {
			t.Fatalf("real squares not ascending at %d", sq)
		}
		last = sq
		seen[sq] = true
	}
	if realSquares[0] != 23 || realSquares[len(realSquares)-1] != 130 {
		t.Fatalf("real square range: got=[%d,%d] want=[23,130]",
			realSquares[0], realSquares[len(realSquares)-1])
	}
	for sq := 0; sq < NumSquares; sq++ {
		if onBoardSq(sq) != seen[sq] {
			t.Fatalf("square %d: onBoard=%v listed=%v", sq, onBoardSq(sq), seen[sq])
		}
	}
}

func TestBoardZones(t *testing.T) {
	cases := []struct {
		side Side
		sq   string
		zone uint8
	}{
		{Red, "e0", 2},
		{Red, "d2", 2},
		{Red, "f1", 2},
		{Red, "c0", 1},
		{Red, "e3", 1},
		{Red, "e4", 1},
		{Red, "e5", 0},
		{Red, "e9", 0},
		{Black, "e9", 2},
		{Black, "d7", 2},
		{Black, "e5", 1},
		{Black, "a8", 1},
		{Black, "e4", 0},
		{Black, "f1", 0},
	}
	for _, c := range cases {
		sq, _ := ParseSquare(c.sq)
		if got := zoneOf(c.side, sq); got != c.zone {
			t.Fatalf("zone(%v,%s): got=%d want=%d", c.side, c.sq, got, c.zone)
		}
	}
	if zoneOf(Red, -1) != 0 || zoneOf(Red, NumSquares) != 0 || zoneOf(Red, 0) != 0 {
		t.Fatalf("sentinels and out-of-range squares must be zone 0")
	}
}

func emptyBoardPosition() *Position {
	p := &Position{
		kingSquare: [2]int{SquareNone, SquareNone},
		st:         &StateFrame{},
	}
	for sq := range p.board {
		if !onBoardSq(sq) {
			p.board[sq] = Offboard
		}
	}
	return p
}

// 走法生成和反向攻击探测必须互为镜像：空盘上马从 A 跳得到 B，
// 等价于 B 被 A 上的马攻击。整盘扫一遍，表抄错一个数就会炸。
func TestKnightMovesMatchAttacks(t *testing.T) {
	p := emptyBoardPosition()
	knight := makePiece(Red, PieceKnight)
	for _, from := range realSquares {
		p.board[from] = knight
		var moves []Move
		genKnightMoves(p, from, &moves, false)
		attacked := make(map[int]bool, len(moves))
		for _, m := range moves {
			attacked[m.To()] = true
		}
		for _, to := range realSquares {
			if to == from {
				continue
			}
			if got := p.IsSquareAttacked(to, Red); got != attacked[to] {
				t.Fatalf("knight on %s: attacks %s=%v but generates=%v",
					SquareName(from), SquareName(to), got, attacked[to])
			}
		}
		p.board[from] = 0
	}
}

func TestCannonAttackNeedsExactlyOneScreen(t *testing.T) {
	p := emptyBoardPosition()
	set := func(name string, pc Piece) {
		sq, _ := ParseSquare(name)
		p.board[sq] = pc
	}
	at := func(name string) int {
		sq, _ := ParseSquare(name)
		return sq
	}

	set("a0", makePiece(Red, PieceCannon))
	set("a4", makePiece(Red, PiecePawn))

	if !p.IsSquareAttacked(at("a7"), Red) {
		t.Fatalf("cannon a0 with screen a4 must attack a7")
	}
	if p.IsSquareAttacked(at("a4"), Red) {
		t.Fatalf("cannon must not attack without a screen")
	}
	if p.IsSquareAttacked(at("b0"), Red) {
		t.Fatalf("cannon must not attack adjacent square without a screen")
	}

	// 第二个子挡住炮线之后的格子
	set("a6", makePiece(Black, PieceRook))
	if !p.IsSquareAttacked(at("a6"), Red) {
		t.Fatalf("first piece behind the screen is attacked")
	}
	if p.IsSquareAttacked(at("a8"), Red) {
		t.Fatalf("squares behind the capture target are shielded")
	}
}

func TestPawnAttackProbe(t *testing.T) {
	p := emptyBoardPosition()
	e5, _ := ParseSquare("e5")
	e6, _ := ParseSquare("e6")
	e4, _ := ParseSquare("e4")
	p.board[e5] = makePiece(Red, PiecePawn)
	if !p.IsSquareAttacked(e6, Red) {
		t.Fatalf("red pawn on e5 must attack e6")
	}
	if p.IsSquareAttacked(e4, Red) {
		t.Fatalf("pawns never attack backwards")
	}

	p.board[e5] = makePiece(Black, PiecePawn)
	if !p.IsSquareAttacked(e4, Black) {
		t.Fatalf("black pawn on e5 must attack e4")
	}
	if p.IsSquareAttacked(e6, Black) {
		t.Fatalf("black pawns advance toward rank 0 only")
	}
}

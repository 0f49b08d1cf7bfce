package xiangqi

import "testing"

func TestStartFENRoundTrip(t *testing.T) {
	p := NewPosition()
	if got := p.FEN(); got != StartFEN {
		t.Fatalf("start fen round trip:\n got=%q\nwant=%q", got, StartFEN)
	}
}

func TestParseFENPiecePlacement(t *testing.T) {
	p := NewPosition()
	checks := []struct {
		sq   string
		side Side
		pt   PieceType
	}{
		{"a0", Red, PieceRook},
		{"e0", Red, PieceKing},
		{"b2", Red, PieceCannon},
		{"e3", Red, PiecePawn},
		{"c0", Red, PieceBishop},
		{"e9", Black, PieceKing},
		{"h7", Black, PieceCannon},
		{"i9", Black, PieceRook},
		{"a6", Black, PiecePawn},
	}
	for _, c := range checks {
		sq, _ := ParseSquare(c.sq)
		pc := p.PieceOn(sq)
		if pc.Side() != c.side || pc.Type() != c.pt {
			t.Fatalf("%s: got side=%v type=%d", c.sq, pc.Side(), pc.Type())
		}
	}

	e0, _ := ParseSquare("e0")
	e9, _ := ParseSquare("e9")
	if p.KingSquare(Red) != e0 || p.KingSquare(Black) != e9 {
		t.Fatalf("king squares: got=(%s,%s)",
			SquareName(p.KingSquare(Red)), SquareName(p.KingSquare(Black)))
	}
	if p.PieceOn(0) != Offboard || p.PieceOn(-1) != Offboard {
		t.Fatalf("sentinel squares must read as off-board")
	}
}

func TestParseFENAliases(t *testing.T) {
	// e/h 是 b/n 的别名（elephant/horse 记法），输出统一用规范字母
	alias := mustParseFEN(t, "rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR w - - 0 1")
	if alias.Hash() != NewPosition().Hash() {
		t.Fatalf("alias letters decode to a different position")
	}
	if alias.FEN() != StartFEN {
		t.Fatalf("alias round trip: got=%q", alias.FEN())
	}
}

func TestParseFENCounters(t *testing.T) {
	board := "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR"
	p := mustParseFEN(t, board+" b - - 7 30")
	if p.Rule60() != 7 {
		t.Fatalf("rule60: got=%d want=7", p.Rule60())
	}
	if p.GamePly() != 59 {
		t.Fatalf("gamePly: got=%d want=59", p.GamePly())
	}
	if p.SideToMove() != Black {
		t.Fatalf("side: got=%v want=%v", p.SideToMove(), Black)
	}

	// 两个占位段可以整个省略
	q := mustParseFEN(t, board+" w 3 12")
	if q.Rule60() != 3 || q.GamePly() != 22 {
		t.Fatalf("lenient parse: rule60=%d gamePly=%d", q.Rule60(), q.GamePly())
	}

	// 只有盘面和走子方也行
	r := mustParseFEN(t, board+" w")
	if r.Rule60() != 0 || r.GamePly() != 0 {
		t.Fatalf("bare fen: rule60=%d gamePly=%d", r.Rule60(), r.GamePly())
	}
}

func TestParseFENRejectsBadInput(t *testing.T) {
	bad := []string{
		"",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/RNBAKABNR w",           // 少一行
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR x - - 0 1", // 走子方
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNZ w",         // 坏字母
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RRNBAKABNR w",        // 行太长
		"9/9/9/9/9/9/9/9/9/9 w",                                                 // 没有帅
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/RNBAKABNR w",       // 两个红帅
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - -1 1",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 0",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Fatalf("ParseFEN(%q) should fail", fen)
		}
	}
}

func TestParseMove(t *testing.T) {
	p := NewPosition()

	m, err := p.ParseMove("h2e2")
	if err != nil {
		t.Fatalf("ParseMove(h2e2): %v", err)
	}
	h2, _ := ParseSquare("h2")
	e2, _ := ParseSquare("e2")
	if m.From() != h2 || m.To() != e2 || m.Piece() != makePiece(Red, PieceCannon) || m.IsCapture() {
		t.Fatalf("h2e2 decoded wrong: %s captured=%d", m, m.Captured())
	}

	capture, err := p.ParseMove("b2b9")
	if err != nil {
		t.Fatalf("ParseMove(b2b9): %v", err)
	}
	if capture.Captured() != makePiece(Black, PieceKnight) {
		t.Fatalf("b2b9 captured: got=%d", capture.Captured())
	}

	for _, s := range []string{"", "h2", "h2e", "j2e2", "e4e5", "h9g7", "a0b0"} {
		if _, err := p.ParseMove(s); err == nil {
			t.Fatalf("ParseMove(%q) should fail", s)
		}
	}
}

package xiangqi

import (
	"sort"
	"strings"
	"testing"
)

func mustParseFEN(t *testing.T, fen string) *Position {
	t.Helper()
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func moveTexts(moves []Move) string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	sort.Strings(texts)
	return strings.Join(texts, " ")
}

func movesOfType(moves []Move, pt PieceType) []Move {
	var out []Move
	for _, m := range moves {
		if m.Piece().Type() == pt {
			out = append(out, m)
		}
	}
	return out
}

func TestOpeningMoveCount(t *testing.T) {
	p := NewPosition()
	moves := p.GenerateMoves(make([]Move, 0, MaxMoves), false)
	if len(moves) != 44 {
		t.Fatalf("opening pseudo moves: got=%d want=44\n%s", len(moves), moveTexts(moves))
	}

	counts := map[PieceType]int{}
	for _, m := range moves {
		counts[m.Piece().Type()]++
	}
	want := map[PieceType]int{
		PieceRook:    4,
		PieceKnight:  4,
		PieceBishop:  4,
		PieceAdvisor: 2,
		PieceKing:    1,
		PiecePawn:    5,
		PieceCannon:  24,
	}
	for pt, n := range want {
		if counts[pt] != n {
			t.Fatalf("piece type %d: got=%d want=%d moves", pt, counts[pt], n)
		}
	}

	// 开局没有送将步，伪合法与合法应当一致
	if legal := p.GenerateLegalMoves(); len(legal) != 44 {
		t.Fatalf("opening legal moves: got=%d want=44", len(legal))
	}
}

func TestOpeningCapturesOnly(t *testing.T) {
	p := NewPosition()
	caps := p.GenerateMoves(nil, true)
	if len(caps) != 2 {
		t.Fatalf("opening captures: got=%d want=2 (%s)", len(caps), moveTexts(caps))
	}
	for _, m := range caps {
		if !m.IsCapture() || m.Piece().Type() != PieceCannon || m.Captured().Type() != PieceKnight {
			t.Fatalf("unexpected opening capture %s", m)
		}
	}
}

func TestCannonMovesFromOpening(t *testing.T) {
	p := NewPosition()
	from, _ := ParseSquare("b2")
	var moves []Move
	genPieceMoves(p, from, &moves, false)

	want := "b2a2 b2b1 b2b3 b2b4 b2b5 b2b6 b2b9 b2c2 b2d2 b2e2 b2f2 b2g2"
	if got := moveTexts(moves); got != want {
		t.Fatalf("cannon b2 moves:\n got=%s\nwant=%s", got, want)
	}
}

func TestRookStopsAtFirstPiece(t *testing.T) {
	p := NewPosition()
	from, _ := ParseSquare("a0")
	var moves []Move
	genPieceMoves(p, from, &moves, false)
	if got := moveTexts(moves); got != "a0a1 a0a2" {
		t.Fatalf("rook a0 moves: got=%s want=%s", got, "a0a1 a0a2")
	}
}

func TestPawnCrossingRiver(t *testing.T) {
	p := mustParseFEN(t, "4k4/9/9/4P4/9/9/4P4/9/9/4K4 w - - 0 1")
	moves := movesOfType(p.GenerateMoves(nil, false), PiecePawn)
	want := "e3e4 e6d6 e6e7 e6f6"
	if got := moveTexts(moves); got != want {
		t.Fatalf("pawn moves:\n got=%s\nwant=%s", got, want)
	}
}

func TestKnightLegBlocked(t *testing.T) {
	open := mustParseFEN(t, "4k4/9/9/9/9/4N4/9/9/9/4K4 w - - 0 1")
	moves := movesOfType(open.GenerateMoves(nil, false), PieceKnight)
	if len(moves) != 8 {
		t.Fatalf("free knight on e4: got=%d want=8 moves (%s)", len(moves), moveTexts(moves))
	}

	// 垫上 e5 的马腿，朝 6 路的两个落点一起消失
	blocked := mustParseFEN(t, "4k4/9/9/9/4P4/4N4/9/9/9/4K4 w - - 0 1")
	moves = movesOfType(blocked.GenerateMoves(nil, false), PieceKnight)
	if len(moves) != 6 {
		t.Fatalf("blocked knight on e4: got=%d want=6 moves (%s)", len(moves), moveTexts(moves))
	}
	for _, m := range moves {
		if name := SquareName(m.To()); name == "d6" || name == "f6" {
			t.Fatalf("move %s jumps over a blocked leg", m)
		}
	}
}

func TestBishopEyeBlocked(t *testing.T) {
	open := mustParseFEN(t, "4k4/9/9/9/9/9/9/9/9/2B1K4 w - - 0 1")
	moves := movesOfType(open.GenerateMoves(nil, false), PieceBishop)
	if got := moveTexts(moves); got != "c0a2 c0e2" {
		t.Fatalf("free bishop c0: got=%s want=%s", got, "c0a2 c0e2")
	}

	// b1 塞象眼，a2 落点作废，落点本身是空的也没用
	blocked := mustParseFEN(t, "4k4/9/9/9/9/9/9/9/1P7/2B1K4 w - - 0 1")
	moves = movesOfType(blocked.GenerateMoves(nil, false), PieceBishop)
	if got := moveTexts(moves); got != "c0e2" {
		t.Fatalf("blocked bishop c0: got=%s want=%s", got, "c0e2")
	}
}

func TestBishopStaysOnOwnSide(t *testing.T) {
	p := mustParseFEN(t, "4k4/9/9/9/9/2B6/9/9/9/4K4 w - - 0 1")
	moves := movesOfType(p.GenerateMoves(nil, false), PieceBishop)
	if got := moveTexts(moves); got != "c4a2 c4e2" {
		t.Fatalf("riverbank bishop c4: got=%s want=%s", got, "c4a2 c4e2")
	}
}

func TestAdvisorAndKingStayInPalace(t *testing.T) {
	p := mustParseFEN(t, "4k4/9/9/9/9/9/9/9/9/3AK4 w - - 0 1")
	moves := p.GenerateMoves(nil, false)

	if got := moveTexts(movesOfType(moves, PieceAdvisor)); got != "d0e1" {
		t.Fatalf("advisor d0: got=%s want=%s", got, "d0e1")
	}
	if got := moveTexts(movesOfType(moves, PieceKing)); got != "e0e1 e0f0" {
		t.Fatalf("king e0: got=%s want=%s", got, "e0e1 e0f0")
	}
}

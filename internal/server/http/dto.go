package httpserver

import (
	"fmt"

	"xiangqi/internal/server/game"
)

// 着法一律用 "h2e2" 坐标文本传输，前端不用关心内部编码。

type NewGameRequest struct {
	FEN string `json:"fen"` // 留空用初始局面
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type UndoRequest struct {
	GameID string `json:"game_id"`
}

type EngineMoveRequest struct {
	GameID string `json:"game_id"`
}

// GameResponse 是所有对局接口共用的局面视图，
// 也是 /api/watch 推给订阅方的消息体。
type GameResponse struct {
	GameID     string   `json:"game_id"`
	FEN        string   `json:"fen"`
	ToMove     string   `json:"to_move"` // "red" / "black"
	Moves      []string `json:"moves"`
	LegalMoves []string `json:"legal_moves"`
	InCheck    bool     `json:"in_check"`
	Status     string   `json:"status"` // "ongoing" / "no_moves" / "repetition" / "rule60_draw"
	Hash       string   `json:"hash"`
}

// EngineMoveResponse 在局面视图外带上引擎挑的那步和它的静态分。
type EngineMoveResponse struct {
	GameResponse
	BestMove string `json:"best_move"`
	Score    int    `json:"score"` // 落子后走子方视角
}

type PerftRequest struct {
	FEN    string `json:"fen"` // 留空用初始局面
	Depth  int    `json:"depth"`
	Divide bool   `json:"divide"`
}

type DivideDTO struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

type PerftResponse struct {
	Depth  int         `json:"depth"`
	Nodes  uint64      `json:"nodes"`
	TimeMs int64       `json:"time_ms"`
	Divide []DivideDTO `json:"divide,omitempty"`
}

func snapshotToDTO(id string, s game.Snapshot) GameResponse {
	return GameResponse{
		GameID:     id,
		FEN:        s.FEN,
		ToMove:     s.ToMove.String(),
		Moves:      s.Moves,
		LegalMoves: s.LegalMoves,
		InCheck:    s.InCheck,
		Status:     s.Status,
		Hash:       fmt.Sprintf("%016x", s.Hash),
	}
}

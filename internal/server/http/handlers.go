package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"xiangqi/internal/engine"
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 装着 /api/* 的全部状态：对局管理器、引擎和 watch 订阅表。
// exe 本地跑、内存管理对局，人类玩足够了。
type Handler struct {
	games    *game.Manager
	aiEngine *engine.Engine
	hub      *hub
}

func NewHandler() *Handler {
	return &Handler{
		games:    game.NewManager(),
		aiEngine: engine.NewEngine(),
		hub:      newHub(),
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	// 空请求体也算合法：开标准局
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.NewGame(req.FEN)
	if err != nil {
		http.Error(w, "invalid fen", http.StatusBadRequest)
		return
	}
	writeJSON(w, snapshotToDTO(g.ID, g.Snapshot()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	snap, err := g.Apply(req.Move)
	if err != nil {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}

	resp := snapshotToDTO(g.ID, snap)
	h.hub.broadcast(g.ID, resp)
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	writeJSON(w, snapshotToDTO(g.ID, g.Snapshot()))
}

// legal_moves 就是 state 的别名：合法着法本来就在局面视图里。
func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	h.handleState(w, r)
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req UndoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	snap, err := g.Revert()
	if err != nil {
		http.Error(w, "no moves to undo", http.StatusBadRequest)
		return
	}

	resp := snapshotToDTO(g.ID, snap)
	h.hub.broadcast(g.ID, resp)
	writeJSON(w, resp)
}

func (h *Handler) handleEngineMove(w http.ResponseWriter, r *http.Request) {
	var req EngineMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	var score int
	m, snap, err := g.ApplyPicked(func(p *xiangqi.Position) xiangqi.Move {
		mv := h.aiEngine.PickMove(p)
		if mv != xiangqi.NoMove {
			var st xiangqi.StateFrame
			if p.MakeMove(mv, &st) {
				score = -engine.Evaluate(p)
				p.UndoMove(mv)
			}
		}
		return mv
	})
	if err != nil {
		if errors.Is(err, game.ErrNoMoves) {
			// 无着可走不是协议错误，把终局状态原样返回
			writeJSON(w, EngineMoveResponse{GameResponse: snapshotToDTO(g.ID, snap)})
			return
		}
		http.Error(w, "engine move failed", http.StatusInternalServerError)
		return
	}

	resp := EngineMoveResponse{
		GameResponse: snapshotToDTO(g.ID, snap),
		BestMove:     m.String(),
		Score:        score,
	}
	h.hub.broadcast(g.ID, resp.GameResponse)
	writeJSON(w, resp)
}

func (h *Handler) handlePerft(w http.ResponseWriter, r *http.Request) {
	var req PerftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Depth < 1 || req.Depth > 6 {
		http.Error(w, "depth out of range", http.StatusBadRequest)
		return
	}

	pos := xiangqi.NewPosition()
	if req.FEN != "" {
		var err error
		pos, err = xiangqi.ParseFEN(req.FEN)
		if err != nil {
			http.Error(w, "invalid fen", http.StatusBadRequest)
			return
		}
	}

	// Engine 不做并发安全，每个请求自备一个
	e := engine.NewEngine()
	start := time.Now()
	resp := PerftResponse{Depth: req.Depth}
	if req.Divide {
		entries, total := e.Divide(pos, req.Depth)
		resp.Nodes = total
		resp.Divide = make([]DivideDTO, len(entries))
		for i, en := range entries {
			resp.Divide[i] = DivideDTO{Move: en.Move.String(), Nodes: en.Nodes}
		}
	} else {
		resp.Nodes = e.Perft(pos, req.Depth)
	}
	resp.TimeMs = time.Since(start).Milliseconds()
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

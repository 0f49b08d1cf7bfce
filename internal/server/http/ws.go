package httpserver

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// hub 按对局 ID 维护 watch 连接。落子、悔棋、引擎走子之后把新局面
// 推给该局的所有订阅方；写失败的连接当场摘掉。
type hub struct {
	mu       sync.RWMutex
	watchers map[string]map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{watchers: make(map[string]map[*websocket.Conn]struct{})}
}

func (h *hub) add(id string, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.watchers[id]
	if !ok {
		set = make(map[*websocket.Conn]struct{})
		h.watchers[id] = set
	}
	set[c] = struct{}{}
}

func (h *hub) remove(id string, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.watchers[id]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.watchers, id)
		}
	}
}

func (h *hub) broadcast(id string, v any) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.watchers[id]))
	for c := range h.watchers[id] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.WriteJSON(v); err != nil {
			h.remove(id, c)
			c.Close()
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 本地服务，前端和 API 同源or file://，不做来源过滤
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWatch 升级 GET /api/watch/{id} 为 websocket：先推一帧当前局面，
// 之后跟着对局更新走。读循环只用来探测断开，进来的消息一律丢弃。
func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	g, err := h.games.Get(id)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("watch upgrade:", err)
		return
	}

	h.hub.add(id, conn)
	if err := conn.WriteJSON(snapshotToDTO(id, g.Snapshot())); err != nil {
		h.hub.remove(id, conn)
		conn.Close()
		return
	}

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.remove(id, conn)
				conn.Close()
				return
			}
		}
	}()
}

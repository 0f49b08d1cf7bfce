package httpserver

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Router 把 API 和静态资源装到一个 gorilla/mux 上，外面直接
// ListenAndServe 即可。访问日志走 handlers.LoggingHandler。
func (h *Handler) Router(desktopDir, mobileDir string) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/new_game", h.handleNewGame).Methods(http.MethodPost)
	api.HandleFunc("/play", h.handlePlay).Methods(http.MethodPost)
	api.HandleFunc("/state", h.handleState).Methods(http.MethodPost)
	api.HandleFunc("/legal_moves", h.handleLegalMoves).Methods(http.MethodPost)
	api.HandleFunc("/undo", h.handleUndo).Methods(http.MethodPost)
	api.HandleFunc("/engine_move", h.handleEngineMove).Methods(http.MethodPost)
	api.HandleFunc("/perft", h.handlePerft).Methods(http.MethodPost)
	api.HandleFunc("/watch/{id}", h.handleWatch).Methods(http.MethodGet)

	registerStaticRoutes(r, desktopDir, mobileDir)

	return handlers.LoggingHandler(os.Stdout, r)
}

package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const gamePath = "/tic-tac-toe"

func NewRouter(logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger.With("component", "http")))
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.Ping)

	r.Route(gamePath, func(game chi.Router) {
		game.Get("/tile", h.Tile)
		game.Get("/winner", h.Winner)
		game.Get("/move", h.Move)
		game.Get("/restart", h.Restart)
		game.Get("/state", h.State)
		game.Get("/stats", h.Stats)
	})

	return r
}

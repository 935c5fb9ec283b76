package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/tictactoe"
)

const (
	noCache            = "no-cache,max-age=0"
	redirectParam      = "redirect"
	missingRedirectURL = "missing redirect url"
)

type Handlers interface {
	Ping(w http.ResponseWriter, _ *http.Request)

	Tile(w http.ResponseWriter, r *http.Request)
	Winner(w http.ResponseWriter, r *http.Request)

	Move(w http.ResponseWriter, r *http.Request)
	Restart(w http.ResponseWriter, r *http.Request)

	State(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type gameUseCase interface {
	Tile(ctx context.Context, key string, x, y int) (entity.Mark, error)
	Winner(ctx context.Context, key string) entity.Mark
	Move(ctx context.Context, key string, x, y int) (tictactoe.MoveResult, error)
	Restart(ctx context.Context, key string)
	State(ctx context.Context, key string) tictactoe.State
	Stats(ctx context.Context) (entity.Stats, error)
}

type sessionResolver interface {
	Resolve(r *http.Request) string
}

type handlers struct {
	logger   *slog.Logger
	game     gameUseCase
	resolver sessionResolver
}

func NewHandlers(logger *slog.Logger, game gameUseCase, resolver sessionResolver) Handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		game:     game,
		resolver: resolver,
	}
}

func (that *handlers) Tile(w http.ResponseWriter, r *http.Request) {
	x, y, err := parseCoordinates(r)
	if err != nil {
		http.Error(w, apperror.ErrInvalidCoordinate.Error(), http.StatusBadRequest)
		return
	}

	mark, err := that.game.Tile(r.Context(), that.resolver.Resolve(r), x, y)
	if err != nil {
		http.Error(w, apperror.ErrInvalidCoordinate.Error(), http.StatusBadRequest)
		return
	}

	that.writeImage(w, tileImage(mark))
}

func (that *handlers) Winner(w http.ResponseWriter, r *http.Request) {
	that.writeImage(w, winnerImage(that.game.Winner(r.Context(), that.resolver.Resolve(r))))
}

// Move - plays and sends the visitor back to the page. Rejected moves are
// not reported: the page simply shows the unchanged board.
func (that *handlers) Move(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Move")

	x, y, err := parseCoordinates(r)
	if err != nil {
		http.Error(w, apperror.ErrInvalidCoordinate.Error(), http.StatusBadRequest)
		return
	}

	key := that.resolver.Resolve(r)

	_, err = that.game.Move(r.Context(), key, x, y)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrGameOver), errors.Is(err, apperror.ErrInvalidMove):
		log.Debug("move rejected", "session", key, "error", err)
	default:
		log.Warn("move failed", "session", key, "error", err)
	}

	redirect(w, r)
}

func (that *handlers) Restart(w http.ResponseWriter, r *http.Request) {
	that.game.Restart(r.Context(), that.resolver.Resolve(r))

	redirect(w, r)
}

func (that *handlers) State(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.State(r.Context(), that.resolver.Resolve(r)))
}

func (that *handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.game.Stats(r.Context())
	if err != nil {
		that.logger.Error("failed to get stats", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

func (that *handlers) writeImage(w http.ResponseWriter, image []byte) {
	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Cache-Control", noCache)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(image); err != nil {
		that.logger.Debug("failed to write image", "error", err)
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", noCache)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Debug("failed to write response", "error", err)
	}
}

func redirect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", noCache)

	target := r.URL.Query().Get(redirectParam)
	if target == "" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(missingRedirectURL))

		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

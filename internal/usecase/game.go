package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/tictactoe"
)

type GameUseCase interface {
	Tile(ctx context.Context, key string, x, y int) (entity.Mark, error)
	Winner(ctx context.Context, key string) entity.Mark

	Move(ctx context.Context, key string, x, y int) (tictactoe.MoveResult, error)
	Restart(ctx context.Context, key string)

	State(ctx context.Context, key string) tictactoe.State
	Stats(ctx context.Context) (entity.Stats, error)
}

type sessionRegistryDep interface {
	GetOrCreate(key string) *tictactoe.Session
}

type resultRepoDep interface {
	Record(ctx context.Context, gameID string, winner entity.Mark) (bool, error)
	GetStats(ctx context.Context) (entity.Stats, error)
}

type gameUseCase struct {
	logger     *slog.Logger
	registry   sessionRegistryDep
	resultRepo resultRepoDep
}

func NewGameUseCase(logger *slog.Logger, registry sessionRegistryDep, resultRepo resultRepoDep) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "game_usecase"),
		registry:   registry,
		resultRepo: resultRepo,
	}
}

func (that *gameUseCase) Tile(_ context.Context, key string, x, y int) (entity.Mark, error) {
	mark, err := that.registry.GetOrCreate(key).Tile(x, y)
	if err != nil {
		return entity.MarkEmpty, fmt.Errorf("failed to get tile: %w", err)
	}

	return mark, nil
}

func (that *gameUseCase) Winner(_ context.Context, key string) entity.Mark {
	return that.registry.GetOrCreate(key).Winner()
}

// Move - plays for the visitor behind key. The opponent's turn is not bound to
// the request: a client that stops waiting still gets the answer on its next poll.
func (that *gameUseCase) Move(ctx context.Context, key string, x, y int) (tictactoe.MoveResult, error) {
	log := that.logger.With("method", "Move", "session", key)

	ctx = context.WithoutCancel(ctx)

	result, err := that.registry.GetOrCreate(key).Move(ctx, x, y)
	if err != nil {
		return result, fmt.Errorf("failed to make move: %w", err)
	}

	log.Debug("move played",
		"game", result.GameID,
		"human", result.HumanCell,
		"opponent", result.OpponentCell,
		"winner", result.Winner,
	)

	if result.Winner != entity.MarkEmpty {
		that.recordResult(ctx, result.GameID, result.Winner)
	}

	return result, nil
}

func (that *gameUseCase) Restart(_ context.Context, key string) {
	that.registry.GetOrCreate(key).Reset()
}

func (that *gameUseCase) State(_ context.Context, key string) tictactoe.State {
	return that.registry.GetOrCreate(key).Snapshot()
}

func (that *gameUseCase) Stats(ctx context.Context) (entity.Stats, error) {
	stats, err := that.resultRepo.GetStats(ctx)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

// recordResult - a failure to count a game never fails the move.
func (that *gameUseCase) recordResult(ctx context.Context, gameID string, winner entity.Mark) {
	log := that.logger.With("method", "recordResult", "game", gameID)

	recorded, err := that.resultRepo.Record(ctx, gameID, winner)
	if err != nil {
		log.Error("failed to record game result", "error", err)
		return
	}

	if recorded {
		log.Info("game finished", "winner", winner)
	}
}

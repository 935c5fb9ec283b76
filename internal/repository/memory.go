package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

type memoryResult struct {
	mu       sync.Mutex
	recorded map[string]struct{}
	stats    entity.Stats
}

// NewMemoryResultRepository - process local tally, used when Redis is disabled.
func NewMemoryResultRepository() ResultRepository {
	return &memoryResult{
		recorded: make(map[string]struct{}),
	}
}

func (that *memoryResult) Record(_ context.Context, gameID string, winner entity.Mark) (bool, error) {
	if _, err := statsField(winner); err != nil {
		return false, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.recorded[gameID]; ok {
		return false, nil
	}

	if !that.stats.Add(winner) {
		return false, fmt.Errorf("%w: winner %q", ErrUnfinishedGame, winner)
	}

	that.recorded[gameID] = struct{}{}

	return true, nil
}

func (that *memoryResult) GetStats(_ context.Context) (entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.stats, nil
}

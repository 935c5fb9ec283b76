package oracle

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

type pacedOracle struct {
	next     Oracle
	min, max time.Duration
	int64n   func(n int64) int64
}

// Paced - makes next answer no sooner than a response time drawn from
// [minResponse, maxResponse], so the opponent does not reply instantly.
func Paced(next Oracle, minResponse, maxResponse time.Duration) Oracle {
	if maxResponse < minResponse {
		maxResponse = minResponse
	}

	if maxResponse <= 0 {
		return next
	}

	return &pacedOracle{
		next:   next,
		min:    minResponse,
		max:    maxResponse,
		int64n: rand.Int64N, //nolint: gosec // it's ok
	}
}

func (that *pacedOracle) Play(ctx context.Context, board entity.Board) (int, error) {
	responseTime := that.min
	if spread := int64(that.max - that.min); spread > 0 {
		responseTime += time.Duration(that.int64n(spread + 1))
	}

	timer := time.NewTimer(responseTime)
	defer timer.Stop()

	cell, err := that.next.Play(ctx, board)
	if err != nil {
		return -1, err
	}

	select {
	case <-timer.C:
		return cell, nil
	case <-ctx.Done():
		return -1, fmt.Errorf("%w: %w", ErrOracle, ctx.Err())
	}
}

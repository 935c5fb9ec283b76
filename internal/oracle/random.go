package oracle

import (
	"context"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

type Random struct {
	intn func(n int) int
}

func NewRandom() *Random {
	return &Random{intn: rand.IntN} //nolint: gosec // it's ok
}

// Play - picks a uniformly random empty cell.
func (that *Random) Play(_ context.Context, board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return -1, ErrNoAvailableMoves
	}

	return availableCells[that.intn(len(availableCells))], nil
}

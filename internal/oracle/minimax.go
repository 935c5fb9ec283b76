package oracle

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

const (
	LevelEasy   = "easy"
	LevelMedium = "medium"
	LevelHard   = "hard"
	LevelExpert = "expert"
)

var ErrUnknownLevel = errors.New("unknown minimax level")

// Minimax - game tree search over the remaining cells. The level decides how
// often it deviates from perfect play:
//   - easy: always random
//   - medium: random half of the time
//   - hard: perfect, random among equally good cells
//   - expert: perfect, lowest index among equally good cells
type Minimax struct {
	level string
	intn  func(n int) int
}

func NewMinimax(level string) (*Minimax, error) {
	switch level {
	case LevelEasy, LevelMedium, LevelHard, LevelExpert:
	case "":
		level = LevelExpert
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, level)
	}

	return &Minimax{level: level, intn: rand.IntN}, nil //nolint: gosec // it's ok
}

func (that *Minimax) Play(ctx context.Context, board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return -1, ErrNoAvailableMoves
	}

	if err := ctx.Err(); err != nil {
		return -1, fmt.Errorf("%w: %w", ErrOracle, err)
	}

	switch that.level {
	case LevelEasy:
		return that.pick(availableCells), nil
	case LevelMedium:
		if that.intn(2) == 0 {
			return that.pick(availableCells), nil
		}
	}

	best := bestCells(board, NextMark(board))
	if that.level == LevelExpert {
		return best[0], nil
	}

	return that.pick(best), nil
}

func (that *Minimax) pick(cells []int) int {
	return cells[that.intn(len(cells))]
}

// bestCells - every cell reaching the best minimax score for mark, ascending.
func bestCells(board entity.Board, mark entity.Mark) []int {
	bestScore := -entity.BoardSize - 2
	var best []int

	for _, cell := range board.EmptyCells() {
		board[cell] = mark
		score := -negamax(&board, mark.Opposite(), 1)
		board[cell] = entity.MarkEmpty

		switch {
		case score > bestScore:
			bestScore = score
			best = []int{cell}
		case score == bestScore:
			best = append(best, cell)
		}
	}

	return best
}

// negamax - score of board from the point of view of toMove. Quicker wins and
// slower losses score higher.
func negamax(board *entity.Board, toMove entity.Mark, depth int) int {
	switch board.WinningMark() {
	case toMove:
		return entity.BoardSize + 1 - depth
	case toMove.Opposite():
		return depth - entity.BoardSize - 1
	}

	if board.Full() {
		return 0
	}

	best := -entity.BoardSize - 2
	for cell, value := range board {
		if value != entity.MarkEmpty {
			continue
		}

		board[cell] = toMove
		score := -negamax(board, toMove.Opposite(), depth+1)
		board[cell] = entity.MarkEmpty

		if score > best {
			best = score
		}
	}

	return best
}

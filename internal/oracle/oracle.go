// Package oracle selects the computer opponent's moves. Every implementation
// receives a copy of the board and answers with a cell index in [0, 8].
package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

var (
	ErrOracle           = errors.New("oracle failed")
	ErrOracleTimeout    = fmt.Errorf("%w: timed out", ErrOracle)
	ErrIllegalMove      = fmt.Errorf("%w: illegal move", ErrOracle)
	ErrNoAvailableMoves = fmt.Errorf("%w: no available moves", ErrOracle)
	ErrUnknownKind      = errors.New("unknown oracle kind")
)

const (
	KindMinimax   = "minimax"
	KindRandom    = "random"
	KindOpenAI    = "openai"
	KindAnthropic = "anthropic"
)

type Oracle interface {
	Play(ctx context.Context, board entity.Board) (int, error)
}

// Func adapts a plain function to the Oracle interface.
type Func func(ctx context.Context, board entity.Board) (int, error)

func (f Func) Play(ctx context.Context, board entity.Board) (int, error) {
	return f(ctx, board)
}

// ValidateMove - checks that cell is an empty cell of board.
func ValidateMove(board entity.Board, cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d out of range", ErrIllegalMove, cell)
	}

	if board[cell] != entity.MarkEmpty {
		return fmt.Errorf("%w: cell %d is occupied", ErrIllegalMove, cell)
	}

	return nil
}

// NextMark - the mark whose turn it is on board, X moves first.
func NextMark(board entity.Board) entity.Mark {
	if board.Count(entity.MarkX) > board.Count(entity.MarkO) {
		return entity.MarkO
	}

	return entity.MarkX
}

type timeoutOracle struct {
	next    Oracle
	timeout time.Duration
}

// WithTimeout - bounds the wait for next. The result of an oracle that never
// resolves is dropped, the caller gets ErrOracleTimeout once timeout passes.
func WithTimeout(next Oracle, timeout time.Duration) Oracle {
	if timeout <= 0 {
		return next
	}

	return &timeoutOracle{next: next, timeout: timeout}
}

type playResult struct {
	cell int
	err  error
}

func (that *timeoutOracle) Play(ctx context.Context, board entity.Board) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	resultCh := make(chan playResult, 1)
	go func() {
		cell, err := that.next.Play(ctx, board)
		resultCh <- playResult{cell: cell, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return -1, wrap(res.err)
		}

		return res.cell, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return -1, fmt.Errorf("%w after %s", ErrOracleTimeout, that.timeout)
		}

		return -1, fmt.Errorf("%w: %w", ErrOracle, ctx.Err())
	}
}

// wrap - makes sure err matches ErrOracle.
func wrap(err error) error {
	if errors.Is(err, ErrOracle) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrOracleTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrOracle, err)
}

package tictactoe

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/oracle"
	mockedOracle "github.com/rocketscienceinc/tictactoe-tiles/mocks/oracle"
)

const ttl = 3 * time.Minute

var errOracleDown = errors.New("oracle down")

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (that *fakeClock) Now() time.Time {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.now
}

func (that *fakeClock) Advance(d time.Duration) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.now = that.now.Add(d)
}

func newTestSession(t *testing.T, opponent oracle.Oracle, clock *fakeClock) *Session {
	t.Helper()

	return NewSession(slog.New(slog.DiscardHandler), "visitor", opponent, ttl, clock.Now)
}

func TestSession_New(t *testing.T) {
	// Given: a new session
	session := newTestSession(t, mockedOracle.NewMockOracle(t), newFakeClock())

	// When: its state is read
	state := session.Snapshot()

	// Then: it is fresh, X is the human and O the opponent
	assert.Equal(t, StatusFresh, state.Status)
	assert.Equal(t, entity.Board{}, state.Board)
	assert.Equal(t, entity.MarkEmpty, state.Winner)
	assert.Equal(t, entity.MarkX, state.HumanMark)
	assert.Equal(t, entity.MarkO, state.OpponentMark)
	assert.Nil(t, state.ExpiresAt)
	assert.NotEmpty(t, state.GameID)
}

func TestSession_Move(t *testing.T) {
	ctx := context.Background()

	t.Run("Center move is answered by the oracle", func(t *testing.T) {
		// Given: a fresh session and an oracle answering with cell 0
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().
			Play(mock.Anything, entity.Board{4: entity.MarkX}).
			Return(0, nil).
			Once()

		clock := newFakeClock()
		session := newTestSession(t, opponent, clock)

		// When: the human plays the center
		result, err := session.Move(ctx, 1, 1)

		// Then: X is in the center, O in the corner and nobody has won
		require.NoError(t, err)
		assert.Equal(t, 4, result.HumanCell)
		assert.Equal(t, 0, result.OpponentCell)
		require.NoError(t, result.OracleErr)

		center, err := session.Tile(1, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, center)

		corner, err := session.Tile(0, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, corner)

		assert.Equal(t, entity.MarkEmpty, session.Winner())

		state := session.Snapshot()
		assert.Equal(t, StatusActive, state.Status)
		require.NotNil(t, state.ExpiresAt)
		assert.Equal(t, clock.Now().Add(ttl), *state.ExpiresAt)
	})

	t.Run("Completing the top row wins and freezes the game", func(t *testing.T) {
		// Given: X on cells 0 and 1 after two moves, O on 3 and 4
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(3, nil).Once()
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(4, nil).Once()

		session := newTestSession(t, opponent, newFakeClock())

		_, err := session.Move(ctx, 0, 0)
		require.NoError(t, err)
		_, err = session.Move(ctx, 1, 0)
		require.NoError(t, err)

		// When: the human plays cell 2
		result, err := session.Move(ctx, 2, 0)

		// Then: X wins without asking the oracle
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, result.Winner)
		assert.Equal(t, -1, result.OpponentCell)
		assert.Equal(t, entity.MarkX, session.Winner())

		before := session.Snapshot()

		// When: another move is attempted
		_, err = session.Move(ctx, 2, 2)

		// Then: it fails with ErrGameOver and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameOver)

		after := session.Snapshot()
		assert.Equal(t, before.Board, after.Board)
		assert.Equal(t, entity.MarkX, after.Winner)
		assert.Equal(t, StatusFinished, after.Status)
	})

	t.Run("Occupied cell is rejected without side effects", func(t *testing.T) {
		// Given: X in the center and O in a corner
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(0, nil).Once()

		session := newTestSession(t, opponent, newFakeClock())
		_, err := session.Move(ctx, 1, 1)
		require.NoError(t, err)

		before := session.Snapshot()

		// When: the human plays both occupied cells
		_, errCenter := session.Move(ctx, 1, 1)
		_, errCorner := session.Move(ctx, 0, 0)

		// Then: both are rejected, the board is unchanged and the oracle is not asked again
		require.ErrorIs(t, errCenter, apperror.ErrInvalidMove)
		require.ErrorIs(t, errCorner, apperror.ErrInvalidMove)
		assert.Equal(t, before.Board, session.Snapshot().Board)
	})

	t.Run("Out of range coordinates are rejected", func(t *testing.T) {
		session := newTestSession(t, mockedOracle.NewMockOracle(t), newFakeClock())

		_, err := session.Move(ctx, 3, 0)

		require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		assert.Equal(t, StatusFresh, session.Snapshot().Status)
	})

	t.Run("Oracle failure keeps the human move and skips the opponent", func(t *testing.T) {
		// Given: an oracle that fails
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().
			Play(mock.Anything, mock.Anything).
			Return(-1, errOracleDown).
			Once()

		session := newTestSession(t, opponent, newFakeClock())

		// When: the human plays
		result, err := session.Move(ctx, 2, 2)

		// Then: the move stands, the failure is reported and no O is placed
		require.NoError(t, err)
		require.ErrorIs(t, result.OracleErr, errOracleDown)
		assert.Equal(t, -1, result.OpponentCell)
		assert.Equal(t, entity.Board{8: entity.MarkX}, session.Snapshot().Board)
	})

	t.Run("Illegal oracle answer is not applied", func(t *testing.T) {
		// Given: an oracle answering with the cell the human just took
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(8, nil).Once()

		session := newTestSession(t, opponent, newFakeClock())

		// When: the human plays cell 8
		result, err := session.Move(ctx, 2, 2)

		// Then: the answer is rejected as illegal
		require.NoError(t, err)
		require.ErrorIs(t, result.OracleErr, oracle.ErrIllegalMove)
		assert.Equal(t, entity.Board{8: entity.MarkX}, session.Snapshot().Board)
	})

	t.Run("Full board without winner is a draw", func(t *testing.T) {
		// Given: an oracle replaying O:0, O:6, O:5, O:7
		opponent := mockedOracle.NewMockOracle(t)
		for _, cell := range []int{0, 6, 5, 7} {
			opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(cell, nil).Once()
		}

		session := newTestSession(t, opponent, newFakeClock())

		// When: the human plays 4, 2, 3, 1 and 8
		for _, move := range [][2]int{{1, 1}, {2, 0}, {0, 1}, {1, 0}, {2, 2}} {
			result, err := session.Move(ctx, move[0], move[1])
			require.NoError(t, err)
			require.NoError(t, result.OracleErr)
		}

		// Then: the game is finished as a draw
		assert.Equal(t, entity.MarkDraw, session.Winner())
		assert.Equal(t, StatusFinished, session.Snapshot().Status)

		_, err := session.Move(ctx, 0, 0)
		assert.ErrorIs(t, err, apperror.ErrGameOver)
	})

	t.Run("Rejected moves still refresh the expiration", func(t *testing.T) {
		// Given: X in the corner
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(4, nil).Once()

		clock := newFakeClock()
		session := newTestSession(t, opponent, clock)
		_, err := session.Move(ctx, 0, 0)
		require.NoError(t, err)

		// When: two minutes later the same cell is played again
		clock.Advance(2 * time.Minute)
		_, err = session.Move(ctx, 0, 0)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		// Then: two more minutes later the game is still there
		clock.Advance(2 * time.Minute)
		tile, err := session.Tile(0, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, tile)
	})

	t.Run("Opponent answer for a reset game is discarded", func(t *testing.T) {
		// Given: an oracle that answers only after the test lets it
		started := make(chan struct{})
		release := make(chan struct{})
		opponent := oracle.Func(func(context.Context, entity.Board) (int, error) {
			close(started)
			<-release
			return 0, nil
		})

		session := newTestSession(t, opponent, newFakeClock())

		resultCh := make(chan MoveResult, 1)
		go func() {
			result, err := session.Move(ctx, 1, 1)
			assert.NoError(t, err)
			resultCh <- result
		}()

		// When: the session is reset while the oracle is thinking
		<-started
		session.Reset()
		close(release)

		// Then: the late answer is dropped and the board stays empty
		result := <-resultCh
		require.ErrorIs(t, result.OracleErr, ErrStaleOpponentMove)
		require.ErrorIs(t, result.OracleErr, oracle.ErrOracle)
		assert.Equal(t, entity.Board{}, session.Snapshot().Board)
	})
}

func TestSession_Expiration(t *testing.T) {
	ctx := context.Background()

	t.Run("Idle session reads as fresh after TTL", func(t *testing.T) {
		// Given: a session with X in the corner and O in the center
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(4, nil).Once()

		clock := newFakeClock()
		session := newTestSession(t, opponent, clock)
		_, err := session.Move(ctx, 0, 0)
		require.NoError(t, err)

		// When: it stays idle for TTL+1ms and a tile is read
		clock.Advance(ttl + time.Millisecond)
		tile, err := session.Tile(0, 0)

		// Then: the expired game was reset
		require.NoError(t, err)
		assert.Equal(t, entity.MarkEmpty, tile)

		state := session.Snapshot()
		assert.Equal(t, StatusFresh, state.Status)
		assert.Equal(t, entity.Board{}, state.Board)
		assert.Nil(t, state.ExpiresAt)
	})

	t.Run("Session is kept until the expiry instant has passed", func(t *testing.T) {
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(4, nil).Once()

		clock := newFakeClock()
		session := newTestSession(t, opponent, clock)
		_, err := session.Move(ctx, 0, 0)
		require.NoError(t, err)

		clock.Advance(ttl)

		assert.False(t, session.ResetIfExpired())
		assert.Equal(t, StatusActive, session.Snapshot().Status)

		clock.Advance(time.Nanosecond)

		assert.True(t, session.ResetIfExpired())
		assert.Equal(t, StatusFresh, session.Snapshot().Status)
	})

	t.Run("Fresh session never expires", func(t *testing.T) {
		clock := newFakeClock()
		session := newTestSession(t, mockedOracle.NewMockOracle(t), clock)
		gameID := session.Snapshot().GameID

		clock.Advance(24 * time.Hour)

		assert.False(t, session.ResetIfExpired())
		assert.Equal(t, gameID, session.Snapshot().GameID)
	})

	t.Run("Winner does not check expiration, tiles do", func(t *testing.T) {
		// Given: a game won by X
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(3, nil).Once()
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(4, nil).Once()

		clock := newFakeClock()
		session := newTestSession(t, opponent, clock)
		for _, x := range []int{0, 1, 2} {
			_, err := session.Move(ctx, x, 0)
			require.NoError(t, err)
		}

		// When: the game expires
		clock.Advance(ttl + time.Millisecond)

		// Then: the winner is still reported until a tile is read
		assert.Equal(t, entity.MarkX, session.Winner())

		_, err := session.Tile(0, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.MarkEmpty, session.Winner())
	})

	t.Run("Move on an expired game starts a new one", func(t *testing.T) {
		// Given: a finished game that expired
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(3, nil).Once()
		opponent.EXPECT().Play(mock.Anything, mock.Anything).Return(4, nil).Once()
		opponent.EXPECT().Play(mock.Anything, entity.Board{entity.MarkX}).Return(8, nil).Once()

		clock := newFakeClock()
		session := newTestSession(t, opponent, clock)
		for _, x := range []int{0, 1, 2} {
			_, err := session.Move(ctx, x, 0)
			require.NoError(t, err)
		}

		clock.Advance(ttl + time.Millisecond)

		// When: the human plays again
		result, err := session.Move(ctx, 0, 0)

		// Then: the move lands on a fresh board
		require.NoError(t, err)
		assert.Equal(t, 8, result.OpponentCell)
		assert.Equal(t, entity.Board{0: entity.MarkX, 8: entity.MarkO}, session.Snapshot().Board)
	})
}

func TestSession_Concurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("Racing moves on one cell are serialized", func(t *testing.T) {
		// Given: a slow oracle that is asked exactly once
		opponent := mockedOracle.NewMockOracle(t)
		opponent.EXPECT().
			Play(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, entity.Board) (int, error) {
				time.Sleep(20 * time.Millisecond)
				return 0, nil
			}).
			Once()

		session := newTestSession(t, opponent, newFakeClock())

		// When: two requests play the center at the same time
		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = session.Move(ctx, 1, 1)
			}()
		}
		wg.Wait()

		// Then: exactly one is accepted
		accepted := 0
		for _, err := range errs {
			if err == nil {
				accepted++
				continue
			}
			assert.ErrorIs(t, err, apperror.ErrInvalidMove)
		}
		assert.Equal(t, 1, accepted)
		assert.Equal(t, entity.Board{0: entity.MarkO, 4: entity.MarkX}, session.Snapshot().Board)
	})

	t.Run("Reads do not wait for the oracle", func(t *testing.T) {
		// Given: a move waiting on the oracle
		started := make(chan struct{})
		release := make(chan struct{})
		opponent := oracle.Func(func(context.Context, entity.Board) (int, error) {
			close(started)
			<-release
			return 0, nil
		})

		session := newTestSession(t, opponent, newFakeClock())

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, err := session.Move(ctx, 1, 1)
			assert.NoError(t, err)
		}()
		<-started

		// When: the board is read meanwhile
		tile, err := session.Tile(1, 1)

		// Then: the human move is already visible
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, tile)
		assert.Equal(t, entity.MarkEmpty, session.Winner())

		close(release)
		<-done
	})
}

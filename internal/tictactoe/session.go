package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/oracle"
)

const DefaultTTL = 3 * time.Minute

type Status string

const (
	StatusFresh    Status = "fresh"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// ErrStaleOpponentMove - the match was reset while the oracle was thinking.
var ErrStaleOpponentMove = fmt.Errorf("%w: game was reset before the opponent answered", oracle.ErrOracle)

type Clock func() time.Time

// State - consistent copy of a session.
type State struct {
	Key          string       `json:"-"`
	GameID       string       `json:"game_id"`
	Board        entity.Board `json:"board"`
	Winner       entity.Mark  `json:"winner"`
	Status       Status       `json:"status"`
	HumanMark    entity.Mark  `json:"human_mark"`
	OpponentMark entity.Mark  `json:"opponent_mark"`
	ExpiresAt    *time.Time   `json:"expires_at,omitempty"`
}

// MoveResult - what happened during an accepted move. OpponentCell is -1 when
// the opponent did not move; OracleErr tells why if it was asked and failed.
type MoveResult struct {
	GameID       string
	HumanCell    int
	OpponentCell int
	OracleErr    error
	Winner       entity.Mark
}

// Session - one visitor's match against the oracle. Move calls are serialized
// end to end, the oracle wait included; reads only take the state lock.
type Session struct {
	logger *slog.Logger
	oracle oracle.Oracle
	ttl    time.Duration
	now    Clock
	key    string

	moveMu sync.Mutex

	mu           sync.RWMutex
	gameID       string
	board        entity.Board
	humanMark    entity.Mark
	opponentMark entity.Mark
	winner       entity.Mark
	expiresAt    time.Time // zero until the first move
}

func NewSession(logger *slog.Logger, key string, opponent oracle.Oracle, ttl time.Duration, now Clock) *Session {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if now == nil {
		now = time.Now
	}

	session := &Session{
		logger: logger.With("session", key),
		oracle: opponent,
		ttl:    ttl,
		now:    now,
		key:    key,
	}
	session.resetLocked()

	return session
}

func (that *Session) Key() string {
	return that.key
}

// Reset - clears the board and winner and stops the expiration clock.
func (that *Session) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.resetLocked()
}

// ResetIfExpired - reports whether the session was reset.
func (that *Session) ResetIfExpired() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.resetIfExpiredLocked()
}

// Tile - mark at (x, y), MarkEmpty for a free cell. Expired sessions read as fresh.
func (that *Session) Tile(x, y int) (entity.Mark, error) {
	if !entity.InBounds(x, y) {
		return entity.MarkEmpty, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, x, y)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.resetIfExpiredLocked()

	return that.board.Get(x, y), nil
}

// Winner - current winner, MarkDraw or MarkEmpty. Unlike Tile it does not
// check for expiration.
func (that *Session) Winner() entity.Mark {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.winner
}

func (that *Session) Snapshot() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.resetIfExpiredLocked()

	state := State{
		Key:          that.key,
		GameID:       that.gameID,
		Board:        that.board,
		Winner:       that.winner,
		Status:       that.statusLocked(),
		HumanMark:    that.humanMark,
		OpponentMark: that.opponentMark,
	}

	if !that.expiresAt.IsZero() {
		expiresAt := that.expiresAt
		state.ExpiresAt = &expiresAt
	}

	return state
}

// Move - places the human mark at (x, y), then lets the oracle answer.
// ErrGameOver and ErrInvalidMove leave the board untouched; an oracle failure
// only skips the opponent's turn and is reported in MoveResult.OracleErr.
func (that *Session) Move(ctx context.Context, x, y int) (MoveResult, error) {
	result := MoveResult{HumanCell: -1, OpponentCell: -1}

	if !entity.InBounds(x, y) {
		return result, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, x, y)
	}

	that.moveMu.Lock()
	defer that.moveMu.Unlock()

	board, gameID, err := that.placeHumanMark(x, y)
	result.GameID = gameID
	if err != nil {
		result.Winner = that.Winner()
		return result, err
	}

	result.HumanCell = entity.CellIndex(x, y)

	if board.DetermineResult() != entity.MarkEmpty {
		result.Winner = that.Winner()
		return result, nil
	}

	cell, err := that.oracle.Play(ctx, board)

	that.mu.Lock()
	defer that.mu.Unlock()

	switch {
	case err != nil:
		result.OracleErr = err
	case that.gameID != gameID:
		result.OracleErr = ErrStaleOpponentMove
	default:
		if err = oracle.ValidateMove(that.board, cell); err != nil {
			result.OracleErr = err
			break
		}

		that.board[cell] = that.opponentMark
		result.OpponentCell = cell
		that.updateWinnerLocked()
	}

	if result.OracleErr != nil {
		log := that.logger.With("method", "Move", "game", gameID)
		if errors.Is(result.OracleErr, oracle.ErrOracle) {
			log.Warn("opponent skipped its turn", "error", result.OracleErr)
		} else {
			log.Error("unexpected oracle error", "error", result.OracleErr)
		}
	}

	result.Winner = that.winner

	return result, nil
}

// placeHumanMark - first half of Move, under the state lock. Returns a copy of
// the board for the oracle and the id of the match it belongs to.
func (that *Session) placeHumanMark(x, y int) (entity.Board, string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.resetIfExpiredLocked()
	that.expiresAt = that.now().Add(that.ttl)

	if that.winner != entity.MarkEmpty {
		return that.board, that.gameID, apperror.ErrGameOver
	}

	if that.board.Get(x, y) != entity.MarkEmpty {
		return that.board, that.gameID, apperror.ErrInvalidMove
	}

	that.board.Set(x, y, that.humanMark)
	that.updateWinnerLocked()

	return that.board, that.gameID, nil
}

func (that *Session) resetLocked() {
	that.gameID = uuid.NewString()
	that.board = entity.Board{}
	that.winner = entity.MarkEmpty
	that.expiresAt = time.Time{}
	that.humanMark = entity.MarkX
	that.opponentMark = entity.MarkO
}

func (that *Session) resetIfExpiredLocked() bool {
	if that.expiresAt.IsZero() || !that.now().After(that.expiresAt) {
		return false
	}

	that.logger.Debug("session expired", "game", that.gameID)
	that.resetLocked()

	return true
}

func (that *Session) updateWinnerLocked() {
	that.winner = that.board.DetermineResult()
}

func (that *Session) statusLocked() Status {
	switch {
	case that.winner != entity.MarkEmpty:
		return StatusFinished
	case that.expiresAt.IsZero():
		return StatusFresh
	default:
		return StatusActive
	}
}

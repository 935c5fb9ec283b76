package tictactoe

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/oracle"
)

// Registry - owns every session of the process, keyed by session key. It is
// created at start up and closed at shutdown; sessions are never evicted, an
// abandoned one only gets its content reset once it expires.
type Registry struct {
	logger *slog.Logger
	oracle oracle.Oracle
	ttl    time.Duration
	now    Clock

	mu       sync.Mutex
	sessions map[string]*Session
}

type RegistryOption func(r *Registry)

// WithClock - replaces time.Now for every session of the registry.
func WithClock(now Clock) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

func NewRegistry(logger *slog.Logger, opponent oracle.Oracle, ttl time.Duration, opts ...RegistryOption) *Registry {
	registry := &Registry{
		logger:   logger.With("component", "registry"),
		oracle:   opponent,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}

	for _, opt := range opts {
		opt(registry)
	}

	return registry
}

// GetOrCreate - returns the session stored under key, creating a fresh one on
// first access. At most one session is ever created per key.
func (that *Registry) GetOrCreate(key string) *Session {
	that.mu.Lock()
	defer that.mu.Unlock()

	if session, ok := that.sessions[key]; ok {
		return session
	}

	session := NewSession(that.logger, key, that.oracle, that.ttl, that.now)
	that.sessions[key] = session

	that.logger.Debug("session created", "session", key, "sessions", len(that.sessions))

	return session
}

func (that *Registry) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.sessions)
}

// Close - drops every session. Sessions handed out earlier keep working but
// are no longer reachable through the registry.
func (that *Registry) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.logger.Info("registry closed", "sessions", len(that.sessions))
	that.sessions = make(map[string]*Session)
}

package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/config"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/oracle"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/repository"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/resolver"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-tiles/transport/rest"
)

const shutdownTimeout = 10 * time.Second

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opponent, err := oracle.New(conf.Oracle)
	if err != nil {
		return fmt.Errorf("could not create oracle: %w", err)
	}

	resultRepo, closeResults, err := newResultRepository(ctx, log, conf.Redis)
	if err != nil {
		return err
	}
	defer closeResults()

	registry := tictactoe.NewRegistry(logger, opponent, conf.Session.TTL)
	defer registry.Close()

	gameUseCase := usecase.NewGameUseCase(logger, registry, resultRepo)
	handlers := rest.NewHandlers(logger, gameUseCase, resolver.NewFingerprint())
	server := rest.NewServer(conf.HTTPPort, rest.NewRouter(logger, handlers))

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "oracle", conf.Oracle.Kind)
		httpErrCh <- server.Start()
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	return nil
}

// newResultRepository - Redis backed when enabled, process local otherwise.
func newResultRepository(ctx context.Context, log *slog.Logger, conf config.Redis) (repository.ResultRepository, func(), error) {
	if !conf.Enabled {
		log.Info("Redis disabled, game results are kept in memory")
		return repository.NewMemoryResultRepository(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.GetRedisAddr(), conf.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewResultRepository(redisStorage.Connection), closeFn, nil
}

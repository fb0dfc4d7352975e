package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-model/internal/config"
	"github.com/rocketscienceinc/tictactoe-model/internal/repository"
	"github.com/rocketscienceinc/tictactoe-model/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-model/internal/service"
	"github.com/rocketscienceinc/tictactoe-model/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-model/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("Received signal, shutting down", "component", "app", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game session and plays on the given streams until input ends.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	var gameService service.GameService

	if conf.Archive.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Archive.TTL)
		gameService = service.NewGameService(gameRepo)

		log.Info("Game archive enabled", "redis", redisAddrString)
	}

	session := usecase.NewGameSession(logger, gameService, nil)
	cli := console.New(logger, session, in, out, conf.Console.NoColor)

	log.Info("Starting console")

	if err := cli.Run(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed")

	return nil
}

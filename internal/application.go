package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-bestmove/internal/config"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/service"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-bestmove/transport/cli"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - answers the request batch in args and writes the result to out.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, args []string, out io.Writer) error {
	log := logger.With("component", "app")

	bot, err := service.NewBotService(conf.Search.Depth)
	if err != nil {
		return fmt.Errorf("could not create bot: %w", err)
	}

	var movesRepo repository.MovesRepository
	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}
		redisAddrString := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		movesRepo = repository.NewMovesRepository(redisStorage, conf.Redis.TTL)
		log.Debug("moves cache enabled", "addr", redisAddrString, "ttl", conf.Redis.TTL)
	}

	advisor := usecase.NewMoveAdvisor(logger, bot, movesRepo, conf.Search.EmptyMarker)
	handler := cli.NewHandler(logger, advisor)

	if err = handler.Handle(ctx, args, out); err != nil {
		return fmt.Errorf("could not handle input: %w", err)
	}

	return nil
}

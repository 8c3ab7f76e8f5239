package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-bestmove/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/repository"
)

type botService interface {
	RankMoves(board entity.Board) ([]int, error)
	Depth() int
}

type movesRepo interface {
	Save(ctx context.Context, depth int, boardKey string, indexes []int) error
	GetByBoard(ctx context.Context, depth int, boardKey string) ([]int, error)
}

type MoveAdvisor struct {
	logger *slog.Logger

	bot         botService
	movesRepo   movesRepo
	emptyMarker string
}

// NewMoveAdvisor - movesRepo may be nil, then every position is searched.
func NewMoveAdvisor(logger *slog.Logger, bot botService, movesRepo movesRepo, emptyMarker string) *MoveAdvisor {
	return &MoveAdvisor{
		logger: logger.With("component", "move_advisor"),

		bot:         bot,
		movesRepo:   movesRepo,
		emptyMarker: emptyMarker,
	}
}

// Advise - answers every request in order; a bad request only affects its own response.
func (that *MoveAdvisor) Advise(ctx context.Context, requests []entity.MoveRequest) []entity.MoveResponse {
	log := that.logger.With("method", "Advise")

	responses := make([]entity.MoveResponse, 0, len(requests))
	for i, request := range requests {
		indexes, err := that.NextMoves(ctx, request)
		if err != nil {
			log.Debug("request not answered with moves", "request", i, "board", request.Board, "error", err)
			responses = append(responses, entity.NewMessageResponse(messageFor(err)))
			continue
		}

		log.Debug("request answered", "request", i, "board", request.Board, "indexes", indexes)
		responses = append(responses, entity.NewIndexesResponse(indexes))
	}

	return responses
}

// NextMoves - ranked indexes for a single request.
func (that *MoveAdvisor) NextMoves(ctx context.Context, request entity.MoveRequest) ([]int, error) {
	if request.Player == "" {
		return nil, apperror.ErrInvalidPlayer
	}

	if request.Board == "" {
		return nil, apperror.ErrInvalidBoard
	}

	board, err := entity.BuildBoard(request.Board, request.Player, that.emptyMarker)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}

	if indexes, ok := that.cachedMoves(ctx, board); ok {
		return indexes, nil
	}

	indexes, err := that.bot.RankMoves(board)
	if err != nil {
		return nil, fmt.Errorf("failed to rank moves: %w", err)
	}

	that.cacheMoves(ctx, board, indexes)

	return indexes, nil
}

func (that *MoveAdvisor) cachedMoves(ctx context.Context, board entity.Board) ([]int, bool) {
	if that.movesRepo == nil {
		return nil, false
	}

	log := that.logger.With("method", "cachedMoves", "board", board.Key())

	indexes, err := that.movesRepo.GetByBoard(ctx, that.bot.Depth(), board.Key())
	switch {
	case errors.Is(err, repository.ErrMovesNotFound):
		log.Debug("cache miss")
		return nil, false
	case err != nil:
		log.Warn("failed to read cached moves", "error", err)
		return nil, false
	}

	log.Debug("cache hit")

	return indexes, true
}

func (that *MoveAdvisor) cacheMoves(ctx context.Context, board entity.Board, indexes []int) {
	if that.movesRepo == nil {
		return
	}

	if err := that.movesRepo.Save(ctx, that.bot.Depth(), board.Key(), indexes); err != nil {
		that.logger.Warn("failed to cache moves", "method", "cacheMoves", "board", board.Key(), "error", err)
	}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidPlayer):
		return entity.MessageInvalidPlayer
	case errors.Is(err, apperror.ErrInvalidBoard):
		return entity.MessageInvalidBoard
	case errors.Is(err, apperror.ErrBoardAtEndState):
		return entity.MessageEndState
	default:
		return err.Error()
	}
}

package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bestmove/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/tictactoe"
)

var ErrInvalidDepth = errors.New("search depth must be positive")

type BotService interface {
	RankMoves(board entity.Board) ([]int, error)
	Depth() int
}

type botService struct {
	depth int
}

func NewBotService(depth int) (BotService, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}

	return &botService{depth: depth}, nil
}

// RankMoves - every legal move of the Mine player, best first.
func (that *botService) RankMoves(board entity.Board) ([]int, error) {
	scored := tictactoe.Search(&board, that.depth, entity.Mine)
	if len(scored) == 0 {
		return nil, apperror.ErrBoardAtEndState
	}

	return tictactoe.Rank(scored), nil
}

func (that *botService) Depth() int {
	return that.depth
}

package tictactoe

import (
	"cmp"
	"slices"

	"github.com/rocketscienceinc/tictactoe-bestmove/internal/entity"
)

// DefaultDepth - plies explored from the position handed to Search.
const DefaultDepth = 5

// ScoredMove - a first move and the value backed up to it.
type ScoredMove struct {
	Score int
	Index int
}

// Result - best value of a subtree and the move leading to it.
type Result struct {
	Score int
	Move  entity.Move
}

// Search - scores every legal first move of player with a maxDepth plies minimax.
// The board is used as scratch space and is restored before returning.
func Search(board *entity.Board, maxDepth int, player entity.Cell) []ScoredMove {
	if maxDepth <= 0 {
		return nil
	}

	scored := make([]ScoredMove, 0, entity.CellsCount)
	for _, move := range ListLegalMoves(board) {
		board.Set(move, player)
		result := minimax(board, maxDepth-1, player.Opponent())
		board.Set(move, entity.Empty)

		scored = append(scored, ScoredMove{Score: result.Score, Index: move.Index()})
	}

	if len(scored) == 0 {
		return nil
	}

	return scored
}

func minimax(board *entity.Board, depth int, player entity.Cell) Result {
	moves := ListLegalMoves(board)
	if len(moves) == 0 || depth == 0 {
		return Result{Score: ScoreBoard(board), Move: entity.NoMove}
	}

	best := Result{Score: MinScore, Move: entity.NoMove}
	if player != entity.Mine {
		best.Score = MaxScore
	}

	for _, move := range moves {
		board.Set(move, player)
		score := minimax(board, depth-1, player.Opponent()).Score
		board.Set(move, entity.Empty)

		if player == entity.Mine && score > best.Score {
			best = Result{Score: score, Move: move}
		}
		if player != entity.Mine && score < best.Score {
			best = Result{Score: score, Move: move}
		}
	}

	return best
}

// Rank - indexes ordered by score, ties broken by the higher index first.
func Rank(scored []ScoredMove) []int {
	sorted := slices.Clone(scored)
	slices.SortFunc(sorted, func(a, b ScoredMove) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.Index, a.Index)
	})

	indexes := make([]int, 0, len(sorted))
	for _, move := range sorted {
		indexes = append(indexes, move.Index)
	}

	return indexes
}

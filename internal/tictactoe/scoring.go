package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-bestmove/internal/entity"
)

const (
	MaxScore = math.MaxInt32 - 1
	MinScore = -MaxScore

	// WinScore - returned by ScoreBoard when Mine has already won; no line sum can reach it.
	WinScore = MaxScore + 1
)

// Lines - squares of every row, column and diagonal.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type lineState uint8

const (
	lineUnset lineState = iota
	lineMine
	lineTheirs
)

// ScoreBoard - static evaluation from Mine's point of view.
func ScoreBoard(board *entity.Board) int {
	if IsWinner(entity.Mine, board) {
		return WinScore
	}

	reward := 0
	for _, line := range Lines {
		first, second, third := entity.MoveFromIndex(line[0]), entity.MoveFromIndex(line[1]), entity.MoveFromIndex(line[2])
		reward += ScoreLine(board.At(first), board.At(second), board.At(third))
	}

	return reward
}

// ScoreLine - +1, +10, +100 for one, two, three Mine cells on an otherwise free line,
// the same negated for Theirs, 0 for a line both players occupy.
func ScoreLine(first, second, third entity.Cell) int {
	state := lineUnset
	reward := 0

	for _, cell := range [3]entity.Cell{first, second, third} {
		switch cell {
		case entity.Mine:
			switch state {
			case lineUnset:
				state, reward = lineMine, 1
			case lineMine:
				reward *= 10
			case lineTheirs:
				return 0
			}
		case entity.Theirs:
			switch state {
			case lineUnset:
				state, reward = lineTheirs, -1
			case lineTheirs:
				reward *= 10
			case lineMine:
				return 0
			}
		case entity.Empty:
		}
	}

	return reward
}

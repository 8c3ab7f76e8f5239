package entity

import (
	"fmt"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-bestmove/internal/apperror"
)

const (
	BoardSize  = 3
	CellsCount = BoardSize * BoardSize

	DefaultEmptyMarker = "*"
)

// Cell - occupancy of a single square, seen from the searching player.
type Cell uint8

const (
	Empty Cell = iota
	Mine
	Theirs
)

// Opponent - returns the other player. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case Mine:
		return Theirs
	case Theirs:
		return Mine
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case Mine:
		return "mine"
	case Theirs:
		return "theirs"
	default:
		return "empty"
	}
}

// Move - row and column of a square.
type Move struct {
	Row int
	Col int
}

// NoMove - returned by the search when a position has nothing to play.
var NoMove = Move{Row: -1, Col: -1}

// MoveFromIndex - converts a row-major index 0..8 back to a Move.
func MoveFromIndex(index int) Move {
	return Move{Row: index / BoardSize, Col: index % BoardSize}
}

// Index - row-major index of the move, 0..8.
func (that Move) Index() int {
	return that.Row*BoardSize + that.Col
}

type Board [BoardSize][BoardSize]Cell

// BuildBoard - decodes a 9 character row-major board encoding. Cells equal to player
// become Mine, cells equal to empty become Empty, anything else is Theirs.
func BuildBoard(encoding, player, empty string) (Board, error) {
	var board Board

	if player == "" || player == empty {
		return board, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, player)
	}

	if utf8.RuneCountInString(encoding) != CellsCount {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, CellsCount, utf8.RuneCountInString(encoding))
	}

	position := 0
	for _, marker := range encoding {
		move := MoveFromIndex(position)

		switch string(marker) {
		case player:
			board[move.Row][move.Col] = Mine
		case empty:
			board[move.Row][move.Col] = Empty
		default:
			board[move.Row][move.Col] = Theirs
		}

		position++
	}

	return board, nil
}

// At - cell under the move.
func (that *Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

// Set - puts cell under the move.
func (that *Board) Set(move Move, cell Cell) {
	that[move.Row][move.Col] = cell
}

// Key - normalized encoding of the board, one digit per cell (0 empty, 1 mine, 2 theirs).
func (that *Board) Key() string {
	key := make([]byte, 0, CellsCount)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			key = append(key, '0'+byte(that[row][col]))
		}
	}

	return string(key)
}

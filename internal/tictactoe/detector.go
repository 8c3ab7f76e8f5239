package tictactoe

import "github.com/rocketscienceinc/tictactoe-bestmove/internal/entity"

// WinMasks - rows, columns and diagonals; bit 8-index stands for the square at index.
var WinMasks = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

func occupancy(player entity.Cell, board *entity.Board) uint16 {
	var mask uint16

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col] == player {
				index := entity.Move{Row: row, Col: col}.Index()
				mask |= 1 << (entity.CellsCount - 1 - index)
			}
		}
	}

	return mask
}

// IsWinner - reports whether player holds a full row, column or diagonal.
func IsWinner(player entity.Cell, board *entity.Board) bool {
	mask := occupancy(player, board)

	for _, win := range WinMasks {
		if mask&win == win {
			return true
		}
	}

	return false
}

// ListLegalMoves - empty squares in row-major order, or nothing once somebody has won.
func ListLegalMoves(board *entity.Board) []entity.Move {
	if IsWinner(entity.Mine, board) || IsWinner(entity.Theirs, board) {
		return nil
	}

	moves := make([]entity.Move, 0, entity.CellsCount)
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col] == entity.Empty {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

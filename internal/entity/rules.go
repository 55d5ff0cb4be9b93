package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Outcome - the result of a game, derived from a board.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAWins
	OutcomeBWins
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeAWins:
		return PlayerX
	case OutcomeBWins:
		return PlayerO
	case OutcomeDraw:
		return PlayerTie
	default:
		return ""
	}
}

// WinCombos lists the lines in the order they are checked: both diagonals,
// then row i and column i for each i.
var WinCombos = [][3]int{
	{0, 4, 8},
	{6, 4, 2},
	{0, 1, 2},
	{0, 3, 6},
	{3, 4, 5},
	{1, 4, 7},
	{6, 7, 8},
	{2, 5, 8},
}

// TurnToMove - X moves when both sides have the same number of marks.
func TurnToMove(board Board) Mark {
	if board.count(MarkA) == board.count(MarkB) {
		return MarkA
	}
	return MarkB
}

// LegalMoves - all empty cells in row-major order.
func LegalMoves(board Board) []Move {
	moves := make([]Move, 0, Cells)
	for i, cell := range board {
		if cell == Empty {
			moves = append(moves, MoveFromIndex(i))
		}
	}
	return moves
}

// Winner - the mark owning a complete line, or Empty.
func Winner(board Board) Mark {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}
	return Empty
}

func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}
	return true
}

func GetOutcome(board Board) Outcome {
	switch Winner(board) {
	case MarkA:
		return OutcomeAWins
	case MarkB:
		return OutcomeBWins
	}

	if IsFull(board) {
		return OutcomeDraw
	}

	return OutcomeNone
}

func IsTerminal(board Board) bool {
	return Winner(board) != Empty || IsFull(board)
}

// Score - utility of a terminal board from X's point of view. Panics when the
// game is not over yet.
func Score(board Board) int {
	if !IsTerminal(board) {
		panic(fmt.Errorf("%w: %s", apperror.ErrNotTerminal, board))
	}

	switch Winner(board) {
	case MarkA:
		return 1
	case MarkB:
		return -1
	default:
		return 0
	}
}

// Apply - returns a copy of board with the mover's mark placed on move.
func Apply(board Board, move Move) (Board, error) {
	if !move.InBounds() {
		return board, fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, move)
	}

	if board[move.Index()] != Empty {
		return board, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	next := board
	next[move.Index()] = TurnToMove(board)

	return next, nil
}

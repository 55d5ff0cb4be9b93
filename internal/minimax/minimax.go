// Package minimax implements exhaustive game-tree search for tic-tac-toe.
//
// Values are always from X's point of view: +1 X wins, -1 O wins, 0 draw.
// Moves are visited in row-major order and ties keep the first move found.
package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// BestMove - returns the optimal move for the side to move, or false when the
// game is already over. Panics on a board no legal game can reach.
func BestMove(board entity.Board) (entity.Move, bool) {
	mustValidate(board)

	if entity.IsTerminal(board) {
		return entity.Move{}, false
	}

	_, move, ok := search(board)
	return move, ok
}

// Value - the outcome of board under optimal play by both sides.
func Value(board entity.Board) int {
	mustValidate(board)

	value, _, _ := search(board)
	return value
}

func search(board entity.Board) (int, entity.Move, bool) {
	if entity.TurnToMove(board) == entity.MarkA {
		return maxValueAndAction(board)
	}
	return minValueAndAction(board)
}

func maxValueAndAction(board entity.Board) (int, entity.Move, bool) {
	if entity.IsTerminal(board) {
		return entity.Score(board), entity.Move{}, false
	}

	var (
		best     int
		bestMove entity.Move
		found    bool
	)

	for _, move := range entity.LegalMoves(board) {
		value, _, _ := minValueAndAction(mustApply(board, move))
		if !found || value > best {
			best, bestMove, found = value, move, true
		}
	}

	return best, bestMove, found
}

func minValueAndAction(board entity.Board) (int, entity.Move, bool) {
	if entity.IsTerminal(board) {
		return entity.Score(board), entity.Move{}, false
	}

	var (
		best     int
		bestMove entity.Move
		found    bool
	)

	for _, move := range entity.LegalMoves(board) {
		value, _, _ := maxValueAndAction(mustApply(board, move))
		if !found || value < best {
			best, bestMove, found = value, move, true
		}
	}

	return best, bestMove, found
}

// moves come from LegalMoves, so Apply can only fail on a bug.
func mustApply(board entity.Board, move entity.Move) entity.Board {
	next, err := entity.Apply(board, move)
	if err != nil {
		panic(fmt.Errorf("minimax: %w", err))
	}
	return next
}

func mustValidate(board entity.Board) {
	if err := board.Validate(); err != nil {
		panic(fmt.Errorf("minimax: %w", err))
	}
}

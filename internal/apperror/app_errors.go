package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidBoard = errors.New("invalid board")
	ErrNotTerminal  = errors.New("board is not terminal")
	ErrGameFinished = errors.New("game is already finished")
	ErrNoMoves      = errors.New("no available moves")
)

package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Game - a single match: the current board plus the moves that led to it.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Moves  []Move `json:"moves"`
	Winner string `json:"winner"`
	Status string `json:"status"`
	Turn   string `json:"player_turn"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  InitialBoard(),
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

func (that *Game) UpdateGameState() {
	switch outcome := GetOutcome(that.Board); outcome {
	// one player wins or tie
	case OutcomeAWins, OutcomeBWins, OutcomeDraw:
		that.Winner = outcome.String()
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Winner = EmptyCell
		that.Status = StatusOngoing
		that.Turn = TurnToMove(that.Board).String()
	}
}

func (that *Game) MakeTurn(move Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	next, err := Apply(that.Board, move)
	if err != nil {
		return fmt.Errorf("game %s: %w", that.ID, err)
	}

	that.Board = next
	that.Moves = append(that.Moves, move)

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return fmt.Errorf("%w: winner %q", apperror.ErrGameFinished, that.Winner)
	}
	return nil
}

// Outcome - the derived outcome of the current board.
func (that *Game) Outcome() Outcome {
	return GetOutcome(that.Board)
}

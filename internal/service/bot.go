package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - plays the optimal move for whichever side is to move.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	move, ok := minimax.BestMove(game.Board)
	if !ok {
		return entity.Move{}, apperror.ErrNoMoves
	}

	if err := game.MakeTurn(move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

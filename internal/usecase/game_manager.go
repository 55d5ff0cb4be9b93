package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type botService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

// Summary - tally of finished self-play matches.
type Summary struct {
	Matches int
	XWins   int
	OWins   int
	Draws   int
}

func (that *Summary) add(game *entity.Game) {
	that.Matches++

	switch game.Outcome() {
	case entity.OutcomeAWins:
		that.XWins++
	case entity.OutcomeBWins:
		that.OWins++
	case entity.OutcomeDraw:
		that.Draws++
	}
}

type GameManager struct {
	logger *slog.Logger
	bot    botService

	newID func() string
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger,
		bot:    bot,

		newID: uuid.NewString,
	}
}

// PlayMatch - replays the opening, then lets the bot play both sides until the
// game ends. The game is returned even on failure so callers can log it.
func (that *GameManager) PlayMatch(ctx context.Context, opening []entity.Move) (*entity.Game, error) {
	game := entity.NewGame(that.newID())
	log := that.logger.With("method", "PlayMatch", "game_id", game.ID)

	for _, move := range opening {
		if err := game.MakeTurn(move); err != nil {
			return game, fmt.Errorf("failed to play opening move %s: %w", move, err)
		}

		log.Debug("opening move", "ply", len(game.Moves), "move", move.String(), "board", game.Board)
	}

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("match interrupted: %w", err)
		}

		move, err := that.bot.MakeTurn(game)
		if err != nil {
			return game, fmt.Errorf("failed make turn: %w", err)
		}

		log.Debug("bot move", "ply", len(game.Moves), "move", move.String(), "board", game.Board)
	}

	log.Info("match finished", "winner", game.Winner, "moves", len(game.Moves), "board", game.Board)

	return game, nil
}

func (that *GameManager) PlayMatches(ctx context.Context, matches int, opening []entity.Move) (Summary, error) {
	var summary Summary

	for range matches {
		game, err := that.PlayMatch(ctx, opening)
		if err != nil {
			return summary, err
		}

		summary.add(game)
	}

	return summary, nil
}

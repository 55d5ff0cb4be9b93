package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// RunApp - runs the configured self-play matches.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameManager := usecase.NewGameManager(logger, service.NewBotService())

	log.Info("Starting self-play", "matches", conf.SelfPlay.Matches, "opening", conf.SelfPlay.Opening)

	summary, err := gameManager.PlayMatches(ctx, conf.SelfPlay.Matches, conf.SelfPlay.OpeningMoves())
	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down", "played", summary.Matches)
		return nil
	}
	if err != nil {
		return fmt.Errorf("self-play failed: %w", err)
	}

	log.Info("Self-play finished",
		"matches", summary.Matches,
		"x_wins", summary.XWins,
		"o_wins", summary.OWins,
		"draws", summary.Draws,
	)

	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	SelfPlay SelfPlay `yaml:"self-play"`
}

type SelfPlay struct {
	Matches int `yaml:"matches" env:"SELF_PLAY_MATCHES" env-default:"1" validate:"min=1"`
	// Opening holds cell indexes (row*3+col) played before the bot takes over.
	Opening []int `yaml:"opening" env:"SELF_PLAY_OPENING" validate:"max=9,dive,min=0,max=8"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path if it exists, otherwise the environment only, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, os.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, err
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validator.New().Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (that *SelfPlay) OpeningMoves() []entity.Move {
	moves := make([]entity.Move, 0, len(that.Opening))
	for _, cell := range that.Opening {
		moves = append(moves, entity.MoveFromIndex(cell))
	}
	return moves
}

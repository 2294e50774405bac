package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Players  Players `yaml:"players"`
}

// Players holds the display names used when a player enters a blank name.
type Players struct {
	First  string `yaml:"first" env:"PLAYER_FIRST" env-default:"Player1" validate:"required"`
	Second string `yaml:"second" env:"PLAYER_SECOND" env-default:"Player2" validate:"required"`
}

// MustLoad - load configuration from the yml file at path, or from the environment if the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Package config loads the tree's tunables: the maximum single
// path-component length, the maximum total path length, and the
// ambient log level, from environment variables, an optional .env
// file, and struct-tag validation.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds dirtree's tunables.
type Config struct {
	MaxNameLength int    `env:"DIRTREE_MAX_NAME_LENGTH" env-default:"255" validate:"gt=0,lte=4096"`
	MaxPathLength int    `env:"DIRTREE_MAX_PATH_LENGTH" env-default:"4096" validate:"gt=0,lte=1048576"`
	LogLevel      string `env:"DIRTREE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
}

// Default returns the built-in defaults without reading the
// environment, for embedders that don't want configurability.
func Default() Config {
	return Config{MaxNameLength: 255, MaxPathLength: 4096, LogLevel: "info"}
}

// Load reads Config from the process environment, first loading an
// optional ".env" file in the working directory if one is present,
// then validates the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "loading .env")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "reading environment")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "validating config")
	}

	return cfg, nil
}


package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/battleship-bot/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	envStage       = "STAGE"
	envLogLevel    = "LOG_LEVEL"
	envSeed        = "BATTLESHIP_SEED"
	envClearScreen = "CLEAR_SCREEN"
)

type Config struct {
	Stage       string
	LogLevel    log.Level
	Seed        uint64
	ClearScreen bool
}

// Load reads the process environment. Outside of prod a .env
// file is loaded first when one exists. Every invalid variable
// is reported in the returned error.
func Load() (*Config, error) {
	if os.Getenv(envStage) != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return FromLookup(os.Getenv)
}

// FromLookup builds the config from any getenv-like func.
// Unset variables fall back to their defaults.
func FromLookup(getenv func(string) string) (*Config, error) {
	var result *multierror.Error
	cfg := Config{
		Stage:       StageDev,
		LogLevel:    log.WarnLevel,
		ClearScreen: true,
	}

	if stage := getenv(envStage); stage != "" {
		if stage != StageDev && stage != StageProd {
			result = multierror.Append(result, cerr.ErrInvalidStage(stage))
		} else {
			cfg.Stage = stage
		}
	}

	if level := getenv(envLogLevel); level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			result = multierror.Append(result, cerr.ErrInvalidEnvValue(envLogLevel, level))
		} else {
			cfg.LogLevel = parsed
		}
	}

	if seed := getenv(envSeed); seed != "" {
		parsed, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			result = multierror.Append(result, cerr.ErrInvalidEnvValue(envSeed, seed))
		} else {
			cfg.Seed = parsed
		}
	}

	if clearScreen := getenv(envClearScreen); clearScreen != "" {
		parsed, err := strconv.ParseBool(clearScreen)
		if err != nil {
			result = multierror.Append(result, cerr.ErrInvalidEnvValue(envClearScreen, clearScreen))
		} else {
			cfg.ClearScreen = parsed
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidDepth       = errors.New("search depth must be positive")
	ErrInvalidEmptyMarker = errors.New("empty marker must be a single character")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Search   Search `yaml:"search"`
	Redis    Redis  `yaml:"redis"`
}

type Search struct {
	Depth       int    `yaml:"depth" env:"SEARCH_DEPTH" env-default:"5"`
	EmptyMarker string `yaml:"empty-marker" env:"SEARCH_EMPTY_MARKER" env-default:"*"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"1h"`
}

// MustLoad - load configuration from config.yml or the environment, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load - reads the yaml file when it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Search.Depth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, that.Search.Depth)
	}

	if utf8.RuneCountInString(that.Search.EmptyMarker) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidEmptyMarker, that.Search.EmptyMarker)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

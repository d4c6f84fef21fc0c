// Package config loads wordladder settings with priority
// env > file > defaults, and validates the result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvDictionary = "WORDLADDER_DICT"
	EnvWordSize   = "WORDLADDER_SIZE"
	EnvSort       = "WORDLADDER_SORT"
	EnvLowercase  = "WORDLADDER_LOWERCASE"
	EnvStrategy   = "WORDLADDER_STRATEGY"
	EnvMaxDepth   = "WORDLADDER_MAX_DEPTH"
	EnvLogLevel   = "WORDLADDER_LOG_LEVEL"
	EnvLogJSON    = "WORDLADDER_LOG_JSON"
	EnvWorkers    = "WORDLADDER_WORKERS"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full wordladder configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Search     SearchConfig     `yaml:"search"`
	Logging    LoggingConfig    `yaml:"logging"`
	Batch      BatchConfig      `yaml:"batch"`
}

// DictionaryConfig selects the word source.
type DictionaryConfig struct {
	Path      string `yaml:"path" validate:"required"`
	WordSize  int    `yaml:"word_size" validate:"gte=1,lte=64"`
	Sort      bool   `yaml:"sort"`
	Lowercase bool   `yaml:"lowercase"`
}

// SearchConfig tunes the ladder search.
type SearchConfig struct {
	Strategy string `yaml:"strategy" validate:"oneof=scan buckets"`
	MaxDepth int    `yaml:"max_depth" validate:"gte=0"`
}

// LoggingConfig tunes the command's logger.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

// BatchConfig tunes batch solving.
type BatchConfig struct {
	Workers int `yaml:"workers" validate:"gte=1,lte=256"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dictionary: DictionaryConfig{
			Path:     "dictionary.txt",
			WordSize: 5,
		},
		Search: SearchConfig{
			Strategy: "scan",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty or the file does not exist), applies environment
// overrides, and validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadFromEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv(EnvDictionary); v != "" {
		cfg.Dictionary.Path = v
	}
	if v := os.Getenv(EnvWordSize); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvWordSize, v, err)
		}
		cfg.Dictionary.WordSize = i
	}
	if err := envBool(EnvSort, &cfg.Dictionary.Sort); err != nil {
		return err
	}
	if err := envBool(EnvLowercase, &cfg.Dictionary.Lowercase); err != nil {
		return err
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		cfg.Search.Strategy = v
	}
	if v := os.Getenv(EnvMaxDepth); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvMaxDepth, v, err)
		}
		cfg.Search.MaxDepth = i
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if err := envBool(EnvLogJSON, &cfg.Logging.JSON); err != nil {
		return err
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvWorkers, v, err)
		}
		cfg.Batch.Workers = i
	}
	return nil
}

// envBool sets *dst from the boolean env var name, if present.
func envBool(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, name, v, err)
	}
	*dst = b
	return nil
}

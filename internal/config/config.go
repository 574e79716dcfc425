// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mcoot/wordwolf/internal/factory"
	redisstorage "github.com/mcoot/wordwolf/internal/storage/redis"
)

// Config holds every WORDWOLF_* setting
type Config struct {
	StorageType string `env:"STORAGE_TYPE" envDefault:"sqlite"`

	RedisURL       string        `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisPoolSize  int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisPlayerTTL time.Duration `env:"REDIS_PLAYER_TTL" envDefault:"24h"`
	RedisRoomTTL   time.Duration `env:"REDIS_ROOM_TTL" envDefault:"24h"`
	RedisGameTTL   time.Duration `env:"REDIS_GAME_TTL" envDefault:"24h"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"wordwolf.db"`
	ThemesPath string `env:"THEMES_PATH"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Timezone   string `env:"TIMEZONE" envDefault:"Local"`
	RandomSeed uint64 `env:"RANDOM_SEED" envDefault:"0"`
}

// Prefix is prepended to every variable name
const Prefix = "WORDWOLF_"

// Load reads the optional dotenv file, then parses the environment.
// A missing dotenv file is not an error; variables already set win over the file.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	return Parse()
}

// Parse reads the configuration from the environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Location resolves Timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Logger builds the process logger writing to w
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.LogFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: must be 'json' or 'text'", c.LogFormat)
	}
}

// FactoryConfig maps the settings onto the application factory
func (c *Config) FactoryConfig(logger *slog.Logger) (factory.Config, error) {
	loc, err := c.Location()
	if err != nil {
		return factory.Config{}, err
	}

	cfg := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
		SQLitePath:  c.SQLitePath,
		ThemesPath:  c.ThemesPath,
		Location:    loc,
		RandomSeed:  c.RandomSeed,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.PoolSize = c.RedisPoolSize
		redisCfg.PlayerTTL = c.RedisPlayerTTL
		redisCfg.RoomTTL = c.RedisRoomTTL
		redisCfg.GameTTL = c.RedisGameTTL
		cfg.RedisConfig = &redisCfg
	}
	return cfg, nil
}

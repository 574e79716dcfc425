package cli

import (
	"github.com/mcoot/wordwolf/internal/config"
)

// Config holds CLI flag values. Empty values leave the environment setting in place.
type Config struct {
	EnvFile    string
	Output     string
	Storage    string
	SQLitePath string
	RedisURL   string
	ThemesPath string
	LogLevel   string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		EnvFile: ".env",
		Output:  "text",
	}
}

// Settings loads the environment and applies flag overrides on top
func (c *Config) Settings() (*config.Config, error) {
	settings, err := config.Load(c.EnvFile)
	if err != nil {
		return nil, err
	}
	overrides := []struct {
		flag   string
		target *string
	}{
		{c.Storage, &settings.StorageType},
		{c.SQLitePath, &settings.SQLitePath},
		{c.RedisURL, &settings.RedisURL},
		{c.ThemesPath, &settings.ThemesPath},
		{c.LogLevel, &settings.LogLevel},
	}
	for _, o := range overrides {
		if o.flag != "" {
			*o.target = o.flag
		}
	}
	return settings, nil
}

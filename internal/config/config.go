// Package config loads reelmatch settings from built-in defaults, an optional
// YAML file and the environment, in that order of precedence.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
	Database  DatabaseConfig  `koanf:"database"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	CORSOrigins  []string      `koanf:"cors_origins"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// TMDBConfig holds the catalog credential and endpoints. The key is passed
// as the api_key query parameter on every request.
type TMDBConfig struct {
	APIKey       string        `koanf:"api_key" validate:"required"`
	BaseURL      string        `koanf:"base_url" validate:"required,url"`
	ImageBaseURL string        `koanf:"image_base_url" validate:"required,url"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
}

type RecommendConfig struct {
	TopN          int    `koanf:"top_n" validate:"min=1,max=20"`
	PosterSize    string `koanf:"poster_size" validate:"oneof=w200 w300"`
	OverviewChars int    `koanf:"overview_chars" validate:"min=120,max=150"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// DatabaseConfig controls the optional fetch log. Only call metadata is
// stored there, never catalog records.
type DatabaseConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Type       string `koanf:"type" validate:"oneof=sqlite postgres"`
	SQLitePath string `koanf:"sqlite_path"`
	Host       string `koanf:"host"`
	Port       int    `koanf:"port"`
	User       string `koanf:"user"`
	Password   string `koanf:"password"`
	Name       string `koanf:"name"`
}

type RateLimitConfig struct {
	Requests int           `koanf:"requests" validate:"min=0"`
	Window   time.Duration `koanf:"window" validate:"gt=0"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		TMDB: TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			Timeout:      10 * time.Second,
		},
		Recommend: RecommendConfig{
			TopN:          5,
			PosterSize:    "w200",
			OverviewChars: 120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Database: DatabaseConfig{
			Enabled:    false,
			Type:       "sqlite",
			SQLitePath: "./reelmatch.db",
			Host:       "localhost",
			Port:       5432,
			User:       "reelmatch",
			Name:       "reelmatch",
		},
		RateLimit: RateLimitConfig{
			Requests: 60,
			Window:   time.Minute,
		},
	}
}

func (c *Config) validateDatabase() error {
	if !c.Database.Enabled {
		return nil
	}
	switch c.Database.Type {
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("database.sqlite_path is required when the fetch log uses sqlite")
		}
	case "postgres":
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("database.host and database.name are required when the fetch log uses postgres")
		}
	}
	return nil
}

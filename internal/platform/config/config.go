package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
	Mode string // debug or release
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	DSN          string
	MaxIdleConns int
	MaxOpenConns int
}

// AuthConfig holds the login credential and token settings.
type AuthConfig struct {
	Username        string
	Password        string
	JWTSecret       string
	TokenExpiration time.Duration
	Issuer          string
}

// Load reads configuration from the given yaml file, with environment
// variables (MILLBOOKS_SERVER_PORT etc.) taking precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("MILLBOOKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("auth.token_expiration", "24h")
	v.SetDefault("auth.issuer", "millbooks")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("server.port"),
			Mode: v.GetString("server.mode"),
		},
		Database: DatabaseConfig{
			DSN:          v.GetString("database.dsn"),
			MaxIdleConns: v.GetInt("database.max_idle_conns"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
		},
		Auth: AuthConfig{
			Username:        v.GetString("auth.username"),
			Password:        v.GetString("auth.password"),
			JWTSecret:       v.GetString("auth.jwt_secret"),
			TokenExpiration: v.GetDuration("auth.token_expiration"),
			Issuer:          v.GetString("auth.issuer"),
		},
	}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}
	return cfg, nil
}

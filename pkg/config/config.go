package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read via Viper from
// environment variables with sensible defaults.
type Config struct {
	App   AppConfig
	GRPC  GRPCConfig
	HTTP  HTTPConfig
	Store StoreConfig
}

// AppConfig is general application configuration.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// GRPCConfig is the gRPC listener configuration.
type GRPCConfig struct {
	Host string
	Port int
}

// Addr returns the gRPC listen address (host:port).
func (c GRPCConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// HTTPConfig is the HTTP listener configuration.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the HTTP listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig tunes the in-memory inventory store.
type StoreConfig struct {
	Shards      int
	WatchBuffer int
}

// Load reads configuration from environment variables, falling back to
// an optional .env file. Env vars take priority.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "skustore")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GRPC_HOST", "0.0.0.0")
	v.SetDefault("GRPC_PORT", 9001)
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("STORE_SHARDS", 32)
	v.SetDefault("WATCH_BUFFER", 16)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		GRPC: GRPCConfig{
			Host: v.GetString("GRPC_HOST"),
			Port: v.GetInt("GRPC_PORT"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Store: StoreConfig{
			Shards:      v.GetInt("STORE_SHARDS"),
			WatchBuffer: v.GetInt("WATCH_BUFFER"),
		},
	}

	if cfg.Store.Shards <= 0 {
		return nil, fmt.Errorf("STORE_SHARDS must be positive, got %d", cfg.Store.Shards)
	}
	if cfg.Store.WatchBuffer <= 0 {
		return nil, fmt.Errorf("WATCH_BUFFER must be positive, got %d", cfg.Store.WatchBuffer)
	}

	return cfg, nil
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "skustore", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "0.0.0.0:9001", cfg.GRPC.Addr())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 32, cfg.Store.Shards)
	assert.Equal(t, 16, cfg.Store.WatchBuffer)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("GRPC_PORT", "7001")
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("STORE_SHARDS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:7001", cfg.GRPC.Addr())
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, 8, cfg.Store.Shards)
}

func TestLoad_RejectsBadStoreConfig(t *testing.T) {
	t.Setenv("STORE_SHARDS", "0")

	_, err := Load()
	require.Error(t, err)
}

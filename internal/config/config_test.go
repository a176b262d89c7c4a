package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "proj1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Sanity.Dataset)
	assert.Equal(t, "2024-01-01", cfg.Sanity.APIVersion)
	assert.True(t, cfg.Sanity.UseCDN)
	assert.Equal(t, 10*time.Second, cfg.Sanity.Timeout)
	assert.Equal(t, 3, cfg.Sanity.MaxRetries)
	assert.Equal(t, 800, cfg.Image.BaseWidth)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 7*24*time.Hour, cfg.Database.SnapshotMaxAge)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "proj1")
	t.Setenv("SANITY_DATASET", "staging")
	t.Setenv("SANITY_USE_CDN", "false")
	t.Setenv("SANITY_TIMEOUT", "3s")
	t.Setenv("IMAGE_BASE_WIDTH", "1024")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_TTL", "5m")
	t.Setenv("BRIGHTCOVE_ACCOUNT_ID", "acct-42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Sanity.Dataset)
	assert.False(t, cfg.Sanity.UseCDN)
	assert.Equal(t, 3*time.Second, cfg.Sanity.Timeout)
	assert.Equal(t, 1024, cfg.Image.BaseWidth)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "acct-42", cfg.Video.BrightcoveAccountID)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "proj1")
	t.Setenv("SANITY_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Sanity.Timeout)
}

func TestLoad_RequiresProjectID(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "")

	_, err := Load()
	assert.Error(t, err)
}

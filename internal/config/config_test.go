package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no config file present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "nasdaq100.csv", cfg.Dataset.Constituents)
	assert.Equal(t, "nasdaq100_price_change.csv", cfg.Dataset.Prices)
	assert.Equal(t, "symbol", cfg.Dataset.JoinKey)
	assert.Equal(t, "ytd", cfg.Dataset.YTDColumn)
	assert.Equal(t, "claude-haiku-4-5-20251001", cfg.Anthropic.Model)
	assert.Equal(t, int64(1024), cfg.Anthropic.MaxTokens)
	assert.Equal(t, 3, cfg.Recommend.TopSectors)
	assert.Equal(t, 3, cfg.Recommend.CompaniesPerSector)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Anthropic.Key)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENRICH_ANTHROPIC_KEY", "sk-test")
	t.Setenv("ENRICH_DATASET_JOIN_KEY", "ticker")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.Anthropic.Key)
	assert.Equal(t, "ticker", cfg.Dataset.JoinKey)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "verbose", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONSTREC_LOG_LEVEL", "")
	t.Setenv("CONSTREC_SEQ_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.SeqURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONSTREC_LOG_LEVEL", "debug")
	t.Setenv("CONSTREC_SEQ_URL", " http://localhost:5341 ")
	t.Setenv("CONSTREC_PROMPT", "constrec> ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "http://localhost:5341", cfg.SeqURL)
	assert.Equal(t, "constrec> ", cfg.Prompt)

	opts := cfg.LoggingOptions()
	assert.Equal(t, slog.LevelDebug, opts.Level)
	assert.Equal(t, "http://localhost:5341", opts.SeqURL)
}

func TestLoadInvalidLevel(t *testing.T) {
	t.Setenv("CONSTREC_LOG_LEVEL", "chatty")

	_, err := Load()
	assert.Error(t, err)
}

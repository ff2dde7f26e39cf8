package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mini-blog-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.log")

	log := New(config.LogConfig{Level: "info", Format: "json", File: path, FileMaxSizeMB: 1})
	log.Info().Str("probe", "written").Msg("hello")
	log.Debug().Msg("filtered")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"probe":"written"`)
	assert.Contains(t, string(data), `"service":"mini-blog-api"`)
	assert.NotContains(t, string(data), "filtered")
}

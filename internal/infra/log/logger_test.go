package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"giftshop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.ServiceName = "giftshop"
	cfg.Env.Log.Level = "debug"

	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("order placed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "giftshop", entry["service"])
	assert.Equal(t, "order placed", entry["msg"])
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "verbose"

	_, err := newLogger(&bytes.Buffer{}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{name: "", want: slog.LevelInfo},
		{name: "DEBUG", want: slog.LevelDebug},
		{name: "warn", want: slog.LevelWarn},
		{name: "error", want: slog.LevelError},
		{name: "info+2", want: slog.LevelInfo + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := levelOf(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_PrettyFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Env = "staging"
	cfg.Env.Log.Pretty = true
	cfg.Env.Log.Level = "warn"

	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "env=staging")
}

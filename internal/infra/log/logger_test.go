package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"cabinet/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_RedactsSecretsAndTagsService(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "cabinet"
	cfg.Env.Log.Level = "debug"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("login attempt",
		slog.String("email", "nurse@ward.example"),
		slog.String("password", "hunter2!A"),
		slog.String("stored_hash", "$2a$12$abc"),
	)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "cabinet", line["service"])
	assert.Equal(t, "nurse@ward.example", line["email"])
	assert.Equal(t, redacted, line["password"])
	assert.Equal(t, redacted, line["stored_hash"])
}

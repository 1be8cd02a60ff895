package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/samvad-hq/authlink-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestZapLoggerWritesStructuredObjects(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&config.Config{LogLevel: "info"}, zapcore.AddSync(&buf))

	log.DebugObj("hidden", "k", 1)
	log.InfoObj("authlink request completed", "authlink_request", map[string]any{"status": 200})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "authlink request completed", entry["msg"])
	assert.Contains(t, entry, "ts")
	assert.Equal(t, map[string]any{"status": float64(200)}, entry["authlink_request"])
}

func TestPackageHelpersUseInitializedLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&config.Config{LogLevel: "debug"}, zapcore.AddSync(&buf))
	t.Cleanup(func() { S = nil })

	DebugObj("debug line", "k", "v")
	WarnObj("warn line", "k", "v")
	assert.Contains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "warn line")
}

func TestPackageHelpersNoopBeforeInit(t *testing.T) {
	S = nil
	assert.NotPanics(t, func() {
		InfoObj("x", "k", 1)
		ErrorObj("x", "k", 1)
	})
	assert.NoError(t, Close())
}

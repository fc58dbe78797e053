package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/raywall/fast-lambda-client/invoker"
	"github.com/raywall/fast-lambda-client/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	t.Run("Default Level Info", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("Custom Level Debug", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true, Level: "DEBUG"})
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("Disabled Logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := ConfigureWriter(config.LoggingConf{Enabled: false}, &buf)
		l.Info().Msg("teste")
		assert.Zero(t, buf.Len())
	})

	t.Run("Console Format", func(t *testing.T) {
		var buf bytes.Buffer
		l := ConfigureWriter(config.LoggingConf{Enabled: true, Format: "console"}, &buf)
		l.Info().Msg("teste console")
		assert.Contains(t, buf.String(), "teste console")
		assert.False(t, strings.HasPrefix(buf.String(), "{"))
	})
}

func TestZerologAdapter(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	base := ConfigureWriter(config.LoggingConf{Enabled: true, Level: "debug", Format: "json"}, &buf)

	var adapter invoker.Logger = NewZerologAdapter(base)
	adapter.Info("Logs from Lambda:\nSTART")
	adapter.Warn("Invalid Status Code. Actual: 500, Expected: 200")
	adapter.Error("Function error: Unhandled")
	adapter.Debug("Client config: {}")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	want := []struct{ level, msg string }{
		{"info", "Logs from Lambda:\nSTART"},
		{"warn", "Invalid Status Code. Actual: 500, Expected: 200"},
		{"error", "Function error: Unhandled"},
		{"debug", "Client config: {}"},
	}
	for i, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, want[i].level, entry["level"])
		assert.Equal(t, want[i].msg, entry["message"])
		assert.Equal(t, "lambda_client", entry["component"])
	}
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	adapter := NewZerologAdapter(ConfigureWriter(config.LoggingConf{Enabled: true, Level: "warn"}, &buf))

	adapter.Debug("escondido")
	adapter.Info("escondido")
	adapter.Warn("visível")

	assert.NotContains(t, buf.String(), "escondido")
	assert.Contains(t, buf.String(), "visível")
}

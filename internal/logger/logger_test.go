package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("server", WithOutput(&buf))

	l.Info().Msg("hello")

	entry := decode(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestWithLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "info", level: "info", want: zerolog.InfoLevel},
		{name: "upper case", level: " WARN ", want: zerolog.WarnLevel},
		{name: "unknown", level: "verbose", want: zerolog.DebugLevel},
		{name: "empty", level: "", want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger("lvl", WithLevel(tt.level), WithOutput(&buf))
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}

	// не оставляем глобальный уровень изменённым для других тестов
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func TestNewClientLogger_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	l := NewClientLogger("client", dir)
	l.Info().Msg("written to file")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "written to file"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", WithOutput(&buf))

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")
	assert.Equal(t, "inherited-role", decode(t, &buf)["role"])
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("client", WithOutput(&buf)).Component("retry")

	l.Warn().Msg("attempt failed")

	entry := decode(t, &buf)
	assert.Equal(t, "retry", entry["component"])
	assert.Equal(t, "client", entry["role"])
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()}
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "ctx-value", decode(t, &buf)["ctx-key"])
}

func TestFromRequest(t *testing.T) {
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(zl.WithContext(context.Background()))

	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "req-value", decode(t, &buf)["req-key"])
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("customers", WithOutput(&buf))

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "customers", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("customers", WithOutput(&buf))

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNewLogger_WithLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "unknown keeps info", level: "loud", want: zerolog.InfoLevel},
		{name: "empty keeps info", level: "", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLogger("customers", WithLevel(tt.level), WithOutput(&bytes.Buffer{}))
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewLogger_WithConsole(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("customers", WithOutput(&buf), WithConsole())

	l.Info().Msg("readable")

	assert.Contains(t, buf.String(), "readable")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_DoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("customers", WithOutput(&buf))
	child := parent.GetChildLogger()
	child.Logger = child.With().Str("trace_id", "abc").Logger()

	parent.Info().Msg("parent")
	entry := decodeEntry(t, &buf)
	assert.NotContains(t, entry, "trace_id")

	buf.Reset()
	child.Info().Msg("child")
	entry = decodeEntry(t, &buf)
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger("customers", WithOutput(&buf))
	ctx := base.With().Str("trace_id", "t-1").Logger().WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "t-1", entry["trace_id"])
}

func TestFromContext_WithoutLoggerNeverNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger("customers", WithOutput(&buf))
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(base.With().Str("trace_id", "t-2").Logger().WithContext(r.Context()))

	FromRequest(r).Info().Msg("from request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "t-2", entry["trace_id"])
}

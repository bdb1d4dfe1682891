package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID_OchoCaracteres(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}

func TestValidTraceID(t *testing.T) {
	assert.True(t, ValidTraceID(NewTraceID()))
	assert.True(t, ValidTraceID("abc12345"))
	assert.True(t, ValidTraceID("5f1c2a9e-0000-4000-8000-000000000001"))
	assert.True(t, ValidTraceID(strings.Repeat("a", 64)))

	assert.False(t, ValidTraceID(""))
	assert.False(t, ValidTraceID("abc"), "muy corto")
	assert.False(t, ValidTraceID(strings.Repeat("a", 65)), "muy largo")
	assert.False(t, ValidTraceID("abc 12345"))
	assert.False(t, ValidTraceID("abc12345\nlevel=error"))
	assert.False(t, ValidTraceID("ação-12345"))
}

func TestWithTraceID_PropagaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Env: "production", Level: "debug"}, &buf)

	ctx := WithTraceID(context.Background(), l.Zerolog(), "abcd1234")
	zerolog.Ctx(ctx).Info().Msg("venta registrada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abcd1234", line[TraceIDKey])
	assert.Equal(t, "venta registrada", line["message"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
}

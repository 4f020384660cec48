package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}

func TestConfigureWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	Debug().Msg("hidden")
	Info().Str("class", "一年甲班").Msg("roll call saved")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "roll call saved", entry["message"])
	assert.Equal(t, "一年甲班", entry["class"])
	assert.Equal(t, "homeroom", entry["service"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	assert.NotNil(t, FromContext(context.Background()))

	ctx := WithContext(context.Background(), defaultLogger.With().Str("requestId", "r-1").Logger())
	FromContext(ctx).Info().Msg("scoped")
	assert.Contains(t, buf.String(), `"requestId":"r-1"`)
}

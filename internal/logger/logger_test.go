package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streetart-capture/internal/logger"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Level: "info", Format: "json", Service: "streetart", Writer: &buf})

	l.Info().Str("bucket", "user_added_images").Msg("uploaded")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "streetart", line["service"])
	assert.Equal(t, "user_added_images", line["bucket"])
	assert.Equal(t, "uploaded", line["message"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Level: "warn", Format: "json", Writer: &buf})

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Error().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestGet_ReturnsInitialisedRoot(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Level: "debug", Format: "json", Writer: &buf})

	log := logger.Component("camera")
	log.Debug().Msg("stream opened")
	assert.Contains(t, buf.String(), `"component":"camera"`)
}

package structured

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipierette/catbytes-portfolio/core/interfaces"
)

var _ interfaces.Logger = (*Logger)(nil)

func TestNew_JSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Info("Search query completed", map[string]interface{}{
		"query": "gato para adoção preto",
		"hits":  7,
	})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Search query completed", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "gato para adoção preto", line["query"])
	assert.Equal(t, float64(7), line["hits"])
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	logger.Warn("shown", nil)

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "text", Output: &buf})
	require.NoError(t, err)

	logger.Error("Scoring failed", map[string]interface{}{"url": "https://catland.org.br/mia"})

	assert.Contains(t, buf.String(), `msg="Scoring failed"`)
	assert.Contains(t, buf.String(), "level=error")
}

func TestNew_Defaults(t *testing.T) {
	logger, err := New(Options{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf})
	require.NoError(t, err)

	logger.With(map[string]interface{}{"request_id": "abc"}).Info("handled", nil)

	assert.Contains(t, buf.String(), `"request_id":"abc"`)
}

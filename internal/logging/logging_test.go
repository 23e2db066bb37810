package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/khata/internal/config"
	"github.com/MrJamesThe3rd/khata/internal/logging"
)

func TestNew(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		var cfg config.Config
		cfg.Log.Format = "json"
		cfg.Log.Level = "warn"

		var buf bytes.Buffer
		logger := logging.New(&cfg, &buf)

		logger.Info("hidden")
		logger.Warn("cashbook sync failed", "document_id", "abc")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "cashbook sync failed", line["msg"])
		assert.Equal(t, "abc", line["document_id"])
	})

	t.Run("TextWithUnknownLevel", func(t *testing.T) {
		var cfg config.Config
		cfg.Log.Level = "chatty"

		var buf bytes.Buffer
		logging.New(&cfg, &buf).Info("starting server", "port", ":8080")

		assert.Contains(t, buf.String(), `msg="starting server"`)
		assert.Contains(t, buf.String(), "port=:8080")
	})
}

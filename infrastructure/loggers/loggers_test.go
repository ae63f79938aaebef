package loggers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggers(t *testing.T) {
	t.Run("writes to every output with fields", func(t *testing.T) {
		multiLogger, err := InitializeMultiLogger(false, "info")
		require.NoError(t, err)
		var first, second bytes.Buffer
		multiLogger.AddOutput(&first)
		multiLogger.AddOutput(&second)

		runLogger := multiLogger.WithField("variant", "content")
		runLogger.Info("scraping title %d/%d", 1, 32)

		for _, out := range []*bytes.Buffer{&first, &second} {
			assert.Contains(t, out.String(), "level=info")
			assert.Contains(t, out.String(), "scraping title 1/32")
			assert.Contains(t, out.String(), "variant=content")
		}
	})

	t.Run("respects level", func(t *testing.T) {
		multiLogger, err := InitializeMultiLogger(false, "warn")
		require.NoError(t, err)
		var out bytes.Buffer
		multiLogger.AddOutput(&out)

		multiLogger.Debug("debug line")
		multiLogger.Info("info line")
		multiLogger.Warn("warn line")
		assert.NotContains(t, out.String(), "debug line")
		assert.NotContains(t, out.String(), "info line")
		assert.Contains(t, out.String(), "warn line")
	})

	t.Run("fatal logs then exits", func(t *testing.T) {
		multiLogger, err := InitializeMultiLogger(false, "info")
		require.NoError(t, err)
		var out bytes.Buffer
		multiLogger.AddOutput(&out)
		exitCode := -1
		multiLogger.exitFunc = func(code int) { exitCode = code }

		multiLogger.WithField("run", "abc").Fatal("error on writing output: %v", "disk full")
		assert.Equal(t, 1, exitCode)
		assert.Contains(t, out.String(), "level=fatal")
		assert.Contains(t, out.String(), "disk full")
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := InitializeMultiLogger(true, "loud")
		assert.Error(t, err)
	})
}

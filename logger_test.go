package tablekit

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("NewLoggerDefaultsHandler", func(t *testing.T) {
		l := NewLogger(nil)
		require.NotNil(t, l)
		assert.NotNil(t, l.Logger)
	})

	t.Run("StructuredFields", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.LogSearch("ada", 10, 2)
		out := buf.String()
		assert.Contains(t, out, "search applied")
		assert.Contains(t, out, "query=ada")
		assert.Contains(t, out, "matched=2")
	})

	t.Run("ClampedPageGetsDistinctMessage", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.LogPaginate(9, 3, 3, 5)
		assert.Contains(t, buf.String(), "page clamped")

		buf.Reset()
		l.LogPaginate(2, 2, 3, 5)
		assert.Contains(t, buf.String(), "page computed")
	})

	t.Run("NoopLoggerIsSilent", func(t *testing.T) {
		l := NoopLogger()
		assert.NotPanics(t, func() {
			l.LogSort("name", "ascending", 100)
			l.LogSelection("toggle", 1)
		})
	})
}

package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    slog.Level
	}{
		{"default", false, false, slog.LevelInfo},
		{"verbose", true, false, slog.LevelDebug},
		{"quiet", false, true, slog.LevelWarn},
		// quiet takes precedence because the switch checks it first.
		{"both", true, true, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.verbose, tt.quiet))
		})
	}
}

func TestSetup_DefaultLevel(t *testing.T) {
	Setup(io.Discard, false, false)

	ctx := context.Background()
	handler := slog.Default().Handler()
	assert.True(t, handler.Enabled(ctx, slog.LevelInfo), "INFO should be enabled in default mode")
	assert.True(t, handler.Enabled(ctx, slog.LevelError), "ERROR should be enabled in default mode")
	assert.False(t, handler.Enabled(ctx, slog.LevelDebug), "DEBUG should not be enabled in default mode")
}

func TestSetup_VerboseWritesDebug(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, true, false)

	slog.Debug("listing models", "provider", "anthropic")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "provider=anthropic")
}

func TestSetup_QuietSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, false, true)

	slog.Info("models listed")
	assert.Empty(t, buf.String())

	slog.Warn("slow response")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestSetup_CalledMultipleTimes(t *testing.T) {
	ctx := context.Background()

	Setup(io.Discard, true, false)
	assert.True(t, slog.Default().Handler().Enabled(ctx, slog.LevelDebug))

	Setup(io.Discard, false, true)
	handler := slog.Default().Handler()
	assert.False(t, handler.Enabled(ctx, slog.LevelDebug))
	assert.True(t, handler.Enabled(ctx, slog.LevelWarn))
}

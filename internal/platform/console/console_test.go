package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFormatAndLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Debug("hidden")
	log.Info("hello")
	log.Warn("careful")
	log.Error("boom")

	assert.Equal(t, "[info] hello\n[warn] careful\n[error] boom\n", buf.String())
}

func TestLoggerWithLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf).WithLevel(LevelDebug)
	log.Debug("visible")
	assert.Equal(t, "[debug] visible\n", buf.String())

	buf.Reset()
	New(&buf).WithLevel(LevelError).Warn("dropped")
	assert.Empty(t, buf.String())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("nothing")
		var zero Logger
		zero.Info("nothing")
	})
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel(" DEBUG ")
	assert.True(t, ok)
	assert.Equal(t, LevelDebug, l)

	l, ok = ParseLevel("warning")
	assert.True(t, ok)
	assert.Equal(t, LevelWarn, l)

	l, ok = ParseLevel("loud")
	assert.False(t, ok)
	assert.Equal(t, LevelInfo, l)
}

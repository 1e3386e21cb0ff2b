package diag

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitIdempotent(t *testing.T) {
	Init(nil)
	assert.False(t, Init(nil), "second Init must be a no-op")
	assert.False(t, Init(slog.Default()))
}

func TestGuardPassesThrough(t *testing.T) {
	ran := false
	Guard(nil, "noop", func() { ran = true })
	assert.True(t, ran)
}

func TestGuardLogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	assert.PanicsWithValue(t, "boom", func() {
		Guard(log, "tick", func() { panic("boom") })
	})
	assert.Contains(t, buf.String(), "op=tick")
	assert.Contains(t, buf.String(), "value=boom")
}

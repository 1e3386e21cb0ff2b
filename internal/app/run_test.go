package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-wasm/internal/ctxlog"
	"life-wasm/pkg/sims/life"
)

func testContext(w io.Writer) context.Context {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func gliderConfig() *Config {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 6, 6
	cfg.Seed = SeedRandom
	cfg.Density = 0
	cfg.Alive = []life.Coord{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	cfg.Generations = 1
	return cfg
}

func TestRunWritesFinalRender(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, Run(testContext(&logs), gliderConfig(), &out))

	want := life.New(6, 6, nil)
	want.SetAlive(life.Coord{2, 1}, life.Coord{2, 3}, life.Coord{3, 2}, life.Coord{3, 3}, life.Coord{4, 2})
	assert.Equal(t, want.Render(), out.String())
	assert.Contains(t, logs.String(), "label=Universe.Step")
	assert.Contains(t, logs.String(), "run finished")
}

func TestRunPrintEvery(t *testing.T) {
	cfg := gliderConfig()
	cfg.Generations = 3
	cfg.PrintEvery = true

	var out bytes.Buffer
	require.NoError(t, Run(testContext(io.Discard), cfg, &out))
	assert.Equal(t, 3, strings.Count(out.String(), "generation "))
	assert.Contains(t, out.String(), "generation 3\n")
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext(io.Discard))
	cancel()

	var out bytes.Buffer
	err := Run(ctx, gliderConfig(), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := gliderConfig()
	cfg.Width = 0
	assert.ErrorIs(t, Run(context.Background(), cfg, io.Discard), ErrInvalidConfig)
}

func TestNewLoggerHonoursFormatAndLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	log := NewLogger(&buf, cfg)
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

package app

import (
	"context"
	"fmt"
	"io"

	"life-wasm/internal/core"
	"life-wasm/internal/ctxlog"
)

// Run steps the configured universe cfg.Generations times without a
// window and writes the render to out: after every generation when
// cfg.PrintEvery is set, otherwise once at the end. Cancellation is checked
// between generations.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	log := ctxlog.FromContext(ctx)

	u, err := cfg.Universe()
	if err != nil {
		return err
	}
	log.Info("universe created", "width", u.Width(), "height", u.Height(), "seed", cfg.Seed, "population", u.Population())

	for i := 0; i < cfg.Generations; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn("run interrupted", "generation", u.Generation())
			return err
		}
		timer := core.StartTimer(log, "Universe.Step")
		u.Step()
		timer.Stop()

		if cfg.PrintEvery {
			if _, err := fmt.Fprintf(out, "generation %d\n%s", u.Generation(), u.Render()); err != nil {
				return fmt.Errorf("write generation %d: %w", u.Generation(), err)
			}
		}
	}

	if !cfg.PrintEvery {
		if _, err := io.WriteString(out, u.Render()); err != nil {
			return fmt.Errorf("write render: %w", err)
		}
	}
	log.Info("run finished", "generation", u.Generation(), "population", u.Population())
	return nil
}

//go:build !ebiten

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"life-wasm/internal/app"
	"life-wasm/internal/cli"
	"life-wasm/internal/ctxlog"
	"life-wasm/internal/diag"
)

// main runs the universe headless. The window build requires the ebiten
// build tag: `go run -tags ebiten ./cmd/life`.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out, errW io.Writer, args []string) error {
	cfg, exit, err := cli.Parse("life", args, errW)
	if err != nil || exit {
		return err
	}

	log := app.NewLogger(errW, cfg)
	diag.Init(log)

	return app.Run(ctxlog.WithLogger(ctx, log), cfg, out)
}

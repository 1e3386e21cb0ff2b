//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"life-wasm/internal/app"
	"life-wasm/internal/cli"
	"life-wasm/internal/diag"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, exit, err := cli.Parse("life", os.Args[1:], os.Stderr)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if exit {
		return
	}

	log := app.NewLogger(os.Stderr, cfg)
	diag.Init(log)

	u, err := cfg.Universe()
	if err != nil {
		log.Error("invalid universe", "error", err)
		os.Exit(2)
	}

	game := app.New(u, cfg, log)
	scale := max(cfg.Scale, 1)

	ebiten.SetWindowTitle("life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(u.Width()*scale, u.Height()*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}

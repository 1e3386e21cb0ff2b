//go:build js && wasm

package main

import (
	"log/slog"
	"os"

	"life-wasm/internal/diag"
	"life-wasm/internal/jsbridge"
)

// main registers the bindings and blocks so the callbacks stay alive. Go's
// wasm runtime forwards stdout to the browser console.
func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	diag.Init(log)
	jsbridge.Register(log)
	select {}
}

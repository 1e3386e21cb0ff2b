// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"life-wasm/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
// A -config file is applied over the defaults first and explicit flags win
// over the file.
func Parse(name string, args []string, output io.Writer) (*app.Config, bool, error) {
	cfg := app.NewConfig()
	fs := newFlagSet(name, cfg, output)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if cfg.ConfigPath != "" {
		var replay []string
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "glider" || f.Name == "pulsar" {
				return
			}
			replay = append(replay, fmt.Sprintf("-%s=%s", f.Name, f.Value.String()))
		})
		// Flags given on the command line are re-applied before the file's
		// stamp expressions see universe.width and universe.height.
		fileCfg := app.NewConfig()
		err := fileCfg.LoadFileWith(cfg.ConfigPath, func(c *app.Config) error {
			return newFlagSet(name, c, io.Discard).Parse(replay)
		})
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		fileCfg.ConfigPath = cfg.ConfigPath
		fileCfg.Stamps = append(fileCfg.Stamps, cfg.Stamps...)
		cfg = fileCfg
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}

func newFlagSet(name string, cfg *app.Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage of %s:\n", name)
		fs.PrintDefaults()
	}
	cfg.Bind(fs)
	return fs
}

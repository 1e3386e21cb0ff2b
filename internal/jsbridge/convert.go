// Package jsbridge exposes the life engine to a JavaScript host through
// syscall/js. The conversion helpers in this file build on every platform.
package jsbridge

import (
	"fmt"

	"life-wasm/pkg/sims/life"
)

// Default dimensions of a universe created without arguments.
const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

// cellBytes copies cells into dst, growing it when needed, and returns the
// byte view handed to the host. Each byte is 0 for dead and 1 for alive.
func cellBytes(dst []byte, cells []life.Cell) []byte {
	if cap(dst) < len(cells) {
		dst = make([]byte, len(cells))
	}
	dst = dst[:len(cells)]
	for i, c := range cells {
		dst[i] = byte(c)
	}
	return dst
}

// seedStrategy resolves the seed argument of newUniverse.
func seedStrategy(name string, seed int64) (life.SeedStrategy, error) {
	switch name {
	case "", "pattern":
		return life.DefaultPattern, nil
	case "random":
		return life.NewRandom(seed, 0.5), nil
	case "empty":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown seed strategy %q", name)
	}
}

// dimension validates a width or height argument before it reaches the
// engine, which panics on non-positive sizes.
func dimension(name string, v int) (int, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return v, nil
}

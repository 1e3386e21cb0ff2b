//go:build js && wasm

package jsbridge

import (
	"log/slog"
	"syscall/js"

	"life-wasm/internal/core"
	"life-wasm/internal/diag"
	"life-wasm/pkg/sims/life"
)

// Register installs the global newUniverse constructor and the LifeCell
// enum on the JavaScript global object.
func Register(log *slog.Logger) {
	global := js.Global()
	global.Set("LifeCell", js.ValueOf(map[string]any{
		"Dead":  int(life.Dead),
		"Alive": int(life.Alive),
	}))
	global.Set("newUniverse", js.FuncOf(func(this js.Value, args []js.Value) any {
		var handle js.Value
		diag.Guard(log, "newUniverse", func() {
			handle = newUniverse(log, args)
		})
		return handle
	}))
	log.Info("life bindings registered")
}

// universe is the Go side of one handle returned to JavaScript.
type universe struct {
	u   *life.Universe
	log *slog.Logger
	buf []byte
}

// newUniverse accepts optional (width, height, seed, randomSeed) and
// returns a handle object, or an Error value for invalid arguments.
func newUniverse(log *slog.Logger, args []js.Value) js.Value {
	width, height, seed := DefaultWidth, DefaultHeight, ""
	var randomSeed int64
	if len(args) > 0 && !args[0].IsUndefined() {
		width = args[0].Int()
	}
	if len(args) > 1 && !args[1].IsUndefined() {
		height = args[1].Int()
	}
	if len(args) > 2 && !args[2].IsUndefined() {
		seed = args[2].String()
	}
	if len(args) > 3 && !args[3].IsUndefined() {
		randomSeed = int64(args[3].Int())
	}

	var err error
	if width, err = dimension("width", width); err != nil {
		return jsError(err)
	}
	if height, err = dimension("height", height); err != nil {
		return jsError(err)
	}
	strategy, err := seedStrategy(seed, randomSeed)
	if err != nil {
		return jsError(err)
	}

	h := &universe{u: life.New(width, height, strategy), log: log}
	log.Debug("universe created", "width", width, "height", height, "seed", seed)
	return h.object()
}

// jsError reports err on the console and returns it as a JavaScript Error
// value; panicking inside a callback would take down the whole runtime.
func jsError(err error) js.Value {
	js.Global().Get("console").Call("error", err.Error())
	return js.Global().Get("Error").New(err.Error())
}

func (h *universe) object() js.Value {
	obj := js.Global().Get("Object").New()
	h.method(obj, "width", func([]js.Value) any { return h.u.Width() })
	h.method(obj, "height", func([]js.Value) any { return h.u.Height() })
	h.method(obj, "generation", func([]js.Value) any { return float64(h.u.Generation()) })
	h.method(obj, "population", func([]js.Value) any { return h.u.Population() })
	h.method(obj, "render", func([]js.Value) any { return h.u.Render() })
	h.method(obj, "cells", func([]js.Value) any { return h.cells() })
	h.method(obj, "tick", h.tick)
	h.method(obj, "reseed", func([]js.Value) any { h.u.Reseed(); return nil })
	h.method(obj, "clear", func([]js.Value) any { h.u.Clear(); return nil })
	h.method(obj, "toggle_cell", func(args []js.Value) any {
		h.u.Toggle(args[0].Int(), args[1].Int())
		return nil
	})
	h.method(obj, "glider", func(args []js.Value) any {
		h.u.StampGlider(args[0].Int(), args[1].Int())
		return nil
	})
	h.method(obj, "pulsar", func(args []js.Value) any {
		h.u.StampPulsar(args[0].Int(), args[1].Int())
		return nil
	})
	h.method(obj, "set_cells", func(args []js.Value) any {
		h.u.SetAlive(coords(args[0])...)
		return nil
	})
	h.method(obj, "set_width", func(args []js.Value) any {
		w, err := dimension("width", args[0].Int())
		if err != nil {
			return jsError(err)
		}
		h.u.SetWidth(w)
		return nil
	})
	h.method(obj, "set_height", func(args []js.Value) any {
		v, err := dimension("height", args[0].Int())
		if err != nil {
			return jsError(err)
		}
		h.u.SetHeight(v)
		return nil
	})
	return obj
}

// method binds fn as obj[name], running every call under diag.Guard.
func (h *universe) method(obj js.Value, name string, fn func(args []js.Value) any) {
	obj.Set(name, js.FuncOf(func(this js.Value, args []js.Value) any {
		var out any
		diag.Guard(h.log, name, func() { out = fn(args) })
		return out
	}))
}

// tick advances ticks generations (default one) under the scoped timer.
func (h *universe) tick(args []js.Value) any {
	n := 1
	if len(args) > 0 && !args[0].IsUndefined() {
		n = args[0].Int()
	}
	timer := core.StartTimer(h.log, "Universe.tick")
	for i := 0; i < n; i++ {
		h.u.Step()
	}
	timer.Stop()
	return nil
}

// cells copies the current generation into a fresh Uint8Array.
func (h *universe) cells() js.Value {
	h.buf = cellBytes(h.buf, h.u.Cells())
	arr := js.Global().Get("Uint8Array").New(len(h.buf))
	js.CopyBytesToJS(arr, h.buf)
	return arr
}

// coords reads an array of [row, column] pairs.
func coords(v js.Value) []life.Coord {
	out := make([]life.Coord, 0, v.Length())
	for i := 0; i < v.Length(); i++ {
		pair := v.Index(i)
		out = append(out, life.Coord{Row: pair.Index(0).Int(), Column: pair.Index(1).Int()})
	}
	return out
}

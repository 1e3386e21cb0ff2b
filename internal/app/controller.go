package app

import (
	"log/slog"
	"time"

	"life-wasm/internal/core"
	"life-wasm/internal/ui"
	"life-wasm/pkg/sims/life"
)

// Action is a host input translated into an engine operation.
type Action int

const (
	ActionTogglePause Action = iota
	ActionStepOnce
	ActionReseed
	ActionClear
	ActionFaster
	ActionSlower
	ActionWiderGrid
	ActionNarrowerGrid
	ActionTallerGrid
	ActionShorterGrid
)

// ClickMode selects what a click on a cell does.
type ClickMode int

const (
	ClickToggle ClickMode = iota
	ClickGlider
	ClickPulsar
)

// resizeStep is the number of cells added or removed per resize action.
const resizeStep = 8

// Controller owns the universe for an interactive host and applies input
// to it. It is independent of any windowing library.
type Controller struct {
	u   *life.Universe
	log *slog.Logger

	paused        bool
	stepOnce      bool
	ticksPerFrame int
	lastStep      time.Duration
}

// NewController wraps u. ticksPerFrame is clamped to [1, MaxTicksPerFrame].
func NewController(u *life.Universe, ticksPerFrame int, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	c := &Controller{u: u, log: log}
	c.setTicksPerFrame(ticksPerFrame)
	return c
}

// Universe returns the controlled universe.
func (c *Controller) Universe() *life.Universe { return c.u }

// Paused reports whether automatic stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// TicksPerFrame returns the generations advanced per due frame.
func (c *Controller) TicksPerFrame() int { return c.ticksPerFrame }

func (c *Controller) setTicksPerFrame(n int) {
	c.ticksPerFrame = min(max(n, 1), MaxTicksPerFrame)
}

// Apply performs a. It reports whether the grid dimensions changed.
func (c *Controller) Apply(a Action) bool {
	switch a {
	case ActionTogglePause:
		c.paused = !c.paused
		c.log.Debug("pause toggled", "paused", c.paused)
	case ActionStepOnce:
		c.stepOnce = true
	case ActionReseed:
		c.u.Reseed()
		c.log.Info("universe reseeded", "population", c.u.Population())
	case ActionClear:
		c.u.Clear()
		c.log.Info("universe cleared")
	case ActionFaster:
		c.setTicksPerFrame(c.ticksPerFrame + 1)
	case ActionSlower:
		c.setTicksPerFrame(c.ticksPerFrame - 1)
	case ActionWiderGrid:
		return c.resize(c.u.Width()+resizeStep, c.u.Height())
	case ActionNarrowerGrid:
		return c.resize(c.u.Width()-resizeStep, c.u.Height())
	case ActionTallerGrid:
		return c.resize(c.u.Width(), c.u.Height()+resizeStep)
	case ActionShorterGrid:
		return c.resize(c.u.Width(), c.u.Height()-resizeStep)
	}
	return false
}

func (c *Controller) resize(w, h int) bool {
	if w < resizeStep || h < resizeStep {
		return false
	}
	if w != c.u.Width() {
		c.u.SetWidth(w)
	}
	if h != c.u.Height() {
		c.u.SetHeight(h)
	}
	c.log.Info("universe resized", "width", w, "height", h)
	return true
}

// Click applies mode to the cell at (row, col).
func (c *Controller) Click(row, col int, mode ClickMode) {
	switch mode {
	case ClickGlider:
		c.u.StampGlider(row, col)
	case ClickPulsar:
		c.u.StampPulsar(row, col)
	default:
		c.u.Toggle(row, col)
	}
}

// Advance steps the universe for one frame: ticksPerFrame generations when
// running and due, or a single generation after ActionStepOnce. It returns
// the number of generations advanced.
func (c *Controller) Advance(due bool) int {
	n := 0
	switch {
	case c.stepOnce:
		n = 1
	case !c.paused && due:
		n = c.ticksPerFrame
	}
	c.stepOnce = false
	if n == 0 {
		return 0
	}
	timer := core.StartTimer(c.log, "Universe.Step")
	for i := 0; i < n; i++ {
		c.u.Step()
	}
	c.lastStep = timer.Stop()
	return n
}

// Status snapshots the state shown on the HUD.
func (c *Controller) Status() ui.Status {
	return ui.Status{
		Generation:    c.u.Generation(),
		Population:    c.u.Population(),
		TicksPerFrame: c.ticksPerFrame,
		LastStep:      c.lastStep,
		Paused:        c.paused,
	}
}

//go:build ebiten

package app

import (
	"log/slog"

	"life-wasm/internal/core"
	"life-wasm/internal/render"
	"life-wasm/internal/ui"
	"life-wasm/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = map[ebiten.Key]Action{
	ebiten.KeySpace:      ActionTogglePause,
	ebiten.KeyN:          ActionStepOnce,
	ebiten.KeyR:          ActionReseed,
	ebiten.KeyC:          ActionClear,
	ebiten.KeyEqual:      ActionFaster,
	ebiten.KeyKPAdd:      ActionFaster,
	ebiten.KeyMinus:      ActionSlower,
	ebiten.KeyKPSubtract: ActionSlower,
	ebiten.KeyArrowRight: ActionWiderGrid,
	ebiten.KeyArrowLeft:  ActionNarrowerGrid,
	ebiten.KeyArrowDown:  ActionTallerGrid,
	ebiten.KeyArrowUp:    ActionShorterGrid,
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	scale   int
}

// New constructs a Game for the provided universe.
func New(u *life.Universe, cfg *Config, log *slog.Logger) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		ctrl:    NewController(u, cfg.TicksPerFrame, log),
		painter: render.NewGridPainter(u.Width(), u.Height()),
		hud:     ui.NewHUD(),
		pacer:   core.NewFixedStep(cfg.GPS),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) && g.ctrl.Apply(action) {
			u := g.ctrl.Universe()
			ebiten.SetWindowSize(u.Width()*g.scale, u.Height()*g.scale)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		u := g.ctrl.Universe()
		x, y := ebiten.CursorPosition()
		if row, col, ok := render.CellAt(x, y, g.scale, u.Width(), u.Height()); ok {
			mode := ClickToggle
			switch {
			case ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta):
				mode = ClickGlider
			case ebiten.IsKeyPressed(ebiten.KeyShift):
				mode = ClickPulsar
			}
			g.ctrl.Click(row, col, mode)
		}
	}

	g.ctrl.Advance(g.pacer.ShouldStep())
	g.hud.Update(g.ctrl.Status())
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Universe(), render.AliveColor, render.DeadColor, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	u := g.ctrl.Universe()
	return u.Width() * g.scale, u.Height() * g.scale
}

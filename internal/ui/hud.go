//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 4
	hudLineHeight = 14
	hudWidth      = 110
)

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	visible bool
	status  Status
	panel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.panel = ebiten.NewImage(1, 1)
	h.panel.Fill(color.RGBA{A: 0xB0})
	return h
}

// Update handles the visibility toggle and caches the status to draw.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	h.status = s
}

// Draw renders the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	lines := h.status.Lines()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudWidth, float64(len(lines)*hudLineHeight+2*hudPadding))
	screen.DrawImage(h.panel, op)

	face := basicfont.Face7x13
	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, line, face, hudPadding, y, color.White)
	}
}

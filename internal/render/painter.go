//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"life-wasm/pkg/sims/life"
)

// minGridScale is the smallest cell size that still gets grid lines.
const minGridScale = 4

// GridPainter updates a single RGBA image based on cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Blit uploads the universe's cells into the painter image and draws it.
// The image is reallocated when the universe has been resized.
func (gp *GridPainter) Blit(dst *ebiten.Image, u *life.Universe, on, off color.Color, scale int) {
	if u.Width() != gp.w || u.Height() != gp.h {
		gp.resize(u.Width(), u.Height())
	}
	fillBinaryRGBA(gp.buf, u.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	if scale >= minGridScale {
		gp.drawGrid(dst, scale)
	}
}

func (gp *GridPainter) drawGrid(dst *ebiten.Image, scale int) {
	s := float32(scale)
	width, height := float32(gp.w)*s, float32(gp.h)*s
	for col := 0; col <= gp.w; col++ {
		x := float32(col) * s
		vector.StrokeLine(dst, x, 0, x, height, 1, GridColor, false)
	}
	for row := 0; row <= gp.h; row++ {
		y := float32(row) * s
		vector.StrokeLine(dst, 0, y, width, y, 1, GridColor, false)
	}
}

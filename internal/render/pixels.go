package render

import (
	"image/color"

	"life-wasm/pkg/sims/life"
)

// Default colours match the canvas host: black cells on white.
var (
	AliveColor = color.Black
	DeadColor  = color.White
	GridColor  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
)

// fillBinaryRGBA converts cell states into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []life.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == life.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a screen position to the cell under it for a grid drawn at
// the given scale. ok is false outside the grid.
func CellAt(x, y, scale, width, height int) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= height || col >= width {
		return 0, 0, false
	}
	return row, col, true
}

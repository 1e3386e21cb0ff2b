package render

import (
	"image/color"
	"slices"
	"testing"

	"life-wasm/pkg/sims/life"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []life.Cell{life.Alive, life.Dead, life.Alive}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.RGBA{R: 1, G: 2, B: 3, A: 4})

	want := []byte{10, 20, 30, 255, 1, 2, 3, 4, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillBinaryRGBADefaults(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []life.Cell{life.Alive, life.Dead}, AliveColor, DeadColor)
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{9, 4, 0, 1, true},
		{24, 14, 2, 4, true},
		{25, 0, 0, 0, false},
		{0, 15, 0, 0, false},
		{-1, 3, 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := CellAt(tc.x, tc.y, 5, 5, 3)
		if row != tc.row || col != tc.col || ok != tc.ok {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tc.x, tc.y, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}

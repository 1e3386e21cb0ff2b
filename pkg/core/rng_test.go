package core

import (
	"slices"
	"testing"
)

func TestNewRNGDeterministic(t *testing.T) {
	draw := func(seed int64) []bool {
		r := NewRNG(seed)
		out := make([]bool, 64)
		for i := range out {
			if i%2 == 0 {
				out[i] = r.Bool()
			} else {
				out[i] = r.Chance(0.3)
			}
		}
		return out
	}
	if !slices.Equal(draw(7), draw(7)) {
		t.Fatal("same seed produced different sequences")
	}
	if slices.Equal(draw(7), draw(8)) {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
		if r.Chance(-3) || !r.Chance(2) {
			t.Fatal("Chance did not clamp out-of-range probabilities")
		}
	}
}

package life

import (
	"errors"
	"slices"
	"testing"
)

func TestRender(t *testing.T) {
	u := cleared(3, 2)
	u.SetAlive(Coord{0, 1}, Coord{1, 2})
	want := "◻◼◻\n◻◻◼\n"
	if got := u.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
	if u.String() != want {
		t.Fatal("String() differs from Render()")
	}
}

func TestRenderRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		u := New(13, 7, NewRandom(seed, 0.4))
		u.Step()
		parsed, err := Parse(u.Render())
		if err != nil {
			t.Fatalf("seed %d: Parse: %v", seed, err)
		}
		if parsed.Width() != 13 || parsed.Height() != 7 {
			t.Fatalf("seed %d: parsed %dx%d", seed, parsed.Width(), parsed.Height())
		}
		if !slices.Equal(parsed.Cells(), u.Cells()) {
			t.Fatalf("seed %d: round trip mismatch", seed)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]error{
		"":           ErrEmptyRender,
		"◻◼\n◻\n":    ErrRaggedRender,
		"◻◼\n◻x\n":   ErrUnknownGlyph,
		"\n◻◼\n◻◼\n": ErrEmptyRender,
	}
	for in, want := range cases {
		if _, err := Parse(in); !errors.Is(err, want) {
			t.Fatalf("Parse(%q) err = %v, want %v", in, err, want)
		}
	}
}

package life

import (
	"errors"
	"fmt"
	"strings"
)

// Glyphs used by Render and Parse.
const (
	DeadGlyph  = '◻'
	AliveGlyph = '◼'
)

var (
	ErrEmptyRender  = errors.New("universe: empty render")
	ErrRaggedRender = errors.New("universe: rows differ in length")
	ErrUnknownGlyph = errors.New("universe: unknown glyph")
)

// Render dumps the grid one row per line.
func (u *Universe) Render() string {
	var b strings.Builder
	b.Grow((u.w*len(string(AliveGlyph)) + 1) * u.h)
	for i, c := range u.cur {
		if c == Alive {
			b.WriteRune(AliveGlyph)
		} else {
			b.WriteRune(DeadGlyph)
		}
		if (i+1)%u.w == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (u *Universe) String() string { return u.Render() }

// Parse rebuilds a Universe from the output of Render.
func Parse(text string) (*Universe, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyRender
	}
	width := len([]rune(lines[0]))
	var alive []Coord
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", row, len(runes), width, ErrRaggedRender)
		}
		for col, r := range runes {
			switch r {
			case AliveGlyph:
				alive = append(alive, Coord{Row: row, Column: col})
			case DeadGlyph:
			default:
				return nil, fmt.Errorf("row %d column %d: %q: %w", row, col, r, ErrUnknownGlyph)
			}
		}
	}
	u := New(width, len(lines), nil)
	u.SetAlive(alive...)
	return u, nil
}

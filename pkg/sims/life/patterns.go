package life

import (
	"sort"
	"strings"
)

// Pattern is a fixed block of cells stamped centred on an anchor. Rows are
// drawn with '#' for alive and '.' for dead; every row has the same length.
type Pattern struct {
	Name string
	Rows []string
}

// Size returns the pattern's height and width.
func (p Pattern) Size() (int, int) {
	if len(p.Rows) == 0 {
		return 0, 0
	}
	return len(p.Rows), len(p.Rows[0])
}

var (
	// Glider travels one cell down and right every four generations.
	Glider = Pattern{Name: "glider", Rows: []string{
		".#.",
		"..#",
		"###",
	}}

	// Pulsar is the period-3 oscillator.
	Pulsar = Pattern{Name: "pulsar", Rows: []string{
		"..###...###..",
		".............",
		"#....#.#....#",
		"#....#.#....#",
		"#....#.#....#",
		"..###...###..",
		".............",
		"..###...###..",
		"#....#.#....#",
		"#....#.#....#",
		"#....#.#....#",
		".............",
		"..###...###..",
	}}
)

var patterns = map[string]Pattern{}

// Register adds a pattern under its name. Empty names and ragged patterns
// are ignored.
func Register(p Pattern) {
	if p.Name == "" || len(p.Rows) == 0 {
		return
	}
	for _, row := range p.Rows {
		if len(row) != len(p.Rows[0]) {
			return
		}
	}
	patterns[strings.ToLower(p.Name)] = p
}

// LookupPattern returns the registered pattern with the given name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[strings.ToLower(name)]
	return p, ok
}

// Patterns lists the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp writes p centred on (row, column), overwriting both alive and dead
// cells of its bounding box. The block wraps around the grid edges.
func (u *Universe) Stamp(p Pattern, row, column int) {
	h, w := p.Size()
	top, left := row-h/2, column-w/2
	for dr, line := range p.Rows {
		for dc := 0; dc < w; dc++ {
			cell := Dead
			if line[dc] == '#' {
				cell = Alive
			}
			u.cur[u.index(top+dr, left+dc)] = cell
		}
	}
}

// StampGlider writes a glider centred on (row, column).
func (u *Universe) StampGlider(row, column int) { u.Stamp(Glider, row, column) }

// StampPulsar writes a pulsar centred on (row, column).
func (u *Universe) StampPulsar(row, column int) { u.Stamp(Pulsar, row, column) }

func init() {
	Register(Glider)
	Register(Pulsar)
}

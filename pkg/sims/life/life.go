// Package life implements Conway's Game of Life on a dense toroidal grid.
//
// A Universe is exclusively owned by its caller and is not safe for
// concurrent use. Coordinates passed to any accessor or setter wrap around
// the grid edges, so no call ever reports an out-of-range condition.
// Precondition violations (non-positive dimensions, allocations that
// overflow int) panic.
package life

import (
	"fmt"
	"math"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Column int
}

// Universe is a fixed-size toroidal grid stepped with the B3/S23 rule.
type Universe struct {
	w, h int
	cur  []Cell
	nxt  []Cell

	gen    uint64
	random *Random
}

// New returns a Universe of the given dimensions with every cell seeded by
// seed. A nil seed, or a nil IndexPattern, leaves every cell dead.
func New(width, height int, seed SeedStrategy) *Universe {
	n := area(width, height)
	u := &Universe{w: width, h: height, cur: make([]Cell, n), nxt: make([]Cell, n)}
	if r, ok := seed.(*Random); ok {
		u.random = r
	}
	u.Seed(seed)
	return u
}

func area(width, height int) int {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("universe: invalid dimensions %dx%d", width, height))
	}
	if width > math.MaxInt/height {
		panic(fmt.Sprintf("universe: %dx%d cells overflows the index space", width, height))
	}
	return width * height
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Generation returns the number of steps since the grid was last seeded,
// cleared or resized.
func (u *Universe) Generation() uint64 { return u.gen }

// Cells exposes the current generation in row-major order. The slice is
// reused by Step and replaced by SetWidth and SetHeight; callers must not
// retain it across those calls.
func (u *Universe) Cells() []Cell { return u.cur }

func (u *Universe) index(row, column int) int {
	row = (row%u.h + u.h) % u.h
	column = (column%u.w + u.w) % u.w
	return row*u.w + column
}

// CellAt returns the state at (row, column), wrapping both coordinates.
func (u *Universe) CellAt(row, column int) Cell {
	return u.cur[u.index(row, column)]
}

// Toggle flips a single cell.
func (u *Universe) Toggle(row, column int) {
	idx := u.index(row, column)
	if u.cur[idx] == Alive {
		u.cur[idx] = Dead
		return
	}
	u.cur[idx] = Alive
}

// SetAlive marks each coordinate alive and leaves every other cell as is.
func (u *Universe) SetAlive(coords ...Coord) {
	for _, c := range coords {
		u.cur[u.index(c.Row, c.Column)] = Alive
	}
}

// Clear kills every cell.
func (u *Universe) Clear() {
	clear(u.cur)
	u.gen = 0
}

// Seed applies seed to every index, replacing the current generation.
func (u *Universe) Seed(seed SeedStrategy) {
	for i := range u.cur {
		u.cur[i] = Dead
		if seed != nil && seed.Alive(i) {
			u.cur[i] = Alive
		}
	}
	u.gen = 0
}

// Reseed replaces the grid with a fresh uniform random sample where each
// cell is alive with probability one half. Universes created with a Random
// strategy keep drawing from it, others from an unseeded source.
func (u *Universe) Reseed() {
	if u.random == nil {
		u.random = NewRandom(int64(rngSeed()), 0.5)
	}
	u.Seed(u.random.WithDensity(0.5))
}

// SetWidth reallocates the grid with the given number of columns. All
// cells are reset to dead.
func (u *Universe) SetWidth(width int) { u.resize(width, u.h) }

// SetHeight reallocates the grid with the given number of rows. All cells
// are reset to dead.
func (u *Universe) SetHeight(height int) { u.resize(u.w, height) }

func (u *Universe) resize(width, height int) {
	n := area(width, height)
	u.w, u.h = width, height
	u.cur = make([]Cell, n)
	u.nxt = make([]Cell, n)
	u.gen = 0
}

// LiveNeighbors counts the alive cells among the eight toroidal neighbours
// of (row, column). On grids one cell wide or tall a neighbour offset can
// wrap back onto the cell itself and is counted like any other.
func (u *Universe) LiveNeighbors(row, column int) int {
	row = (row%u.h + u.h) % u.h
	column = (column%u.w + u.w) % u.w
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + u.h) % u.h
			c := (column + dc + u.w) % u.w
			count += int(u.cur[r*u.w+c])
		}
	}
	return count
}

// Step advances the simulation by one generation. Every cell is computed
// from the previous generation into the back buffer, then the buffers swap.
func (u *Universe) Step() {
	w, h := u.w, u.h
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			u.nxt[idx] = next(u.cur[idx], u.LiveNeighbors(row, col))
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.gen++
}

func next(cell Cell, neighbors int) Cell {
	switch {
	case cell == Alive && neighbors < 2:
		return Dead
	case cell == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case cell == Alive && neighbors > 3:
		return Dead
	case cell == Dead && neighbors == 3:
		return Alive
	default:
		return cell
	}
}

// Population returns the number of alive cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		n += int(c)
	}
	return n
}

// AliveCoords lists the alive cells in row-major order.
func (u *Universe) AliveCoords() []Coord {
	var out []Coord
	for i, c := range u.cur {
		if c == Alive {
			out = append(out, Coord{Row: i / u.w, Column: i % u.w})
		}
	}
	return out
}

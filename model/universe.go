package model

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/sheikhrachel/toroidal-gol/rules"
)

const (
	exampleWidth  = 64
	exampleHeight = 64
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Toggle returns the opposite state
func (c Cell) Toggle() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Source draws the initial state of one cell during randomization.
// Bool returns true when the cell should start Alive.
type Source interface {
	Bool() bool
}

// Universe is a fixed-size toroidal grid of cells.
//
// Cells are bit-packed in row-major order: the cell at (row, column) lives at
// bit index%8 of byte index/8, where index = row*width + column. A Universe is
// not safe for concurrent use; callers serialize access.
type Universe struct {
	width  int
	height int
	cells  []byte
	prev   []byte // snapshot of the previous generation, reused by Tick
}

// New creates a universe with every cell Dead
func New(width, height int) *Universe {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("model: invalid universe size %dx%d", width, height))
	}
	size := (width*height + 7) / 8
	return &Universe{
		width:  width,
		height: height,
		cells:  make([]byte, size),
		prev:   make([]byte, size),
	}
}

// Example returns the deterministic 64x64 demo universe, where the cell at
// linear index i starts Alive when i is a multiple of 2 or 7.
func Example() *Universe {
	u := New(exampleWidth, exampleHeight)
	for row := range u.height {
		for column := range u.width {
			if i := row*u.width + column; i%2 == 0 || i%7 == 0 {
				u.set(i, Alive)
			}
		}
	}
	return u
}

// Random creates a universe whose cells are drawn from src
func Random(width, height int, src Source) *Universe {
	u := New(width, height)
	u.Randomize(src)
	return u
}

// Width returns the number of columns
func (u *Universe) Width() int {
	return u.width
}

// Height returns the number of rows
func (u *Universe) Height() int {
	return u.height
}

// Cells exposes the packed backing storage for display layers. The layout is
// an implementation detail and the slice must not be modified.
func (u *Universe) Cells() []byte {
	return u.cells
}

// Get returns the state of the cell at (row, column). It panics when the
// coordinate is outside the universe.
func (u *Universe) Get(row, column int) Cell {
	return u.get(u.index(row, column))
}

// SetCell makes the cell at (row, column) Alive
func (u *Universe) SetCell(row, column int) {
	u.set(u.index(row, column), Alive)
}

// ClearCell makes the cell at (row, column) Dead
func (u *Universe) ClearCell(row, column int) {
	u.set(u.index(row, column), Dead)
}

// ToggleCell flips the cell at (row, column)
func (u *Universe) ToggleCell(row, column int) {
	i := u.index(row, column)
	u.set(i, u.get(i).Toggle())
}

// Clear kills every cell in place
func (u *Universe) Clear() {
	clear(u.cells)
}

// Randomize redraws every cell from src
func (u *Universe) Randomize(src Source) {
	for i := range u.width * u.height {
		if src.Bool() {
			u.set(i, Alive)
		} else {
			u.set(i, Dead)
		}
	}
}

// LiveNeighborCount counts the Alive cells among the eight neighbors of
// (row, column), wrapping around the edges of the universe. On grids narrower
// than three cells a neighbor may be the cell itself.
func (u *Universe) LiveNeighborCount(row, column int) int {
	u.index(row, column)
	return u.neighbors(u.cells, row, column)
}

// Tick advances the universe by one generation. Every next state is computed
// from a snapshot of the previous generation.
func (u *Universe) Tick() {
	copy(u.prev, u.cells)
	for row := range u.height {
		for column := range u.width {
			i := row*u.width + column
			alive := cellAt(u.prev, i) == Alive
			if rules.ApplyConwayRules(u.neighbors(u.prev, row, column), alive) {
				u.set(i, Alive)
			} else {
				u.set(i, Dead)
			}
		}
	}
}

// Population returns the number of Alive cells
func (u *Universe) Population() (count int) {
	for _, b := range u.cells {
		count += bits.OnesCount8(b)
	}
	return
}

// Clone returns an independent copy of the universe
func (u *Universe) Clone() *Universe {
	c := New(u.width, u.height)
	copy(c.cells, u.cells)
	return c
}

// Equal reports whether both universes have the same size and cell states
func (u *Universe) Equal(other *Universe) bool {
	return u.width == other.width && u.height == other.height && bytes.Equal(u.cells, other.cells)
}

// Hash returns an MD5 digest of the dimensions and cell states
func (u *Universe) Hash() string {
	h := md5.New()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(u.width))
	binary.LittleEndian.PutUint64(dims[8:], uint64(u.height))
	h.Write(dims[:])
	h.Write(u.cells)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// neighbors counts live neighbors of (row, column) in buf with toroidal wrap
func (u *Universe) neighbors(buf []byte, row, column int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + u.height) % u.height
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (column + dc + u.width) % u.width
			if cellAt(buf, r*u.width+c) == Alive {
				count++
			}
		}
	}
	return count
}

// index validates (row, column) and returns its linear index
func (u *Universe) index(row, column int) int {
	if row < 0 || row >= u.height || column < 0 || column >= u.width {
		panic(fmt.Sprintf("model: cell (%d, %d) out of range for %dx%d universe",
			row, column, u.width, u.height))
	}
	return row*u.width + column
}

func (u *Universe) get(i int) Cell {
	return cellAt(u.cells, i)
}

func (u *Universe) set(i int, c Cell) {
	if c == Alive {
		u.cells[i/8] |= 1 << (i % 8)
	} else {
		u.cells[i/8] &^= 1 << (i % 8)
	}
}

func cellAt(buf []byte, i int) Cell {
	return Cell(buf[i/8] >> (i % 8) & 1)
}

package core

import "math/bits"

// Panel dimensions. The grid is sized to the SSD1306 128x64 module and is
// fixed at compile time; one bit per cell gives exactly 1024 bytes.
const (
	Width     = 128
	Height    = 64
	GridBytes = Width * Height / 8
)

// BitGrid stores one cell per bit in row-major order over a fixed torus.
// The backing array is embedded in the struct, so two grids cost 2 KiB of
// static storage and no per-frame allocation.
type BitGrid struct {
	bits [GridBytes]uint8
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BitGrid) Wrap(x, y int) (int, int) {
	x = (x%Width + Width) % Width
	y = (y%Height + Height) % Height
	return x, y
}

// Get reports whether the cell at (x, y) is alive. Coordinates wrap.
func (g *BitGrid) Get(x, y int) bool {
	x, y = g.Wrap(x, y)
	idx := y*Width + x
	return g.bits[idx>>3]&(1<<(idx&7)) != 0
}

// Set writes the cell at (x, y). Coordinates wrap. The target bit is
// cleared and the new value OR-ed in, so the store itself is branchless.
func (g *BitGrid) Set(x, y int, alive bool) {
	x, y = g.Wrap(x, y)
	idx := y*Width + x
	var v uint8
	if alive {
		v = 1
	}
	g.bits[idx>>3] = g.bits[idx>>3]&^(1<<(idx&7)) | v<<(idx&7)
}

// Clear fills the grid with dead cells.
func (g *BitGrid) Clear() {
	for i := range g.bits {
		g.bits[i] = 0
	}
}

// Neighbors counts the live cells among the eight toroidal neighbors of
// (x, y).
func (g *BitGrid) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + Width) % Width
			ny := (y + dy + Height) % Height
			idx := ny*Width + nx
			n += int(g.bits[idx>>3] >> (idx & 7) & 1)
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *BitGrid) Population() int {
	n := 0
	for _, b := range g.bits {
		n += bits.OnesCount8(b)
	}
	return n
}

// Bytes exposes the backing storage for direct comparison.
func (g *BitGrid) Bytes() []uint8 { return g.bits[:] }

package life

import "oled-life/internal/core"

// Engine advances Conway's Game of Life over two fixed grids. It owns both
// buffers exclusively: a step reads only from front and writes only to
// back, then swaps the roles by pointer so every generation sees a
// consistent snapshot of its predecessor.
type Engine struct {
	front, back *core.BitGrid
	generation  int
}

// New allocates both grid buffers. They are never reallocated or resized.
func New() *Engine {
	return &Engine{front: &core.BitGrid{}, back: &core.BitGrid{}}
}

// Front returns the grid holding the current generation.
func (e *Engine) Front() *core.BitGrid { return e.front }

// Generation returns the number of steps since the last reset.
func (e *Engine) Generation() int { return e.generation }

// Population returns the live-cell count of the current generation.
func (e *Engine) Population() int { return e.front.Population() }

// Reset clears both buffers, lets seed populate the front grid, and zeroes
// the generation counter.
func (e *Engine) Reset(seed func(*core.BitGrid)) {
	e.back.Clear()
	e.front.Clear()
	if seed != nil {
		seed(e.front)
	}
	e.generation = 0
}

// Step computes one generation. A live cell survives with two or three
// live neighbors; a dead cell is born with exactly three. The cost is
// fixed: every cell is visited regardless of activity.
func (e *Engine) Step() {
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			n := e.front.Neighbors(x, y)
			e.back.Set(x, y, n == 3 || (n == 2 && e.front.Get(x, y)))
		}
	}
	e.front, e.back = e.back, e.front
	e.generation++
}

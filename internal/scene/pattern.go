package scene

import (
	"strings"

	"oled-life/internal/core"
)

// Classic patterns, written as string art where 'O' is a live cell.

// glider is a small spaceship that travels one cell down-right every four
// generations.
const glider = `
.O.
..O
OOO`

// rPentomino is a five-cell seed with chaotic long-lived evolution.
const rPentomino = `
.OO
OO.
.O.`

// lwss is the lightweight spaceship; it travels horizontally.
const lwss = `
.O..O
O....
O...O
OOOO.`

// pulsar is a period-3 oscillator.
const pulsar = `
..OOO...OOO..
.............
O....O.O....O
O....O.O....O
O....O.O....O
..OOO...OOO..
.............
..OOO...OOO..
O....O.O....O
O....O.O....O
O....O.O....O
.............
..OOO...OOO..`

// gosperGun emits a new glider every 30 generations.
const gosperGun = `
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`

// stamp writes a pattern onto the grid with its top-left corner anchored at
// (ox, oy). Anchors may place cells across the torus seam.
func stamp(g *core.BitGrid, pattern string, ox, oy int) {
	for dy, line := range strings.Split(strings.TrimPrefix(pattern, "\n"), "\n") {
		for dx, ch := range line {
			if ch == 'O' {
				g.Set(ox+dx, oy+dy, true)
			}
		}
	}
}

// sprinkle turns on cells independently with the given percent probability.
// Cells already alive are left alone, so noise composes with stamps.
func sprinkle(g *core.BitGrid, rng *core.Xorshift32, percent uint32) {
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			if rng.Chance(percent) {
				g.Set(x, y, true)
			}
		}
	}
}

// Package scene provides the closed catalogue of seed scenes. Each scene
// is a deterministic procedure over a grid and a generator: given the same
// seed it always produces the same board.
package scene

import "oled-life/internal/core"

// Scene identifies one entry of the fixed catalogue.
type Scene int

const (
	// ChaosSeed is a single R-pentomino with sparse noise around it.
	ChaosSeed Scene = iota
	// TwinGuns places two Gosper guns whose glider streams interact.
	TwinGuns
	// Primordial is a pure random fill at roughly 18% density.
	Primordial
	// Travelers mixes gliders and a spaceship with light noise.
	Travelers
	// PulsarField is a symmetric arrangement of pulsars with trace noise.
	PulsarField
	// Collision drops several R-pentominoes set to crash into each other.
	Collision
	// DenseSoup is a pure random fill at roughly 25% density.
	DenseSoup

	sceneCount
)

// All returns the catalogue in presentation order.
func All() []Scene {
	out := make([]Scene, sceneCount)
	for i := range out {
		out[i] = Scene(i)
	}
	return out
}

var sceneNames = [sceneCount]string{
	ChaosSeed:   "chaos",
	TwinGuns:    "twin-guns",
	Primordial:  "primordial",
	Travelers:   "travelers",
	PulsarField: "pulsars",
	Collision:   "collision",
	DenseSoup:   "soup",
}

var sceneDescriptions = [sceneCount]string{
	ChaosSeed:   "R-pentomino chaos seed over 3% noise",
	TwinGuns:    "two glider guns over 1% noise",
	Primordial:  "random fill at 18% density",
	Travelers:   "gliders and a spaceship over 2% noise",
	PulsarField: "pulsar oscillator field over 1% noise",
	Collision:   "four R-pentominoes on a collision course",
	DenseSoup:   "random fill at 25% density",
}

// String returns the scene's catalogue name.
func (s Scene) String() string {
	if s < 0 || s >= sceneCount {
		return "unknown"
	}
	return sceneNames[s]
}

// Description returns a one-line summary for listings.
func (s Scene) Description() string {
	if s < 0 || s >= sceneCount {
		return ""
	}
	return sceneDescriptions[s]
}

// FromName resolves a catalogue name back to its Scene.
func FromName(name string) (Scene, bool) {
	for i, n := range sceneNames {
		if n == name {
			return Scene(i), true
		}
	}
	return 0, false
}

// Apply clears the grid and seeds it for this scene, drawing randomness
// from rng. Unknown values fall back to DenseSoup.
func (s Scene) Apply(g *core.BitGrid, rng *core.Xorshift32) {
	g.Clear()
	switch s {
	case ChaosSeed:
		stamp(g, rPentomino, core.Width/2, core.Height/2)
		sprinkle(g, rng, 3)
	case TwinGuns:
		stamp(g, gosperGun, 4, 4)
		stamp(g, gosperGun, 4, 40)
		sprinkle(g, rng, 1)
	case Primordial:
		sprinkle(g, rng, 18)
	case Travelers:
		stamp(g, glider, 8, 8)
		stamp(g, glider, 40, 20)
		stamp(g, glider, 90, 12)
		stamp(g, lwss, 20, 48)
		sprinkle(g, rng, 2)
	case PulsarField:
		stamp(g, pulsar, 16, 8)
		stamp(g, pulsar, 57, 8)
		stamp(g, pulsar, 98, 8)
		stamp(g, pulsar, 57, 40)
		sprinkle(g, rng, 1)
	case Collision:
		stamp(g, rPentomino, 40, 24)
		stamp(g, rPentomino, 84, 24)
		stamp(g, rPentomino, 62, 10)
		stamp(g, rPentomino, 62, 44)
	default:
		sprinkle(g, rng, 25)
	}
}

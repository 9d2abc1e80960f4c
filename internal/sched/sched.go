// Package sched drives the perpetual scene loop: seed a scene, then
// render, flush, sleep, step until the scene's generation budget runs out,
// then advance to the next catalogue entry and repeat.
package sched

import (
	"time"

	"oled-life/internal/core"
	"oled-life/internal/display"
	"oled-life/internal/life"
	"oled-life/internal/scene"
)

// Options configures the scheduler loop.
type Options struct {
	// Scenes is the cycle order. Empty means the full catalogue.
	Scenes []scene.Scene
	// FrameInterval is the sleep between generations.
	FrameInterval time.Duration
	// GenerationsPerScene is the step budget before the next scene.
	GenerationsPerScene int
	// ReseedEachScene reseeds the generator from the clock at scene
	// boundaries for visual variety.
	ReseedEachScene bool
	// HaltOnDisplayError makes Run return the first flush error instead
	// of stepping blind and retrying on later frames.
	HaltOnDisplayError bool
}

// Scheduler sequences simulation, rendering, and flushing on one
// goroutine. Nothing here runs concurrently, so grid ownership is handed
// between the engine and the renderer purely by call order.
type Scheduler struct {
	eng       *life.Engine
	rend      *display.Renderer
	transport display.Transport
	rng       *core.Xorshift32
	opts      Options

	idx        int
	sceneSteps int
	afterFrame func()
}

// New builds a scheduler and seeds the first scene.
func New(t display.Transport, rng *core.Xorshift32, opts Options) *Scheduler {
	if len(opts.Scenes) == 0 {
		opts.Scenes = scene.All()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 15
	}
	if opts.GenerationsPerScene <= 0 {
		opts.GenerationsPerScene = 150
	}
	s := &Scheduler{
		eng:       life.New(),
		rend:      display.NewRenderer(),
		transport: t,
		rng:       rng,
		opts:      opts,
	}
	s.applyScene()
	return s
}

// Engine exposes the simulation for status displays.
func (s *Scheduler) Engine() *life.Engine { return s.eng }

// Scene returns the scene currently on screen.
func (s *Scheduler) Scene() scene.Scene { return s.opts.Scenes[s.idx] }

// SetAfterFrame installs a hook invoked after every successful frame.
func (s *Scheduler) SetAfterFrame(f func()) { s.afterFrame = f }

func (s *Scheduler) applyScene() {
	sc := s.opts.Scenes[s.idx]
	s.eng.Reset(func(g *core.BitGrid) { sc.Apply(g, s.rng) })
	s.sceneSteps = 0
}

// AdvanceScene moves to the next catalogue entry, wrapping at the end.
func (s *Scheduler) AdvanceScene() {
	s.idx = (s.idx + 1) % len(s.opts.Scenes)
	if s.opts.ReseedEachScene {
		s.rng.Reseed(core.TimeSeed())
	}
	s.applyScene()
}

// Frame performs one loop iteration minus the sleep: render the front
// grid, flush the dirty region, then step. A flush error skips the step —
// the grids and generator are untouched, so the caller may keep going —
// and leaves the dirty rectangle in place for retransmission.
func (s *Scheduler) Frame() error {
	s.rend.Render(s.eng.Front())
	if err := s.rend.Flush(s.transport); err != nil {
		return err
	}
	s.eng.Step()
	s.sceneSteps++
	if s.sceneSteps >= s.opts.GenerationsPerScene {
		s.AdvanceScene()
	}
	if s.afterFrame != nil {
		s.afterFrame()
	}
	return nil
}

// Run loops forever at the configured cadence. It returns nil when stop is
// closed, or the flush error when HaltOnDisplayError is set.
func (s *Scheduler) Run(stop <-chan struct{}) error {
	for {
		if err := s.Frame(); err != nil && s.opts.HaltOnDisplayError {
			return err
		}
		select {
		case <-stop:
			return nil
		case <-time.After(s.opts.FrameInterval):
		}
	}
}

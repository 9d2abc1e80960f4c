package sched

import (
	"errors"
	"testing"
	"time"

	"oled-life/internal/core"
	"oled-life/internal/scene"
)

type okTransport struct {
	writes int
}

func (t *okTransport) Write(byte, []byte) error {
	t.writes++
	return nil
}

type brokenTransport struct{}

func (brokenTransport) Write(byte, []byte) error { return errors.New("bus stuck") }

func testOptions(scenes ...scene.Scene) Options {
	return Options{
		Scenes:              scenes,
		FrameInterval:       time.Millisecond,
		GenerationsPerScene: 2,
	}
}

func TestFrameStepsGeneration(t *testing.T) {
	tr := &okTransport{}
	s := New(tr, core.NewXorshift32(1), testOptions(scene.Primordial))
	if err := s.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if got := s.Engine().Generation(); got != 1 {
		t.Fatalf("generation = %d, want 1", got)
	}
	if tr.writes == 0 {
		t.Fatal("first frame flushed nothing")
	}
}

func TestSceneCycleAdvancesAndWraps(t *testing.T) {
	s := New(&okTransport{}, core.NewXorshift32(1), testOptions(scene.Primordial, scene.DenseSoup))
	if s.Scene() != scene.Primordial {
		t.Fatalf("initial scene = %s, want %s", s.Scene(), scene.Primordial)
	}

	for i := 0; i < 2; i++ {
		if err := s.Frame(); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}
	if s.Scene() != scene.DenseSoup {
		t.Fatalf("scene after budget = %s, want %s", s.Scene(), scene.DenseSoup)
	}
	if got := s.Engine().Generation(); got != 0 {
		t.Fatalf("generation = %d after scene change, want 0", got)
	}

	for i := 0; i < 2; i++ {
		if err := s.Frame(); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}
	if s.Scene() != scene.Primordial {
		t.Fatalf("scene did not wrap, got %s", s.Scene())
	}
}

func TestDefaultSceneListIsFullCatalogue(t *testing.T) {
	s := New(&okTransport{}, core.NewXorshift32(1), Options{})
	seen := map[scene.Scene]bool{s.Scene(): true}
	for i := 0; i < len(scene.All())-1; i++ {
		s.AdvanceScene()
		seen[s.Scene()] = true
	}
	if len(seen) != len(scene.All()) {
		t.Fatalf("cycle covered %d scenes, want %d", len(seen), len(scene.All()))
	}
}

func TestFlushErrorSkipsStep(t *testing.T) {
	s := New(brokenTransport{}, core.NewXorshift32(1), testOptions(scene.Primordial))
	if err := s.Frame(); err == nil {
		t.Fatal("Frame should surface the flush error")
	}
	if got := s.Engine().Generation(); got != 0 {
		t.Fatalf("generation = %d after failed frame, want 0 (step skipped)", got)
	}
}

func TestRunHaltsOnDisplayError(t *testing.T) {
	opts := testOptions(scene.Primordial)
	opts.HaltOnDisplayError = true
	s := New(brokenTransport{}, core.NewXorshift32(1), opts)
	if err := s.Run(make(chan struct{})); err == nil {
		t.Fatal("Run should return the flush error under the halt policy")
	}
}

func TestRunStops(t *testing.T) {
	stop := make(chan struct{})
	close(stop)
	s := New(&okTransport{}, core.NewXorshift32(1), testOptions(scene.Primordial))
	if err := s.Run(stop); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestAfterFrameHook(t *testing.T) {
	s := New(&okTransport{}, core.NewXorshift32(1), testOptions(scene.Primordial))
	calls := 0
	s.SetAfterFrame(func() { calls++ })
	if err := s.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if calls != 1 {
		t.Fatalf("hook called %d times, want 1", calls)
	}
}

//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"oled-life/internal/core"
	"oled-life/internal/display"
	"oled-life/internal/render"
	"oled-life/internal/sched"
)

const statusHeight = 14

// Game adapts the scheduler to the ebiten.Game interface. The scheduler
// flushes into the panel emulator and the emulator's pixels are blitted
// to the window, so the preview exercises the same wire protocol as the
// hardware path.
type Game struct {
	sched   *sched.Scheduler
	emu     *display.Emulator
	painter *render.PanelPainter
	pacer   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game driving the provided scheduler. emu must be the
// transport the scheduler flushes to.
func New(s *sched.Scheduler, emu *display.Emulator, scale, fps int) *Game {
	return &Game{
		sched:   s,
		emu:     emu,
		painter: render.NewPanelPainter(core.Width, core.Height),
		pacer:   core.NewFixedStep(fps),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the loop at the configured
// generation rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.sched.AdvanceScene()
	}

	if (g.pacer.ShouldStep() && !g.paused) || g.tickOnce {
		g.tickOnce = false
		if err := g.sched.Frame(); err != nil {
			return err
		}
	}
	return nil
}

// Draw blits the emulated panel and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.emu.Pixels(), color.White, color.Black, g.scale)

	eng := g.sched.Engine()
	status := fmt.Sprintf("scene: %s  gen: %d  pop: %d",
		g.sched.Scene(), eng.Generation(), eng.Population())
	if g.paused {
		status += "  [paused]"
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, core.Height*g.scale+statusHeight-3, color.White)
}

// Layout returns the logical screen size: the scaled panel plus the
// status strip.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.Width * g.scale, core.Height*g.scale + statusHeight
}

// Package term shows the emulated panel inside a terminal. Each text cell
// covers two vertically stacked pixels using half-block glyphs, so the
// 128x64 panel needs a 128x33 terminal (one row for status).
package term

import (
	"github.com/gdamore/tcell/v2"

	"oled-life/internal/core"
	"oled-life/internal/display"
)

// Panel is a display.Transport backed by a tcell screen. Writes feed the
// shared command-stream emulator; data writes trigger a redraw.
type Panel struct {
	screen tcell.Screen
	emu    *display.Emulator
	done   chan struct{}
	status string
}

// New initializes the terminal screen and starts the input loop. The
// returned panel must be closed to restore the terminal.
func New() (*Panel, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	p := &Panel{
		screen: screen,
		emu:    display.NewEmulator(),
		done:   make(chan struct{}),
	}
	go p.inputLoop()
	return p, nil
}

// Done is closed when the user quits with q, Esc, or Ctrl-C.
func (p *Panel) Done() <-chan struct{} { return p.done }

// Close restores the terminal.
func (p *Panel) Close() { p.screen.Fini() }

// Write implements display.Transport.
func (p *Panel) Write(ctrl byte, data []byte) error {
	if err := p.emu.Write(ctrl, data); err != nil {
		return err
	}
	if ctrl == display.CtrlData {
		p.draw()
	}
	return nil
}

// SetStatus replaces the status line under the panel area.
func (p *Panel) SetStatus(s string) {
	p.status = s
	p.drawStatus()
	p.screen.Show()
}

func (p *Panel) inputLoop() {
	for {
		ev := p.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				close(p.done)
				return
			}
		case *tcell.EventResize:
			p.screen.Sync()
		case nil:
			return
		}
	}
}

var panelStyle = tcell.StyleDefault.
	Foreground(tcell.ColorWhite).
	Background(tcell.ColorBlack)

func (p *Panel) draw() {
	for ty := 0; ty < core.Height/2; ty++ {
		for x := 0; x < core.Width; x++ {
			top := p.emu.At(x, ty*2)
			bottom := p.emu.At(x, ty*2+1)
			var r rune
			switch {
			case top && bottom:
				r = '█'
			case top:
				r = '▀'
			case bottom:
				r = '▄'
			default:
				r = ' '
			}
			p.screen.SetContent(x, ty, r, nil, panelStyle)
		}
	}
	p.drawStatus()
	p.screen.Show()
}

func (p *Panel) drawStatus() {
	row := core.Height / 2
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for x := 0; x < core.Width; x++ {
		r := ' '
		if x < len(p.status) {
			r = rune(p.status[x])
		}
		p.screen.SetContent(x, row, r, nil, style)
	}
}

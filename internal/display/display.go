// Package display maps live-cell state onto an SSD1306-style page-major
// framebuffer and flushes only the region that changed since the last
// successful transfer.
package display

import (
	"fmt"

	"oled-life/internal/core"
)

// Framebuffer geometry. The controller groups rows into 8-pixel vertical
// pages; a frame byte holds one column slice of a page.
const (
	Pages      = core.Height / 8
	FrameBytes = Pages * core.Width
)

// I2C control bytes and the addressing commands used during a flush.
const (
	CtrlCommand = 0x00
	CtrlData    = 0x40

	cmdSetColumnRange = 0x21
	cmdSetPageRange   = 0x22
)

// Transport is the synchronous write primitive of the display bus. ctrl is
// CtrlCommand or CtrlData; the call blocks for the transfer duration.
type Transport interface {
	Write(ctrl byte, data []byte) error
}

// TransportError reports a failed bus write during a flush.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("display transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Renderer owns the hardware framebuffer and the dirty rectangle. The
// rectangle starts empty (min > max), widens with every pixel transition,
// and resets to empty only after a successful flush.
type Renderer struct {
	frame [FrameBytes]uint8

	minX, maxX int
	minY, maxY int
}

// NewRenderer returns a renderer with a zeroed framebuffer and an empty
// dirty rectangle.
func NewRenderer() *Renderer {
	r := &Renderer{}
	r.resetDirty()
	return r
}

func (r *Renderer) resetDirty() {
	r.minX, r.maxX = core.Width, -1
	r.minY, r.maxY = core.Height, -1
}

// Dirty reports whether any pixel changed since the last successful flush.
func (r *Renderer) Dirty() bool { return r.minX <= r.maxX }

func (r *Renderer) markDirty(x, y int) {
	if x < r.minX {
		r.minX = x
	}
	if x > r.maxX {
		r.maxX = x
	}
	if y < r.minY {
		r.minY = y
	}
	if y > r.maxY {
		r.maxY = y
	}
}

// SetPixel writes one framebuffer pixel, widening the dirty rectangle only
// if the pixel actually transitions. Coordinates must be in panel range.
func (r *Renderer) SetPixel(x, y int, on bool) {
	idx := (y>>3)*core.Width + x
	mask := uint8(1) << (y & 7)
	if (r.frame[idx]&mask != 0) == on {
		return
	}
	if on {
		r.frame[idx] |= mask
	} else {
		r.frame[idx] &^= mask
	}
	r.markDirty(x, y)
}

// Render translates the grid's row-major cells into the page-major
// framebuffer. Pixels that match the framebuffer are left untouched, so
// the dirty rectangle covers exactly the cells that changed.
func (r *Renderer) Render(g *core.BitGrid) {
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			r.SetPixel(x, y, g.Get(x, y))
		}
	}
}

// Flush sends the dirty region to the transport: column window, page
// window, then the covered bytes of each page. An empty rectangle issues
// no writes at all. On failure the rectangle is retained so the region is
// retransmitted by the next flush; on success it resets to empty.
func (r *Renderer) Flush(t Transport) error {
	if !r.Dirty() {
		return nil
	}
	p0, p1 := r.minY>>3, r.maxY>>3
	if err := t.Write(CtrlCommand, []byte{cmdSetColumnRange, byte(r.minX), byte(r.maxX)}); err != nil {
		return &TransportError{Op: "set column range", Err: err}
	}
	if err := t.Write(CtrlCommand, []byte{cmdSetPageRange, byte(p0), byte(p1)}); err != nil {
		return &TransportError{Op: "set page range", Err: err}
	}
	for p := p0; p <= p1; p++ {
		row := r.frame[p*core.Width+r.minX : p*core.Width+r.maxX+1]
		if err := t.Write(CtrlData, row); err != nil {
			return &TransportError{Op: "stream page data", Err: err}
		}
	}
	r.resetDirty()
	return nil
}

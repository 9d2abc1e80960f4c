package display

import (
	"fmt"

	"oled-life/internal/core"
)

// Emulator is an in-process Transport that decodes the controller's
// command stream back into pixels, mimicking horizontal addressing mode:
// data bytes advance through the column window, then wrap to the next page
// of the page window. Both front ends draw from it, and it lets tests
// verify the wire protocol end to end.
type Emulator struct {
	pix [core.Width * core.Height]uint8

	col0, col1   int
	page0, page1 int
	col, page    int

	pendingCmd  byte
	pendingArgs []byte
}

// NewEmulator returns an emulator with the address window spanning the
// full panel, matching the controller's reset state.
func NewEmulator() *Emulator {
	e := &Emulator{}
	e.col1 = core.Width - 1
	e.page1 = Pages - 1
	return e
}

// Write implements Transport.
func (e *Emulator) Write(ctrl byte, data []byte) error {
	switch ctrl {
	case CtrlCommand:
		for _, b := range data {
			e.feedCommand(b)
		}
		return nil
	case CtrlData:
		for _, b := range data {
			e.placeByte(b)
		}
		return nil
	default:
		return fmt.Errorf("emulator: unknown control byte 0x%02x", ctrl)
	}
}

func (e *Emulator) feedCommand(b byte) {
	if e.pendingCmd != 0 {
		e.pendingArgs = append(e.pendingArgs, b)
		if len(e.pendingArgs) < 2 {
			return
		}
		lo, hi := int(e.pendingArgs[0]), int(e.pendingArgs[1])
		switch e.pendingCmd {
		case cmdSetColumnRange:
			e.col0, e.col1 = lo, hi
			e.col = lo
		case cmdSetPageRange:
			e.page0, e.page1 = lo, hi
			e.page = lo
		}
		e.pendingCmd = 0
		e.pendingArgs = e.pendingArgs[:0]
		return
	}
	switch b {
	case cmdSetColumnRange, cmdSetPageRange:
		e.pendingCmd = b
	}
	// Other controller commands (contrast, charge pump, ...) carry no
	// pixel semantics and are ignored.
}

func (e *Emulator) placeByte(b byte) {
	for bit := 0; bit < 8; bit++ {
		y := e.page*8 + bit
		e.pix[y*core.Width+e.col] = b >> bit & 1
	}
	e.col++
	if e.col > e.col1 {
		e.col = e.col0
		e.page++
		if e.page > e.page1 {
			e.page = e.page0
		}
	}
}

// At reports whether the panel pixel at (x, y) is lit.
func (e *Emulator) At(x, y int) bool {
	return e.pix[y*core.Width+x] != 0
}

// Pixels exposes the decoded panel as 0/1 values in row-major order.
func (e *Emulator) Pixels() []uint8 { return e.pix[:] }

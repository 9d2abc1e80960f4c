package display

import (
	"testing"

	"oled-life/internal/core"
)

func TestEmulatorRoundTrip(t *testing.T) {
	g := &core.BitGrid{}
	g.Set(0, 0, true)
	g.Set(127, 63, true)
	g.Set(64, 31, true)

	r := NewRenderer()
	r.Render(g)
	emu := NewEmulator()
	if err := r.Flush(emu); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			if emu.At(x, y) != g.Get(x, y) {
				t.Fatalf("pixel (%d,%d) = %v after flush, want %v", x, y, emu.At(x, y), g.Get(x, y))
			}
		}
	}
}

func TestEmulatorDataWrapsThroughWindow(t *testing.T) {
	emu := NewEmulator()
	// Window: columns 5..6, pages 2..3. Horizontal addressing fills the
	// column span of a page before moving down.
	if err := emu.Write(CtrlCommand, []byte{cmdSetColumnRange, 5, 6}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := emu.Write(CtrlCommand, []byte{cmdSetPageRange, 2, 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := emu.Write(CtrlData, []byte{0x01, 0x01, 0x80, 0x80}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// First two bytes land on page 2 (bit 0 -> y=16).
	if !emu.At(5, 16) || !emu.At(6, 16) {
		t.Fatal("first data bytes missing from page 2")
	}
	// Last two wrap to page 3 (bit 7 -> y=31).
	if !emu.At(5, 31) || !emu.At(6, 31) {
		t.Fatal("wrapped data bytes missing from page 3")
	}
}

func TestEmulatorRejectsUnknownControlByte(t *testing.T) {
	emu := NewEmulator()
	if err := emu.Write(0x99, []byte{0}); err == nil {
		t.Fatal("unknown control byte must be rejected")
	}
}

func TestEmulatorIgnoresNonAddressingCommands(t *testing.T) {
	emu := NewEmulator()
	// An unrelated controller command must not disturb the window.
	if err := emu.Write(CtrlCommand, []byte{0x81}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := emu.Write(CtrlCommand, []byte{cmdSetColumnRange, 2, 2}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := emu.Write(CtrlData, []byte{0x01}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !emu.At(2, 0) {
		t.Fatal("column window command after an ignored command was not honored")
	}
}

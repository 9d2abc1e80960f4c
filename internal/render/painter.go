//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PanelPainter updates a single RGBA image from binary panel pixels.
type PanelPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPanelPainter allocates a painter for a panel of size w*h.
func NewPanelPainter(w, h int) *PanelPainter {
	pp := &PanelPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	pp.img = ebiten.NewImage(w, h)
	return pp
}

// Blit uploads the provided pixels into the painter image and draws it
// scaled onto dst.
func (pp *PanelPainter) Blit(dst *ebiten.Image, pix []uint8, on, off color.Color, scale int) {
	if len(pix) != pp.w*pp.h {
		return
	}
	fillMonoRGBA(pp.buf, pix, on, off)
	pp.img.ReplacePixels(pp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(pp.img, op)
}

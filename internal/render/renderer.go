//go:build ebiten

package render

import (
	"image/color"

	"toruslife/pkg/board"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a w*h RGBA image in sync with binary cell data. After
// the first upload only positions passed to Mark are repainted.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	dirty []board.Coord
	full  bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), full: true}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Invalidate forces a full repaint on the next Blit.
func (gp *GridPainter) Invalidate() {
	gp.full = true
	gp.dirty = gp.dirty[:0]
}

// Mark queues positions for repainting on the next Blit.
func (gp *GridPainter) Mark(coords []board.Coord) {
	if gp.full {
		return
	}
	gp.dirty = append(gp.dirty, coords...)
}

// Blit uploads pending changes from cells and draws the image scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	switch {
	case gp.full:
		fillBinaryRGBA(gp.buf, cells, on, off)
		gp.img.WritePixels(gp.buf)
		gp.full = false
	case len(gp.dirty) > 0:
		patchBinaryRGBA(gp.buf, gp.w, cells, gp.dirty, on, off)
		gp.img.WritePixels(gp.buf)
	}
	gp.dirty = gp.dirty[:0]

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

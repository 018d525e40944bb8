package render

import (
	"image/color"

	"toruslife/pkg/board"
)

type rgba [4]byte

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func (p rgba) put(buf []byte, i int) {
	copy(buf[i*4:i*4+4], p[:])
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	pOn, pOff := toRGBA(on), toRGBA(off)
	for i, c := range cells {
		if c != 0 {
			pOn.put(buf, i)
			continue
		}
		pOff.put(buf, i)
	}
}

// patchBinaryRGBA repaints only the listed positions of a w-wide grid.
func patchBinaryRGBA(buf []byte, w int, cells []uint8, coords []board.Coord, on, off color.Color) {
	pOn, pOff := toRGBA(on), toRGBA(off)
	for _, c := range coords {
		i := c.Row*w + c.Column
		if cells[i] != 0 {
			pOn.put(buf, i)
			continue
		}
		pOff.put(buf, i)
	}
}

package render

import (
	"bytes"
	"image/color"
	"testing"

	"toruslife/pkg/board"
)

var (
	testOn  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	testOff = color.RGBA{R: 248, G: 248, B: 255, A: 255}
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 0, 1}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, testOn, testOff)
	want := []byte{
		0, 128, 0, 255,
		248, 248, 255, 255,
		248, 248, 255, 255,
		0, 128, 0, 255,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf=%v, expected %v", buf, want)
	}
}

func TestPatchMatchesFullFill(t *testing.T) {
	const w, h = 3, 2
	cells := []uint8{0, 1, 0, 0, 0, 0}
	patched := make([]byte, 4*w*h)
	fillBinaryRGBA(patched, cells, testOn, testOff)

	cells[1], cells[5] = 0, 1
	patchBinaryRGBA(patched, w, cells, []board.Coord{{Column: 1, Row: 0}, {Column: 2, Row: 1}}, testOn, testOff)

	full := make([]byte, 4*w*h)
	fillBinaryRGBA(full, cells, testOn, testOff)
	if !bytes.Equal(patched, full) {
		t.Fatalf("patched=%v, full repaint=%v", patched, full)
	}
}

//go:build ebiten

package ui

import (
	"image/color"

	"toruslife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay highlights the cells flipped by the most recent generation.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay on key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw outlines births and deaths from the last step.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	reporter, ok := o.sim.(core.ChangeReporter)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	born := color.RGBA{R: 240, G: 200, B: 40, A: 160}
	died := color.RGBA{R: 200, G: 40, B: 40, A: 160}
	cells := o.sim.Cells()
	w := o.sim.Size().W
	for _, c := range reporter.Toggled() {
		tint := died
		if cells[c.Row*w+c.Column] != 0 {
			tint = born
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(scale)/2, float64(scale)/2)
		op.GeoM.Translate(float64(c.Column*scale)+float64(scale)/4, float64(c.Row*scale)+float64(scale)/4)
		op.ColorScale.ScaleWithColor(tint)
		screen.DrawImage(o.pixel, op)
	}
}

//go:build ebiten

package ui

import (
	"image/color"

	"toruslife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim   core.Sim
	width int
	lines []string
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the cached status lines from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.lines = statusLines(h.sim)
}

// Draw paints the panel starting at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	bg := color.RGBA{R: 24, G: 26, B: 32, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width), float64(screen.Bounds().Dy()))
	op.GeoM.Translate(float64(offsetX), 0)
	op.ColorScale.ScaleWithColor(bg)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	x := offsetX + panelPadding
	y := panelPadding + headerBaseline
	for i, line := range h.lines {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			fg = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(screen, line, face, x, y, fg)
		y += lineHeight
	}
	y += lineHeight / 2
	for _, line := range helpLines {
		text.Draw(screen, line, face, x, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
	}
}

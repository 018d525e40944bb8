//go:build ebiten

package app

import (
	"image/color"
	"time"

	"toruslife/internal/render"
	"toruslife/internal/ui"
	"toruslife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. The simulation
// only advances on a click or key press; there is no tick-driven stepping.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
	seed  int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, ui.PanelWidth),
		onColor:  color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff},
		offColor: color.RGBA{R: 0xf8, G: 0xf8, B: 0xff, A: 0xff},
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.painter.Invalidate()
}

// Advance steps the simulation by one generation.
func (g *Game) Advance() {
	g.sim.Step()
	if reporter, ok := g.sim.(core.ChangeReporter); ok {
		g.painter.Mark(reporter.Toggled())
		return
	}
	g.painter.Invalidate()
}

// Update handles per-frame input and advances the simulation on request.
func (g *Game) Update() error {
	in := readInput()
	if in.Quit {
		return ebiten.Termination
	}
	if in.Reset {
		g.Reset(g.seed)
	}
	if in.Reseed {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update()

	if in.shouldAdvance() {
		g.Advance()
	}
	return nil
}

func readInput() frameInput {
	step := inpututil.IsKeyJustPressed(ebiten.KeyN) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	return frameInput{
		Quit:   inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Reset:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Reseed: inpututil.IsKeyJustPressed(ebiten.KeyS),
		Step:   step,
		Click:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + ui.PanelWidth, max(s.H*g.scale, ui.PanelMinHeight)
}

// Package term drives a Life simulation on a character terminal. Each cell
// occupies two columns so the board keeps a roughly square aspect.
package term

import (
	"fmt"

	"toruslife/pkg/board"
	"toruslife/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const cellWidth = 2

// Driver owns a screen and the simulation it displays. It is driven from a
// single goroutine by Run.
type Driver struct {
	screen tcell.Screen
	sim    core.Sim
	seed   int64

	buttons tcell.ButtonMask

	on, off, status tcell.Style
}

// New returns a Driver drawing sim on screen. The screen must already be
// initialised.
func New(screen tcell.Screen, sim core.Sim, seed int64) *Driver {
	return &Driver{
		screen: screen,
		sim:    sim,
		seed:   seed,
		on:     tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack),
		off:    tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		status: tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
}

// Run processes events until the user quits or the screen is finalised.
func (d *Driver) Run() {
	d.screen.EnableMouse()
	d.Redraw()
	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			d.screen.Sync()
			d.Redraw()
		case *tcell.EventMouse:
			pressed := ev.Buttons() &^ d.buttons
			d.buttons = ev.Buttons()
			if pressed&tcell.Button1 != 0 {
				d.Advance()
			}
		case *tcell.EventKey:
			if !d.handleKey(ev) {
				return
			}
		}
	}
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		d.Advance()
		return true
	case tcell.KeyRune:
	default:
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'n', ' ':
		d.Advance()
	case 'r':
		d.sim.Reset(d.seed)
		d.Redraw()
	}
	return true
}

// Advance steps the simulation once and repaints what changed.
func (d *Driver) Advance() {
	d.sim.Step()
	reporter, ok := d.sim.(core.ChangeReporter)
	if !ok {
		d.Redraw()
		return
	}
	w := d.sim.Size().W
	cells := d.sim.Cells()
	for _, c := range reporter.Toggled() {
		d.drawCell(c, cells[c.Row*w+c.Column] != 0)
	}
	d.drawStatus()
	d.screen.Show()
}

// Redraw repaints the whole board and status line.
func (d *Driver) Redraw() {
	d.screen.Clear()
	size := d.sim.Size()
	cells := d.sim.Cells()
	for row := 0; row < size.H; row++ {
		for column := 0; column < size.W; column++ {
			d.drawCell(board.Coord{Column: column, Row: row}, cells[row*size.W+column] != 0)
		}
	}
	d.drawStatus()
	d.screen.Show()
}

func (d *Driver) drawCell(c board.Coord, alive bool) {
	style := d.off
	if alive {
		style = d.on
	}
	for i := 0; i < cellWidth; i++ {
		d.screen.SetContent(c.Column*cellWidth+i, c.Row, ' ', nil, style)
	}
}

func (d *Driver) drawStatus() {
	row := d.sim.Size().H
	width, _ := d.screen.Size()
	line := d.statusLine()
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		d.screen.SetContent(x, row, r, nil, d.status)
	}
}

func (d *Driver) statusLine() string {
	gen := 0
	if g, ok := d.sim.(core.GenerationReporter); ok {
		gen = g.Generation()
	}
	return fmt.Sprintf("%s gen %d  [enter/click] step  [r] reset  [q] quit", d.sim.Name(), gen)
}

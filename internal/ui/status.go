package ui

import (
	"fmt"

	"toruslife/pkg/core"
)

const (
	// PanelWidth is the width in pixels of the HUD next to the board.
	PanelWidth = 180
	// PanelMinHeight keeps every status line visible on short boards.
	PanelMinHeight = panelPadding*2 + headerBaseline + lineHeight*8

	panelPadding   = 12
	lineHeight     = 18
	headerBaseline = 14
)

var helpLines = []string{
	"click/N  next generation",
	"R        reset",
	"S        reseed",
	"1        show changes",
	"Q        quit",
}

// statusLines summarises the sim state for the HUD.
func statusLines(sim core.Sim) []string {
	size := sim.Size()
	lines := []string{fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)}
	if g, ok := sim.(core.GenerationReporter); ok {
		lines = append(lines, fmt.Sprintf("generation %d", g.Generation()))
	}
	if b, ok := sim.(core.BoardReporter); ok {
		lines = append(lines, fmt.Sprintf("population %d", b.Board().Population()))
	}
	if r, ok := sim.(core.ChangeReporter); ok {
		lines = append(lines, fmt.Sprintf("changed    %d", len(r.Toggled())))
	}
	return lines
}

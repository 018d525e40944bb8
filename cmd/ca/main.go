//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"toruslife/internal/app"
	"toruslife/pkg/core"
	_ "toruslife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.List {
		app.PrintCatalog(os.Stdout)
		return
	}

	sim, err := core.Lookup(cfg.Sim, cfg.Options())
	if err != nil {
		log.Fatalf("create sim: %v", err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("toruslife — " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

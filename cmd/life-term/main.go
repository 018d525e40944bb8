package main

import (
	"flag"
	"io"
	"log"
	"os"

	"toruslife/internal/app"
	"toruslife/internal/term"
	"toruslife/pkg/core"
	_ "toruslife/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append log output to this file")
	flag.Parse()

	if cfg.List {
		app.PrintCatalog(os.Stdout)
		return
	}

	errLog := log.New(os.Stderr, "life-term: ", 0)
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			errLog.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	sim, err := core.Lookup(cfg.Sim, cfg.Options())
	if err != nil {
		errLog.Fatalf("create sim: %v", err)
	}
	sim.Reset(cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		errLog.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		errLog.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()

	size := sim.Size()
	log.Printf("running %s %dx%d seed=%d pattern=%s", sim.Name(), size.W, size.H, cfg.Seed, cfg.Pattern)
	term.New(screen, sim, cfg.Seed).Run()
	if g, ok := sim.(core.GenerationReporter); ok {
		log.Printf("quit after %d generations", g.Generation())
	}
}

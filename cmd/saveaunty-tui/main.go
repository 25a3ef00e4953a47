package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/saveaunty/internal/app"
	"chosenoffset.com/saveaunty/internal/render/terminal"
	"chosenoffset.com/saveaunty/internal/simulation"
)

func main() {
	logFile := flag.String("log", "saveaunty-tui.log", "log file (the terminal is used for drawing)")
	opts, err := app.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read configuration: %v\n", err)
		os.Exit(1)
	}

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.SetOutput(f)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	cols, rows := screen.Size()
	canvas := terminal.NewCanvas(simulation.CanvasWidth, simulation.CanvasHeight, cols, rows)
	renderer := terminal.NewRenderer(canvas)
	inputMgr := terminal.NewInput(canvas)
	engine := terminal.NewEngine(screen, renderer, inputMgr)
	engine.SetWindowTitle("Save the Aunty")

	gameManager, err := app.NewManager(opts, renderer, inputMgr)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to set up game: %v\n", err)
		os.Exit(1)
	}

	err = engine.RunGame(gameManager)
	screen.Fini()
	app.Exit(err)
}

package main

import (
	"flag"
	"log"
	"os"

	"chosenoffset.com/saveaunty/internal/app"
	ebitenrender "chosenoffset.com/saveaunty/internal/render/ebiten"
	"chosenoffset.com/saveaunty/internal/simulation"
)

func main() {
	opts, err := app.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	gameManager, err := app.NewManager(opts, renderer, inputMgr)
	if err != nil {
		log.Fatalf("Failed to set up game: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(simulation.CanvasWidth, simulation.CanvasHeight)
	engine.SetWindowTitle("Save the Aunty")
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	app.Exit(engine.RunGame(gameManager))
}

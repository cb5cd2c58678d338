package main

import (
	"flag"
	"log"

	"voidrunner/pkg/game/config"
	"voidrunner/pkg/game/host"
	"voidrunner/pkg/game/renderer"
	ebitenrenderer "voidrunner/pkg/game/renderer/ebiten"
	tuirenderer "voidrunner/pkg/game/renderer/tui"
)

func main() {
	rendererFlag := flag.String("renderer", "ebiten", "Rendering backend: ebiten or tui")
	configFlag := flag.String("config", config.DefaultPath, "Path to the settings file")
	flag.Parse()

	h := host.New(*configFlag)
	defer h.Shutdown()

	var r renderer.Renderer
	switch *rendererFlag {
	case "ebiten":
		r = ebitenrenderer.New()
	case "tui":
		r = tuirenderer.New()
	default:
		log.Fatalf("Unknown renderer: %s (use ebiten or tui)", *rendererFlag)
	}

	if err := r.Init(); err != nil {
		log.Fatalf("Cannot initialize %s renderer: %v", *rendererFlag, err)
	}
	if err := r.Run(h); err != nil {
		log.Fatalf("Renderer exited with error: %v", err)
	}
}

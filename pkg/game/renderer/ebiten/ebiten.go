package ebiten

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"voidrunner/pkg/game/host"
)

// Init parses the embedded monospace font used by the overlay.
func (r *Renderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	r.fontSource = src
	return nil
}

// Run opens the window and enters Ebiten's game loop. Returns when the
// window is closed or Escape quits.
func (r *Renderer) Run(h *host.Host) error {
	r.host = h

	ebiten.SetWindowSize(r.windowWidth, r.windowHeight)
	ebiten.SetWindowTitle("Voidrunner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Opening window (%dx%d)", r.windowWidth, r.windowHeight)
	return ebiten.RunGame(r)
}

// Update handles input (Ebiten interface). The console swallows all
// input while open.
func (r *Renderer) Update() error {
	// Backtick toggles the console
	if inpututil.IsKeyJustPressed(ebiten.KeyGraveAccent) {
		r.ToggleConsole()
	}

	if r.IsConsoleActive() {
		r.handleConsoleInput()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	return nil
}

// Draw renders the frame (Ebiten interface).
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	r.drawConsole(screen)
}

// Layout reports the logical screen size (Ebiten interface).
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// getUIFontFace returns the monospace face used for console text.
func (r *Renderer) getUIFontFace() *text.GoTextFace {
	return &text.GoTextFace{
		Source: r.fontSource,
		Size:   baseFontSize,
	}
}

// easeInOut is a cubic easing curve for the console slide animation.
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

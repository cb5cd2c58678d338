// Package ebiten provides the Ebiten-based graphical frontend: a
// drop-down console overlay fed from Ebiten's per-frame input state.
package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"voidrunner/pkg/game/host"
)

// Window and console layout defaults
const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
	baseFontSize        = 14.0

	// consoleAnimMillis is the slide open/close duration
	consoleAnimMillis = 200

	// consoleShare is the fraction of the screen the console covers
	consoleShare = 0.4
)

// Overlay colors
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}
	colorConsoleText   = color.RGBA{200, 200, 200, 255}
	colorConsoleInput  = color.RGBA{255, 255, 255, 255}
	colorConsoleBorder = color.RGBA{100, 100, 150, 255}
)

// Renderer is the Ebiten frontend. It implements both ebiten.Game and
// the renderer contract. Console state lives in the host; only the
// overlay presentation (animation, scroll position) lives here.
type Renderer struct {
	host *host.Host

	consoleMutex         sync.RWMutex
	consoleActive        bool
	consoleAnimating     bool
	consoleAnimStartTime int64
	consoleAnimProgress  float64
	consoleScrollOffset  int

	fontSource *text.GoTextFaceSource

	windowWidth  int
	windowHeight int
}

// New creates an Ebiten frontend with default window dimensions.
func New() *Renderer {
	return &Renderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
	}
}

// Package renderer defines the contract for console frontends.
// Implementations include an Ebiten overlay and a raw-terminal TUI;
// the console core never depends on either.
package renderer

import (
	"voidrunner/pkg/game/host"
)

// Renderer drives a console frontend. Run blocks until the frontend
// exits (window closed, Ctrl+C) and owns the host's console for that
// duration.
type Renderer interface {
	// Init prepares fonts, terminal state or window settings.
	Init() error

	// Run enters the frontend's event loop.
	Run(h *host.Host) error
}

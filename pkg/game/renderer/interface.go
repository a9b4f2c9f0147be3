package renderer

import (
	"bitsycart/pkg/engine/dialog"
	"bitsycart/pkg/game/state"
)

// Renderer defines the interface for game hosts.
// Implementations include the Ebiten window and the terminal preview.
type Renderer interface {
	// Metrics returns the font cell the host draws dialog text with.
	Metrics() dialog.Metrics

	// Config returns the dialog layout for the host's screen.
	Config() dialog.Config

	// Run drives g one update and one draw per frame until the player quits.
	Run(g *state.Game) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Options returns game options matching the current renderer. The caller
// fills in the logger.
func Options() state.Options {
	if Current == nil {
		return state.Options{Metrics: dialog.Metrics{CharWidth: 1, CharHeight: 1}, Config: dialog.DefaultConfig()}
	}
	return state.Options{Metrics: Current.Metrics(), Config: Current.Config()}
}

package renderer

import (
	"riftwalker/pkg/game/state"
)

// Renderer defines the interface for world viewing backends
// Implementations include TUI (terminal) and Ebiten.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Run shows the session and handles input until the user quits
	Run(s *state.Session) error

	// Name returns a short identifier used on the command line
	Name() string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Run runs the current renderer against a session
func Run(s *state.Session) error {
	if Current == nil {
		return nil
	}
	return Current.Run(s)
}

package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/yarpgp/internal/engine/character"
)

// Bindings maps scancodes to movement intents. Each intent accepts any of
// its keys.
type Bindings struct {
	Up    []sdl.Scancode
	Down  []sdl.Scancode
	Left  []sdl.Scancode
	Right []sdl.Scancode
	Run   []sdl.Scancode
	Quit  sdl.Scancode

	// Developer keys, reported as presses
	Screenshot   sdl.Scancode
	ToggleGrid   sdl.Scancode
	ToggleBounds sdl.Scancode
}

// DefaultBindings uses the arrow keys and WASD, Shift to run, Escape to quit.
// F12 saves a screenshot; F2 and F3 toggle the grid and bounds overlays.
func DefaultBindings() Bindings {
	return Bindings{
		Up:    []sdl.Scancode{sdl.SCANCODE_UP, sdl.SCANCODE_W},
		Down:  []sdl.Scancode{sdl.SCANCODE_DOWN, sdl.SCANCODE_S},
		Left:  []sdl.Scancode{sdl.SCANCODE_LEFT, sdl.SCANCODE_A},
		Right: []sdl.Scancode{sdl.SCANCODE_RIGHT, sdl.SCANCODE_D},
		Run:   []sdl.Scancode{sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT},
		Quit:  sdl.SCANCODE_ESCAPE,

		Screenshot:   sdl.SCANCODE_F12,
		ToggleGrid:   sdl.SCANCODE_F2,
		ToggleBounds: sdl.SCANCODE_F3,
	}
}

// Resolve reads intents through held. Opposing keys are both reported;
// character.Resolve settles the conflict.
func (b Bindings) Resolve(held func(sdl.Scancode) bool) (character.Intents, bool) {
	down := func(keys []sdl.Scancode) bool {
		for _, k := range keys {
			if held(k) {
				return true
			}
		}
		return false
	}

	return character.Intents{
		Up:    down(b.Up),
		Down:  down(b.Down),
		Left:  down(b.Left),
		Right: down(b.Right),
	}, down(b.Run)
}

package view

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/constants"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/input"
)

// translate maps an SDL keyboard or controller event to a button event.
// Keyboard auto-repeat is dropped; held directions repeat through the focus ring.
func translate(event sdl.Event) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return input.Event{}, false
		}
		vb := keyButton(int(e.Keysym.Sym))
		if vb == constants.VirtualButtonUnassigned {
			return input.Event{}, false
		}
		return input.Event{Button: vb, Pressed: e.State == sdl.PRESSED}, true

	case *sdl.ControllerButtonEvent:
		vb := controllerButton(int(e.Button))
		if vb == constants.VirtualButtonUnassigned {
			return input.Event{}, false
		}
		return input.Event{Button: vb, Pressed: e.State == sdl.PRESSED}, true
	}
	return input.Event{}, false
}

func keyButton(sym int) constants.VirtualButton {
	switch sym {
	case int(sdl.K_UP):
		return constants.VirtualButtonUp
	case int(sdl.K_DOWN):
		return constants.VirtualButtonDown
	case int(sdl.K_LEFT):
		return constants.VirtualButtonLeft
	case int(sdl.K_RIGHT):
		return constants.VirtualButtonRight
	case int(sdl.K_RETURN), int(sdl.K_SPACE), int(sdl.K_a):
		return constants.VirtualButtonA
	case int(sdl.K_ESCAPE), int(sdl.K_BACKSPACE), int(sdl.K_b):
		return constants.VirtualButtonB
	case int(sdl.K_h):
		return constants.VirtualButtonStart
	case int(sdl.K_m):
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

func controllerButton(button int) constants.VirtualButton {
	switch button {
	case int(sdl.CONTROLLER_BUTTON_DPAD_UP):
		return constants.VirtualButtonUp
	case int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):
		return constants.VirtualButtonDown
	case int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):
		return constants.VirtualButtonLeft
	case int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):
		return constants.VirtualButtonRight
	case int(sdl.CONTROLLER_BUTTON_A):
		return constants.VirtualButtonA
	case int(sdl.CONTROLLER_BUTTON_B):
		return constants.VirtualButtonB
	case int(sdl.CONTROLLER_BUTTON_START):
		return constants.VirtualButtonStart
	case int(sdl.CONTROLLER_BUTTON_GUIDE):
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

// Package constants holds the values shared by the waypoint packages:
// environment variables, virtual buttons and layout defaults.
package constants

import "os"

// Environment variables read at startup.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"   // "DEV" opens a decorated window at a fixed position
	WindowWidthEnvVar  = "WINDOW_WIDTH"  // Window width override in dev mode
	WindowHeightEnvVar = "WINDOW_HEIGHT" // Window height override in dev mode
	ConfigPathEnvVar   = "WAYPOINT_CONFIG"
	InputDeviceEnvVar  = "WAYPOINT_INPUT_DEVICE" // evdev device to read buttons from
)

// Development is the EnvironmentEnvVar value that enables dev mode.
const Development = "DEV"

// IsDevMode reports whether EnvironmentEnvVar is set to Development.
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton is a hardware-independent button. Keyboard keys, controller
// buttons and evdev codes are all mapped onto these.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA // press the focused link
	VirtualButtonB // go back
	VirtualButtonStart
	VirtualButtonMenu
)

var buttonNames = [...]string{"Unassigned", "Up", "Down", "Left", "Right", "A", "B", "Start", "Menu"}

func (vb VirtualButton) String() string {
	if vb < 0 || int(vb) >= len(buttonNames) {
		return "Unknown"
	}
	return buttonNames[vb]
}

// TextAlign is horizontal alignment of a link within the page.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

const (
	DefaultLinkSpacing int32 = 12 // Vertical gap between stacked links
	DefaultFontSize          = 28
)

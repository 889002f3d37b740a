// Package cannoli provides a link theme matching the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal/display"
)

// DefaultFontPath is where Cannoli installs its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// Theme returns a theme with Cannoli's default colors and the specified font.
func Theme(fontPath string) display.Theme {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}
	return display.Theme{
		LinkColor:        display.HexToColor(0xFFFFFF),
		FocusColor:       display.HexToColor(0x008080),
		FocusedTextColor: display.HexToColor(0x000000),
		DisabledColor:    display.HexToColor(0x7F7F7F),
		BackgroundColor:  display.HexToColor(0x000000),
		HintColor:        display.HexToColor(0xFFFFFF),
		FontPath:         fontPath,
	}
}

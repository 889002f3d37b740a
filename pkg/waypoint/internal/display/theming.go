package display

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines how links are drawn.
type Theme struct {
	LinkColor           sdl.Color // Link text
	FocusColor          sdl.Color // Background pill behind the focused link
	FocusedTextColor    sdl.Color // Link text while focused
	DisabledColor       sdl.Color // Text of links whose pressable is disabled
	BackgroundColor     sdl.Color // Screen background color
	HintColor           sdl.Color // Pathname and status text
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Path to the background image
}

var currentTheme = DefaultTheme("")

// DefaultTheme returns the built-in light theme using the font at fontPath.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		LinkColor:        HexToColor(0x1A5FB4),
		FocusColor:       HexToColor(0x1A5FB4),
		FocusedTextColor: HexToColor(0xFFFFFF),
		DisabledColor:    HexToColor(0x9A9996),
		BackgroundColor:  HexToColor(0xFAFAFA),
		HintColor:        HexToColor(0x5E5C64),
		FontPath:         fontPath,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}

// WithAccent returns t with its link and focus colors set to hex (0xRRGGBB).
func (t Theme) WithAccent(hex uint32) Theme {
	t.LinkColor = HexToColor(hex)
	t.FocusColor = HexToColor(hex)
	return t
}

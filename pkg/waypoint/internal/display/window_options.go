package display

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions are the window traits read from the [window] config section.
// The zero value opens a shown, fixed-size, decorated window.
type WindowOptions struct {
	Borderless bool
	Resizable  bool
	Fullscreen bool // desktop resolution, no mode switch
	Hidden     bool
}

// flags returns the SDL window creation flags for o.
func (o WindowOptions) flags() uint32 {
	set := []struct {
		on   bool
		flag uint32
	}{
		{!o.Hidden, sdl.WINDOW_SHOWN},
		{o.Resizable, sdl.WINDOW_RESIZABLE},
		{o.Borderless, sdl.WINDOW_BORDERLESS},
		{o.Fullscreen, sdl.WINDOW_FULLSCREEN_DESKTOP},
	}

	var out uint32
	for _, s := range set {
		if s.on {
			out |= s.flag
		}
	}
	return out
}

// Package display owns the SDL window, fonts and theme that links are drawn with.
package display

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Display is an initialized SDL window with its font.
type Display struct {
	Window *Window
	Font   *ttf.Font
	Labels *TextureCache
}

// Open initializes SDL, opens the window and loads the theme font at fontSize.
func Open(title string, width, height int32, winOpts WindowOptions, fontSize int) (*Display, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("ttf init: %w", err)
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	window, err := newWindow(title, width, height, winOpts)
	if err != nil {
		quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	font, err := ttf.OpenFont(GetTheme().FontPath, fontSize)
	if err != nil {
		window.destroy()
		quit()
		return nil, fmt.Errorf("open font %q: %w", GetTheme().FontPath, err)
	}

	openControllers()

	return &Display{
		Window: window,
		Font:   font,
		Labels: NewTextureCache(),
	}, nil
}

// Close releases all SDL resources.
func (d *Display) Close() {
	d.Labels.Destroy()
	d.Font.Close()
	d.Window.destroy()
	closeControllers()
	quit()
}

var controllers []*sdl.GameController

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			if c := sdl.GameControllerOpen(i); c != nil {
				controllers = append(controllers, c)
			}
		}
	}
}

func closeControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}

func quit() {
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}

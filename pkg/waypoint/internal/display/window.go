package display

import (
	"os"
	"strconv"
	"time"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/constants"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal"
)

// Window wraps SDL window and renderer with the state links are drawn with.
type Window struct {
	Window      *sdl.Window
	Renderer    *sdl.Renderer
	Title       string
	Background  *sdl.Texture
	hasVSync    bool
	lastPresent time.Time
}

const frameBudget = time.Second / 60

func devSize(width, height int32) (int32, int32) {
	if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			width = int32(n)
		} else {
			internal.GetNavLogger().Warn("Invalid WINDOW_WIDTH; using configured width", "value", v, "error", err)
		}
	}

	if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			height = int32(n)
		} else {
			internal.GetNavLogger().Warn("Invalid WINDOW_HEIGHT; using configured height", "value", v, "error", err)
		}
	}
	return width, height
}

func newWindow(title string, width, height int32, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width, height = devSize(width, height)
	} else if width == 0 || height == 0 {
		if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
			width, height = mode.W, mode.H
		} else {
			internal.GetNavLogger().Error("Failed to get display mode", "error", err)
		}
	}

	internal.GetNavLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.flags())
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
	win.loadBackground()

	return win, nil
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		internal.GetNavLogger().Warn("Failed to load background image", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) destroy() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

// Size is the window's drawable size in pixels.
func (window *Window) Size() (int32, int32) {
	return window.Window.GetSize()
}

// Clear fills the frame with the theme background, then the background image if any.
func (window *Window) Clear() {
	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	window.Renderer.Clear()

	if window.Background != nil {
		w, h := window.Size()
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{W: w, H: h})
	}
}

// Present shows the frame. Without vsync it sleeps out the rest of the
// frame budget so the UI loop does not spin.
func (window *Window) Present() {
	window.Renderer.Present()
	if window.hasVSync {
		return
	}

	if wait := frameBudget - time.Since(window.lastPresent); wait > 0 {
		time.Sleep(wait)
	}
	window.lastPresent = time.Now()
}

package view

import (
	"fmt"

	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal/display"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/platform/cannoli"
)

// Settings describes the window a Screen opens.
type Settings struct {
	Title      string
	Width      int32 // 0 uses the display size
	Height     int32
	Borderless bool
	Resizable  bool
	Theme      string // "default" or "cannoli"
	Accent     uint32 // 0xRRGGBB; 0 keeps the theme's colors
	FontPath   string
	FontSize   int
}

func themeFor(settings Settings) (display.Theme, error) {
	var theme display.Theme
	switch settings.Theme {
	case "", "default":
		theme = display.DefaultTheme(settings.FontPath)
	case "cannoli":
		theme = cannoli.Theme(settings.FontPath)
	default:
		return display.Theme{}, fmt.Errorf("view: unknown theme %q", settings.Theme)
	}

	if settings.Accent != 0 {
		theme = theme.WithAccent(settings.Accent)
	}
	return theme, nil
}

// Open initializes SDL, opens the window described by settings and returns a
// Screen that owns it. Close the screen to release the window.
func Open(settings Settings, opts Options) (*Screen, error) {
	theme, err := themeFor(settings)
	if err != nil {
		return nil, err
	}
	if theme.FontPath == "" {
		return nil, fmt.Errorf("view: no font configured for theme %q; set window.font_path", settings.Theme)
	}
	display.SetTheme(theme)

	if opts.FontSize == 0 {
		opts.FontSize = settings.FontSize
	}
	if opts.FontSize == 0 {
		opts.FontSize = defaultFontSize
	}

	d, err := display.Open(settings.Title, settings.Width, settings.Height, display.WindowOptions{
		Borderless: settings.Borderless,
		Resizable:  settings.Resizable,
	}, opts.FontSize)
	if err != nil {
		return nil, err
	}

	s := New(d, opts)
	s.owned = true
	return s, nil
}

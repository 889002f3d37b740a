// Package view draws rendered links with SDL and turns keyboard, controller
// and evdev input into link presses.
//
// A Screen shows one page at a time. Show blocks until a link is pressed,
// the user backs out, or the window is closed, and reports which:
//
//	screen, err := view.Open(settings, view.Options{Localizer: translator})
//	outcome, err := screen.Show(ctx, view.Page{Title: "Home", Links: links})
package view

import (
	"context"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/constants"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/input"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal/display"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/link"
)

// Localizer resolves Localized link content.
type Localizer interface {
	Localize(id string, data map[string]any) string
}

// Outcome is why Show returned.
type Outcome int

const (
	OutcomePressed Outcome = iota // A link was pressed and its navigation succeeded
	OutcomeBack                   // B was pressed
	OutcomeMenu                   // Start or Menu was pressed
	OutcomeQuit                   // The window was closed
)

func (o Outcome) String() string {
	switch o {
	case OutcomePressed:
		return "pressed"
	case OutcomeBack:
		return "back"
	case OutcomeMenu:
		return "menu"
	case OutcomeQuit:
		return "quit"
	}
	return "unknown"
}

// Page is what one Show call draws.
type Page struct {
	Title string
	Path  string // Shown as a hint at the bottom of the window
	Links []*link.Pressable
}

type Options struct {
	Localizer Localizer          // Resolves Localized nodes; nil shows message IDs
	Events    <-chan input.Event // Extra button source, e.g. an evdev Reader
	Margin    int32              // Window padding; 0 uses 24
	Spacing   int32              // Gap between links; 0 uses DefaultLinkSpacing
	FontSize  int                // Size the display font was opened at
}

// Screen draws pages onto a display.
type Screen struct {
	display   *display.Display
	localizer Localizer
	events    <-chan input.Event
	padding   internal.Padding
	spacing   int32
	fontSize  int
	fonts     map[int]*ttf.Font
	focus     *input.Focus
	path      string
	status    string
	owned     bool
	logger    *slog.Logger
}

const defaultFontSize = constants.DefaultFontSize

var focusPadding = internal.SymmetricPadding(4, 8)

func New(d *display.Display, opts Options) *Screen {
	margin := opts.Margin
	if margin == 0 {
		margin = 24
	}
	spacing := opts.Spacing
	if spacing == 0 {
		spacing = constants.DefaultLinkSpacing
	}
	fontSize := opts.FontSize
	if fontSize == 0 {
		fontSize = defaultFontSize
	}

	return &Screen{
		display:   d,
		localizer: opts.Localizer,
		events:    opts.Events,
		padding:   internal.UniformPadding(margin),
		spacing:   spacing,
		fontSize:  fontSize,
		fonts:     make(map[int]*ttf.Font),
		focus:     input.NewFocus(),
		logger:    internal.GetNavLogger(),
	}
}

// Close releases fonts opened for non-default sizes, and the display too
// when the screen was created by Open.
func (s *Screen) Close() {
	for _, f := range s.fonts {
		if f != s.display.Font {
			f.Close()
		}
	}
	s.fonts = make(map[int]*ttf.Font)

	if s.owned {
		s.display.Close()
	}
}

// Show draws page until something happens. A failed press is logged and
// shown in the status line; the page stays up. The only error is ctx's.
func (s *Screen) Show(ctx context.Context, page Page) (Outcome, error) {
	if page.Path != s.path {
		s.focus.Reset()
		s.status = ""
		s.path = page.Path
	}
	s.focus.SetLinks(page.Links)

	for {
		if err := ctx.Err(); err != nil {
			return OutcomeQuit, err
		}

		if event := sdl.WaitEventTimeout(16); event != nil {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return OutcomeQuit, nil
			}
			if ev, ok := translate(event); ok {
				if outcome, done := s.handle(ev); done {
					return outcome, nil
				}
			}
		}

		if outcome, done := s.drain(); done {
			return outcome, nil
		}

		s.focus.Tick()
		s.render(page)
	}
}

func (s *Screen) drain() (Outcome, bool) {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return 0, false
			}
			if outcome, done := s.handle(ev); done {
				return outcome, true
			}
		default:
			return 0, false
		}
	}
}

func (s *Screen) handle(ev input.Event) (Outcome, bool) {
	if ev.Pressed {
		switch ev.Button {
		case constants.VirtualButtonB:
			return OutcomeBack, true
		case constants.VirtualButtonStart, constants.VirtualButtonMenu:
			return OutcomeMenu, true
		}
	}

	pressed, err := s.focus.Handle(ev)
	if !pressed {
		return 0, false
	}
	if err != nil {
		s.logger.Warn("Link press failed", "error", err)
		s.status = err.Error()
		return 0, false
	}
	return OutcomePressed, true
}

func (s *Screen) render(page Page) {
	window := s.display.Window
	theme := display.GetTheme()
	window.Clear()

	w, h := window.Size()
	area := internal.Rect{W: w, H: h}
	inner := area.Inset(s.padding)
	base := textStyle{color: theme.LinkColor, size: s.fontSize}

	y := inner.Y
	if page.Title != "" {
		size := s.text(page.Title, textStyle{color: theme.HintColor, size: s.fontSize}, inner.X, y, true)
		y += size.H + s.spacing*2
	}

	sizes := make([]internal.Size, len(page.Links))
	for i, l := range page.Links {
		sizes[i] = s.node(l, base, 0, 0, false, false)
	}

	listArea := internal.Rect{X: area.X, Y: y - s.padding.Top, W: area.W, H: area.H - y}
	rects := internal.StackVertical(listArea, s.padding, s.spacing, constants.TextAlignLeft, sizes)

	focused := s.focus.Index()
	for i, l := range page.Links {
		r := rects[i]
		r.X = internal.AlignX(inner, r.W, alignOf(l))

		st := base
		override := false
		switch {
		case l.Props.Disabled:
			st.color, override = theme.DisabledColor, true
		case i == focused:
			fill(window.Renderer, theme.FocusColor, focusPadding.Outset(r))
			st.color, override = theme.FocusedTextColor, true
		}
		s.node(l, st, r.X, r.Y, true, override)
	}

	hint := s.status
	if hint == "" {
		hint = page.Path
	}
	if hint != "" {
		small := s.fontSize * 2 / 3
		if label, ok := s.label(hint, textStyle{color: theme.HintColor, size: small}); ok {
			s.text(hint, textStyle{color: theme.HintColor, size: small}, inner.X, inner.Y+inner.H-label.H, true)
		}
	}

	window.Present()
}

func alignOf(p *link.Pressable) constants.TextAlign {
	if t, ok := p.Child.(*link.Text); ok && t.Style != nil {
		return t.Style.Align
	}
	return constants.TextAlignLeft
}

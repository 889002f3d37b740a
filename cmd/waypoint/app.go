package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/waypoint-nav/waypoint/pkg/waypoint"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/link"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/router"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/view"
)

const version = "0.4.0"

const cartridgeSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#9A9996" d="M5 2h14v20H5z"/><path fill="#F6F5F4" d="M8 5h8v6H8z"/></svg>`

type game struct {
	ID       int
	Name     string
	Platform string
}

var library = []game{
	{ID: 1, Name: "Metroid Fusion", Platform: "GBA"},
	{ID: 2, Name: "Chrono Trigger", Platform: "SNES"},
	{ID: 3, Name: "Castlevania: Symphony of the Night", Platform: "PS1"},
}

// app is the demo: a library navigator, a settings navigator and an about
// page, all reached through links.
type app struct {
	screen     *view.Screen
	translator *waypoint.Translator
	cfg        waypoint.Config
	links      map[string]*link.Link[struct{}]
	logger     *slog.Logger
}

func newApp(screen *view.Screen, translator *waypoint.Translator, cfg waypoint.Config) *app {
	return &app{
		screen:     screen,
		translator: translator,
		cfg:        cfg,
		links:      make(map[string]*link.Link[struct{}]),
		logger:     waypoint.GetLogger(),
	}
}

func (a *app) router() *router.Router {
	games := router.New().
		Register("Games", a.games).
		Register("Game", a.game)

	settings := router.New().
		Register("General", a.general).
		Register("Display", a.display)

	return router.New().
		Register("Home", a.home).
		RegisterNavigator("Library", games).
		RegisterNavigator("Settings", settings).
		Register("About", a.about)
}

// link renders the link instance kept under id, so each on-screen link
// keeps one handler across frames.
func (a *app) link(f *nav.Facade, id string, props link.Props[struct{}]) *link.Pressable {
	l, ok := a.links[id]
	if !ok {
		l = link.New[struct{}]()
		a.links[id] = l
	}
	return l.Render(f, props)
}

func (a *app) show(ctx context.Context, frame router.Frame, titleID string, links ...*link.Pressable) error {
	outcome, err := a.screen.Show(ctx, view.Page{
		Title: a.translator.Localize(titleID, nil),
		Path:  frame.Path,
		Links: links,
	})
	if err != nil {
		return err
	}
	return a.finish(frame, outcome)
}

// finish applies what the user did on a page that did not press a link.
func (a *app) finish(frame router.Frame, outcome view.Outcome) error {
	a.logger.Debug("Screen finished", "path", frame.Path, "outcome", outcome.String())

	switch outcome {
	case view.OutcomeQuit:
		return router.ErrExit

	case view.OutcomeBack:
		if err := frame.Nav.GoBack(); err != nil {
			if errors.Is(err, router.ErrNothingToPop) {
				return router.ErrExit
			}
			return err
		}

	case view.OutcomeMenu:
		err := frame.Nav.PopToTop()
		if nav.IsUnsupported(err) {
			return frame.Nav.Navigate(route.Descriptor{RouteName: route.Root})
		}
		return err
	}
	return nil
}

func (a *app) home(ctx context.Context, frame router.Frame) error {
	f := frame.Nav
	f.Prefetch("Library")

	return a.show(ctx, frame, "title_home",
		a.link(f, "home.library", link.Props[struct{}]{
			RouteName: "Library",
			Children:  link.Localized{MessageID: "link_library"},
		}),
		a.link(f, "home.settings", link.Props[struct{}]{
			RouteName: "Settings",
			Native:    &route.Native{Screen: "Display"},
			Children:  link.Localized{MessageID: "link_settings"},
		}),
		a.link(f, "home.about", link.Props[struct{}]{
			RouteName: "About",
			Params:    route.Params{"build": map[string]any{"version": version}},
			Children:  link.Localized{MessageID: "link_about"},
		}),
		a.link(f, "home.store", link.Props[struct{}]{
			RouteName: "Store",
			Children:  link.Localized{MessageID: "link_disabled"},
			Pressable: link.PressableProps{Disabled: true},
		}),
	)
}

func (a *app) games(ctx context.Context, frame router.Frame) error {
	f := frame.Nav
	links := make([]*link.Pressable, 0, len(library)+1)

	for _, g := range library {
		links = append(links, a.link(f, "games."+g.Name, link.Props[struct{}]{
			RouteName: "Game",
			Params:    route.Params{"game": g},
			Children: link.Group{
				link.Icon{SVG: []byte(cartridgeSVG), Size: 28},
				link.Label(g.Name),
			},
		}))
	}
	links = append(links, a.link(f, "games.home", link.Props[struct{}]{
		Children: link.Localized{MessageID: "link_home"},
		Style:    &link.TextStyle{Underline: true},
	}))

	return a.show(ctx, frame, "title_library", links...)
}

func (a *app) game(ctx context.Context, frame router.Frame) error {
	f := frame.Nav
	g := nav.Param(f, "game", game{Name: "Unknown"})

	outcome, err := a.screen.Show(ctx, view.Page{
		Title: g.Name + " (" + g.Platform + ")",
		Path:  frame.Path,
		Links: []*link.Pressable{
			a.link(f, "game.back", link.Props[struct{}]{
				RouteName: "Games",
				Children:  link.Localized{MessageID: "link_back_to_library"},
			}),
			a.link(f, "game.home", link.Props[struct{}]{
				RouteName: route.Root,
				Children:  link.Localized{MessageID: "link_home"},
			}),
		},
	})
	if err != nil {
		return err
	}
	return a.finish(frame, outcome)
}

func (a *app) general(ctx context.Context, frame router.Frame) error {
	f := frame.Nav
	return a.show(ctx, frame, "title_settings",
		a.link(f, "general.display", link.Props[struct{}]{
			RouteName: "Display",
			Children:  link.Localized{MessageID: "link_display"},
		}),
		a.link(f, "general.home", link.Props[struct{}]{
			Children: link.Localized{MessageID: "link_home"},
		}),
	)
}

func (a *app) display(ctx context.Context, frame router.Frame) error {
	f := frame.Nav
	caps, _ := a.cfg.Capabilities()

	return a.show(ctx, frame, "title_display",
		a.link(f, "display.theme", link.Props[struct{}]{
			RouteName: "General",
			Children:  link.Localized{MessageID: "display_theme", Data: map[string]any{"Theme": a.cfg.Window.Theme}},
			NotText:   true,
		}),
		a.link(f, "display.caps", link.Props[struct{}]{
			RouteName: "General",
			Children:  link.Localized{MessageID: "display_profile", Data: map[string]any{"Capabilities": caps.String()}},
			NotText:   true,
		}),
		a.link(f, "display.home", link.Props[struct{}]{
			Children: link.Localized{MessageID: "link_home"},
		}),
	)
}

func (a *app) about(ctx context.Context, frame router.Frame) error {
	f := frame.Nav
	v, _ := f.GetParam("build.version", "dev").(string)

	return a.show(ctx, frame, "title_about",
		a.link(f, "about.version", link.Props[struct{}]{
			Children:  link.Localized{MessageID: "about_version", Data: map[string]any{"Version": v}},
			Pressable: link.PressableProps{Disabled: true},
		}),
		a.link(f, "about.home", link.Props[struct{}]{
			Children: link.Localized{MessageID: "link_home"},
		}),
	)
}

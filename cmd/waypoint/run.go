package main

import (
	"context"
	"embed"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/waypoint-nav/waypoint/pkg/waypoint"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/constants"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/input"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/view"
)

//go:embed messages/*.toml
var messageFS embed.FS

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the window and start navigating",
	Long: `Opens the demo application: a library, a settings navigator and an about
page connected by links. Arrow keys or the d-pad move focus, A or Enter
presses the focused link, B or Escape goes back.`,
	RunE: runApp,
}

func init() {
	runCmd.Flags().String("input", os.Getenv(constants.InputDeviceEnvVar), "evdev device to read buttons from, e.g. /dev/input/event1")
	runCmd.Flags().String("profile", "", "Override navigation.profile")
	rootCmd.AddCommand(runCmd)
}

func defaultMessages() ([]waypoint.MessageFile, error) {
	entries, err := messageFS.ReadDir("messages")
	if err != nil {
		return nil, err
	}

	files := make([]waypoint.MessageFile, 0, len(entries))
	for _, e := range entries {
		data, err := messageFS.ReadFile("messages/" + e.Name())
		if err != nil {
			return nil, err
		}
		files = append(files, waypoint.MessageFile{Name: e.Name(), Data: data})
	}
	return files, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer waypoint.Close()

	logger := waypoint.GetLogger()

	if cmd.Flags().Changed("profile") {
		cfg.Navigation.Profile, _ = cmd.Flags().GetString("profile")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	caps, _ := cfg.Capabilities()
	accent, _ := cfg.AccentColor()
	fontPath, err := cfg.Window.ResolveFontPath()
	if err != nil {
		return waypoint.NewInfrastructureError("open_font", err)
	}

	defaults, err := defaultMessages()
	if err != nil {
		return err
	}
	bundle, err := waypoint.NewBundle(cfg.I18n, defaults...)
	if err != nil {
		return err
	}
	translator, err := waypoint.NewTranslator(bundle, cfg.I18n.Language)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var events chan input.Event
	if device, _ := cmd.Flags().GetString("input"); device != "" {
		reader, err := input.Open(device)
		if err != nil {
			return err
		}
		defer reader.Close()

		events = make(chan input.Event, 16)
		go func() {
			if err := reader.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Input reader stopped", "device", device, "error", err)
			}
		}()
	}

	screen, err := view.Open(view.Settings{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Borderless: cfg.Window.Borderless,
		Resizable:  cfg.Window.Resizable,
		Theme:      strings.ToLower(cfg.Window.Theme),
		Accent:     accent,
		FontPath:   fontPath,
		FontSize:   cfg.Window.FontSize,
	}, view.Options{
		Localizer: translator,
		Events:    events,
	})
	if err != nil {
		return waypoint.NewInfrastructureError("open_window", err)
	}
	defer screen.Close()

	logger.Info("Starting", "root", cfg.Navigation.Root, "capabilities", caps.String(), "language", translator.Language().String())

	r := newApp(screen, translator, cfg).router().SetProfile(caps)
	return r.Run(ctx, cfg.RootDescriptor())
}

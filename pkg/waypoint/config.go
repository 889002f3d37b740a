package waypoint

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/route"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/router"
)

// Config is the TOML configuration file.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Navigation NavigationConfig `toml:"navigation"`
	Window     WindowConfig     `toml:"window"`
	I18n       I18nConfig       `toml:"i18n"`
}

type LogConfig struct {
	Level    string `toml:"level"`     // Application log level
	NavLevel string `toml:"nav_level"` // Level for dispatch tracing
	Path     string `toml:"path"`      // Log file; empty logs to stdout only
}

type NavigationConfig struct {
	Root    string   `toml:"root"`    // Route opened at startup; "/" means the initial route
	Profile string   `toml:"profile"` // "full", "stack" or "legacy"
	Disable []string `toml:"disable"` // Capabilities to hide on top of the profile
}

type WindowConfig struct {
	Title       string `toml:"title"`
	Width       int32  `toml:"width"`
	Height      int32  `toml:"height"`
	Borderless  bool   `toml:"borderless"`
	Resizable   bool   `toml:"resizable"`
	Theme       string `toml:"theme"`        // "default" or "cannoli"
	AccentColor string `toml:"accent_color"` // "#rrggbb", overrides the theme's link color
	FontPath    string `toml:"font_path"`    // Empty uses a fallback font, see ResolveFontPath
	FontSize    int    `toml:"font_size"`
}

type I18nConfig struct {
	Language     string   `toml:"language"`      // BCP 47 tag, e.g. "en" or "pt-BR"
	MessageFiles []string `toml:"message_files"` // go-i18n message files (toml or json)
}

const defaultConfigTOML = `# waypoint configuration

[log]
level = "info"
nav_level = "error"
path = ""

[navigation]
root = "/"
profile = "full"
disable = []

[window]
title = "waypoint"
width = 1024
height = 768
borderless = false
resizable = true
theme = "default"
accent_color = ""
# TrueType font for the default theme. Empty picks a common system font
# (DejaVu Sans, Liberation Sans, Noto Sans or Arial) when one is installed.
font_path = ""
font_size = 28

[i18n]
language = "en"
message_files = []
`

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	var cfg Config
	if _, err := toml.Decode(defaultConfigTOML, &cfg); err != nil {
		panic(fmt.Sprintf("waypoint: default config: %v", err))
	}
	return cfg
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults; unknown keys are logged and ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			internal.GetLogger().Warn("config file not found, using defaults", "path", path)
			return DefaultConfig(), nil
		}
		return Config{}, NewInfrastructureError("load_config", err)
	}

	for _, key := range md.Undecoded() {
		internal.GetLogger().Warn("unknown config key", "key", key.String(), "path", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields that have a closed set of values.
func (c Config) Validate() error {
	if _, err := c.Capabilities(); err != nil {
		return err
	}
	if _, err := c.AccentColor(); err != nil {
		return err
	}
	switch strings.ToLower(c.Window.Theme) {
	case "", "default", "cannoli":
	default:
		return fmt.Errorf("%w: window.theme %q", ErrInvalidConfig, c.Window.Theme)
	}
	return nil
}

// FallbackFontPaths are tried in order when the default theme has no
// font_path. The cannoli theme ships its own font and never uses them.
var FallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu-sans-fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// ResolveFontPath returns font_path when set. For the default theme an empty
// font_path resolves to the first of FallbackFontPaths present on disk, or
// ErrNoFont when none is. Other themes get "" and pick their own font.
func (w WindowConfig) ResolveFontPath() (string, error) {
	if w.FontPath != "" {
		return w.FontPath, nil
	}
	switch strings.ToLower(w.Theme) {
	case "", "default":
	default:
		return "", nil
	}

	for _, path := range FallbackFontPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			internal.GetLogger().Debug("Using fallback font", "path", path)
			return path, nil
		}
	}
	return "", ErrNoFont
}

// Capabilities resolves the navigation profile minus any disabled capabilities.
func (c Config) Capabilities() (nav.Capability, error) {
	caps, err := router.ParseProfile(c.Navigation.Profile)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, name := range c.Navigation.Disable {
		capability, ok := nav.ParseCapability(name)
		if !ok {
			return 0, fmt.Errorf("%w: navigation.disable: unknown capability %q", ErrInvalidConfig, name)
		}
		caps &^= capability
	}
	return caps, nil
}

// RootDescriptor is the descriptor opened at startup.
func (c Config) RootDescriptor() route.Descriptor {
	return route.Descriptor{RouteName: c.Navigation.Root}
}

// AccentColor parses window.accent_color. It returns 0 when unset.
func (c Config) AccentColor() (uint32, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(c.Window.AccentColor), "#")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil || len(raw) != 6 {
		return 0, fmt.Errorf("%w: window.accent_color %q", ErrInvalidConfig, c.Window.AccentColor)
	}
	return uint32(v), nil
}

// Encode renders the configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDefaultConfig writes the commented default configuration to path.
func WriteDefaultConfig(path string) error {
	if err := os.WriteFile(path, []byte(defaultConfigTOML), 0644); err != nil {
		return NewInfrastructureError("write_config", err)
	}
	return nil
}

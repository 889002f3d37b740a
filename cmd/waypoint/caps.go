package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/waypoint-nav/waypoint/pkg/waypoint"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
)

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Show the capabilities a navigation profile advertises",
	Long: `Resolves a router profile, minus any disabled capabilities, and lists what
the facade will pass through and what it will fall back on or reject.`,
	RunE: runCaps,
}

func init() {
	capsCmd.Flags().String("profile", "", "Profile to resolve (full, stack or legacy); defaults to the config file's")
	capsCmd.Flags().StringSlice("disable", nil, "Capabilities to hide on top of the profile")
	rootCmd.AddCommand(capsCmd)
}

func runCaps(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("profile") {
		cfg.Navigation.Profile, _ = cmd.Flags().GetString("profile")
	}
	if cmd.Flags().Changed("disable") {
		cfg.Navigation.Disable, _ = cmd.Flags().GetStringSlice("disable")
	}

	caps, err := cfg.Capabilities()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "profile: %s\n", profileName(cfg))
	fmt.Fprintf(out, "capabilities: %s\n", caps)
	for _, c := range allCapabilities {
		fmt.Fprintf(out, "  %-10s %s\n", c, behavior(caps, c))
	}
	return nil
}

var allCapabilities = []nav.Capability{
	nav.CapPush, nav.CapReplace, nav.CapPopToTop, nav.CapSetParams,
	nav.CapCanGoBack, nav.CapDispatch, nav.CapPathname, nav.CapPrefetch,
}

func profileName(cfg waypoint.Config) string {
	if p := strings.TrimSpace(cfg.Navigation.Profile); p != "" {
		return p
	}
	return "full"
}

func behavior(caps, c nav.Capability) string {
	if caps.Has(c) {
		return "pass-through"
	}
	switch c {
	case nav.CapPush:
		return "falls back to navigate"
	case nav.CapPrefetch:
		return "no-op"
	case nav.CapCanGoBack, nav.CapPathname:
		return "reported as unknown"
	}
	return "unsupported"
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/waypoint-nav/waypoint/pkg/waypoint"
	"github.com/waypoint-nav/waypoint/pkg/waypoint/constants"
)

var rootCmd = &cobra.Command{
	Use:   "waypoint",
	Short: "Waypoint drives link-based navigation over pluggable host runtimes",
	Long: `Waypoint renders pages of links and routes presses through a navigation
facade bound to an in-memory router. The router's capability profile can be
narrowed to see how the facade copes with older host runtimes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", os.Getenv(constants.ConfigPathEnvVar), "Path to the TOML configuration file")
}

// loadConfig reads the file named by --config and applies its [log] section.
func loadConfig(cmd *cobra.Command) (waypoint.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return waypoint.Config{}, err
	}

	cfg, err := waypoint.LoadConfig(path)
	if err != nil {
		return waypoint.Config{}, err
	}

	waypoint.Init(waypoint.OptionsFromConfig(cfg))
	return cfg, nil
}

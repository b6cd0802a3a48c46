package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/gcal/internal/config"
	"github.com/marcus/gcal/internal/output"
)

var (
	versionString string
	baseDir       string
)

// SetVersion sets the version string
func SetVersion(v string) {
	versionString = v
}

var rootCmd = &cobra.Command{
	Use:   "gcal",
	Short: "Terminal Google Calendar browser",
	Long: `gcal - A terminal Google Calendar browser.

Mirrors your calendars into a local SQLite cache with incremental sync,
then renders them as a dense, navigable day grid.`,
}

// Execute runs the root command
func Execute() {
	rootCmd.Version = versionString
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "data directory (default ~/.gcal)")
}

func initBaseDir() {
	if baseDir != "" {
		return
	}
	dir, err := config.DefaultBaseDir()
	if err != nil {
		output.Error("resolve home directory: %v", err)
		os.Exit(1)
	}
	baseDir = dir
}

func getBaseDir() string {
	initBaseDir()
	return baseDir
}

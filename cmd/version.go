package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marcus/gcal/internal/output"
	"github.com/marcus/gcal/internal/version"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and optionally check for updates",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	output.Info("gcal %s", versionString)

	if !versionCheck {
		return nil
	}
	if version.IsDevelopmentVersion(versionString) {
		output.Info("development build, skipping update check")
		return nil
	}

	result := version.Check(versionString)
	if result.Error != nil {
		output.Warning("update check failed: %v", result.Error)
		return nil
	}
	if !result.HasUpdate {
		output.Success("up to date")
		return nil
	}
	output.Info("newer release available: %s", result.LatestVersion)
	if cmdline := version.UpdateCommand(result.LatestVersion); cmdline != "" {
		output.Info("update with: %s", cmdline)
	}
	return nil
}

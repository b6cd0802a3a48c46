package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/gcal/internal/db"
	"github.com/marcus/gcal/internal/gcal"
	"github.com/marcus/gcal/internal/output"
	"github.com/marcus/gcal/internal/sync"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the local cache and discover calendars",
	Long: `Creates the local database, runs the OAuth flow if no cached token
exists, and records every calendar on the account. All calendars start
subscribed; use 'gcal calendars' to narrow the selection.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	store, err := db.Initialize(getBaseDir())
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	ts, err := gcal.TokenSource(ctx, getBaseDir())
	if err != nil {
		return err
	}
	client, err := gcal.NewClient(ctx, ts)
	if err != nil {
		return err
	}

	calendars, err := sync.New(store, client).DiscoverCalendars(ctx)
	if err != nil {
		return err
	}

	output.Success("Initialized %s", getBaseDir())
	output.Info("Found %d calendars:", len(calendars))
	for _, c := range calendars {
		marker := " "
		if c.Subscribed {
			marker = "*"
		}
		output.Info("  %s %s", marker, c.Summary)
	}
	output.Info("\nRun 'gcal sync' to fetch events, then 'gcal browse'.")
	return nil
}

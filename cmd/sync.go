package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/gcal/internal/db"
	"github.com/marcus/gcal/internal/gcal"
	"github.com/marcus/gcal/internal/output"
	"github.com/marcus/gcal/internal/sync"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync subscribed calendars into the local cache",
	Long: `Runs one incremental sync cycle per subscribed calendar. Calendars
with a stored sync token fetch only changes; expired tokens fall back
to a full resync automatically. A failure on one calendar does not
stop the others.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	store, err := db.Open(getBaseDir())
	if err != nil {
		return err
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

	calendars, err := store.FetchCalendars()
	if err != nil {
		return err
	}
	if len(calendars) == 0 {
		return fmt.Errorf("no subscribed calendars: run 'gcal init' and 'gcal calendars'")
	}

	results := sync.New(store, client).SyncAll(ctx, calendars)

	lines := make([]output.CycleLine, len(results))
	failed := 0
	for i, r := range results {
		lines[i] = output.CycleLine{
			Name:     r.Summary,
			Upserted: r.Upserted,
			Deleted:  r.Deleted,
			Full:     r.FullResync,
			Err:      r.Err,
		}
		if r.Err != nil {
			failed++
		}
	}
	output.SyncSummary(lines)

	if failed == len(results) {
		return fmt.Errorf("all %d calendar sync cycles failed", failed)
	}
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marcus/gcal/internal/config"
	"github.com/marcus/gcal/internal/db"
	"github.com/marcus/gcal/internal/output"
	"github.com/marcus/gcal/internal/timeline"
)

var agendaDays int

var agendaCmd = &cobra.Command{
	Use:     "agenda",
	Aliases: []string{"ls"},
	Short:   "Print upcoming events from the local cache",
	RunE:    runAgenda,
}

func init() {
	agendaCmd.Flags().IntVarP(&agendaDays, "days", "n", 0, "days to show (default from settings)")
	rootCmd.AddCommand(agendaCmd)
}

func runAgenda(cmd *cobra.Command, args []string) error {
	store, err := db.Open(getBaseDir())
	if err != nil {
		return err
	}
	defer store.Close()

	days := agendaDays
	if days <= 0 {
		settings, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}
		days = settings.AgendaDays
	}

	calendars, err := store.FetchCalendars()
	if err != nil {
		return err
	}
	ids := make([]string, len(calendars))
	for i, c := range calendars {
		ids[i] = c.ID
	}
	events, err := store.FetchEvents(ids)
	if err != nil {
		return err
	}

	today := timeline.Today()
	tl := timeline.Project(events, today)
	output.Agenda(tl.Items, today, days)
	return nil
}

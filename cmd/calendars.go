package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/marcus/gcal/internal/db"
	"github.com/marcus/gcal/internal/output"
)

var calendarsList bool

var calendarsCmd = &cobra.Command{
	Use:   "calendars",
	Short: "Choose which calendars are subscribed",
	Long: `Opens a picker over all known calendars. The selection replaces the
subscription set: picked calendars are subscribed, everything else is
unsubscribed. With --list, just prints the current state.`,
	RunE: runCalendars,
}

func init() {
	calendarsCmd.Flags().BoolVar(&calendarsList, "list", false, "print calendars without changing anything")
	rootCmd.AddCommand(calendarsCmd)
}

func runCalendars(cmd *cobra.Command, args []string) error {
	store, err := db.Open(getBaseDir())
	if err != nil {
		return err
	}
	defer store.Close()

	calendars, err := store.FetchAllCalendars()
	if err != nil {
		return err
	}
	if len(calendars) == 0 {
		return fmt.Errorf("no calendars known: run 'gcal init' first")
	}

	if calendarsList {
		for _, c := range calendars {
			marker := " "
			if c.Subscribed {
				marker = "*"
			}
			output.Info("%s %s", marker, c.Summary)
		}
		return nil
	}

	options := make([]huh.Option[string], len(calendars))
	var selected []string
	for i, c := range calendars {
		options[i] = huh.NewOption(c.Summary, c.ID).Selected(c.Subscribed)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Subscribed calendars").
				Description("Space toggles, enter confirms.").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("calendar picker: %w", err)
	}

	if err := store.SetSubscriptions(selected); err != nil {
		return err
	}
	output.Success("Subscribed to %d of %d calendars", len(selected), len(calendars))
	return nil
}

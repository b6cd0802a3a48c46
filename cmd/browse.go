package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/gcal/internal/config"
	"github.com/marcus/gcal/internal/db"
	"github.com/marcus/gcal/internal/gcal"
	"github.com/marcus/gcal/internal/sync"
	"github.com/marcus/gcal/internal/tui/browser"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"tui"},
	Short:   "Browse the calendar grid interactively",
	Long: `Opens the interactive day-grid browser over the local cache. Syncing
from inside the browser ('s') requires remote credentials; browsing
works fully offline.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	store, err := db.Open(getBaseDir())
	if err != nil {
		return err
	}
	defer store.Close()

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

	settings, err := config.Load(getBaseDir())
	if err != nil {
		return err
	}

	// The gateway is built on the first sync request, not here, so
	// browsing the cache never asks for credentials.
	var synchronizer *sync.Synchronizer
	provider := func(ctx context.Context) (*sync.Synchronizer, error) {
		if synchronizer != nil {
			return synchronizer, nil
		}
		ts, err := gcal.TokenSource(ctx, getBaseDir())
		if err != nil {
			return nil, err
		}
		client, err := gcal.NewClient(ctx, ts)
		if err != nil {
			return nil, err
		}
		synchronizer = sync.New(store, client)
		return synchronizer, nil
	}

	model := browser.NewModel(store, provider, events, settings.KeyBindings)
	model.Version = versionString
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

package version

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// UpdateAvailableMsg is delivered to the browser when a newer release
// exists.
type UpdateAvailableMsg struct {
	CurrentVersion string
	LatestVersion  string
	UpdateCommand  string
}

// CheckAsync returns a command that looks for a newer release in the
// background. A valid cached result short-circuits the network call;
// failures and up-to-date results produce no message.
func CheckAsync(current string) tea.Cmd {
	return func() tea.Msg {
		if IsDevelopmentVersion(current) {
			return nil
		}
		if entry, err := LoadCache(); err == nil && IsCacheValid(entry, current) {
			if !entry.HasUpdate {
				return nil
			}
			return UpdateAvailableMsg{
				CurrentVersion: current,
				LatestVersion:  entry.LatestVersion,
				UpdateCommand:  UpdateCommand(entry.LatestVersion),
			}
		}

		result := Check(current)
		if result.Error != nil {
			return nil
		}

		SaveCache(&CacheEntry{
			LatestVersion:  result.LatestVersion,
			CurrentVersion: current,
			CheckedAt:      time.Now(),
			HasUpdate:      result.HasUpdate,
		})

		if !result.HasUpdate {
			return nil
		}
		return UpdateAvailableMsg{
			CurrentVersion: current,
			LatestVersion:  result.LatestVersion,
			UpdateCommand:  UpdateCommand(result.LatestVersion),
		}
	}
}

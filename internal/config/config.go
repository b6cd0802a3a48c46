// Package config loads and saves the user settings file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"syscall"
)

const (
	settingsFile = "settings.json"
	lockFile     = "settings.json.lock"
)

// DefaultAgendaDays is how far ahead the agenda command looks when the
// settings file does not say otherwise.
const DefaultAgendaDays = 30

// Settings holds user-tunable behavior. KeyBindings rebinds browser
// actions by name (e.g. {"down": "n", "sync": "S"}); unknown action
// names are ignored.
type Settings struct {
	AgendaDays  int               `json:"agenda_days,omitempty"`
	KeyBindings map[string]string `json:"key_bindings,omitempty"`
}

// DefaultBaseDir returns the per-user data directory (~/.gcal).
func DefaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gcal"), nil
}

// Load reads settings from disk; a missing file yields defaults.
func Load(baseDir string) (*Settings, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, settingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{AgendaDays: DefaultAgendaDays}, nil
		}
		return nil, err
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.AgendaDays <= 0 {
		s.AgendaDays = DefaultAgendaDays
	}
	return &s, nil
}

// Save writes settings using an atomic write (temp file + rename),
// serialized across processes with flock.
func Save(baseDir string, s *Settings) error {
	return withLock(baseDir, func() error {
		path := filepath.Join(baseDir, settingsFile)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}

		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}

		tmp, err := os.CreateTemp(filepath.Dir(path), "settings-*.json.tmp")
		if err != nil {
			return err
		}
		tmpName := tmp.Name()

		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return err
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmpName)
			return err
		}
		return os.Rename(tmpName, path)
	})
}

func withLock(baseDir string, fn func() error) error {
	lockPath := filepath.Join(baseDir, lockFile)
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return err
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	return fn()
}

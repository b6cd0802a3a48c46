package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.AgendaDays != DefaultAgendaDays {
		t.Errorf("AgendaDays = %d, want %d", s.AgendaDays, DefaultAgendaDays)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := &Settings{
		AgendaDays:  14,
		KeyBindings: map[string]string{"sync": "S"},
	}
	if err := Save(dir, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.AgendaDays != 14 {
		t.Errorf("AgendaDays = %d, want 14", out.AgendaDays)
	}
	if out.KeyBindings["sync"] != "S" {
		t.Errorf("KeyBindings = %v, want sync:S", out.KeyBindings)
	}
}

func TestLoadClampsNonPositiveAgendaDays(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"agenda_days": -5}`), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.AgendaDays != DefaultAgendaDays {
		t.Errorf("AgendaDays = %d, want default %d", s.AgendaDays, DefaultAgendaDays)
	}
}

func TestSaveCreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "gcal")
	if err := Save(dir, &Settings{AgendaDays: 7}); err != nil {
		t.Fatalf("Save into missing dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "settings.json")); err != nil {
		t.Fatalf("settings file missing: %v", err)
	}
}

package version

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolateHome redirects the cache into a throwaway home directory.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestCacheRoundTrip(t *testing.T) {
	home := isolateHome(t)

	saved := &CacheEntry{
		LatestVersion:  "v1.8.0",
		CurrentVersion: "v1.7.2",
		CheckedAt:      time.Now().Truncate(time.Second),
		HasUpdate:      true,
	}
	if err := SaveCache(saved); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	loaded, err := LoadCache()
	if err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	if loaded.LatestVersion != saved.LatestVersion {
		t.Errorf("latest = %q, want %q", loaded.LatestVersion, saved.LatestVersion)
	}
	if loaded.CurrentVersion != saved.CurrentVersion {
		t.Errorf("current = %q, want %q", loaded.CurrentVersion, saved.CurrentVersion)
	}
	if !loaded.HasUpdate {
		t.Error("HasUpdate lost in round trip")
	}
	if !loaded.CheckedAt.Equal(saved.CheckedAt) {
		t.Errorf("checked at = %v, want %v", loaded.CheckedAt, saved.CheckedAt)
	}

	if _, err := os.Stat(filepath.Join(home, ".gcal", "update-check.json")); err != nil {
		t.Fatalf("cache file not where expected: %v", err)
	}
}

func TestLoadCache_MissingFile(t *testing.T) {
	isolateHome(t)

	if _, err := LoadCache(); err == nil {
		t.Fatal("expected an error when no cache exists")
	}
}

func TestLoadCache_CorruptFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".gcal")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "update-check.json"), []byte("{truncated"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCache(); err == nil {
		t.Fatal("expected an error for corrupt cache JSON")
	}
}

func TestIsCacheValid(t *testing.T) {
	fresh := time.Now().Add(-time.Hour)
	stale := time.Now().Add(-cacheTTL - time.Minute)

	cases := []struct {
		name    string
		entry   *CacheEntry
		current string
		want    bool
	}{
		{"nil entry", nil, "v1.0.0", false},
		{"fresh same version", &CacheEntry{CurrentVersion: "v1.0.0", CheckedAt: fresh}, "v1.0.0", true},
		{"fresh but binary upgraded", &CacheEntry{CurrentVersion: "v1.0.0", CheckedAt: fresh}, "v1.1.0", false},
		{"past the TTL", &CacheEntry{CurrentVersion: "v1.0.0", CheckedAt: stale}, "v1.0.0", false},
	}
	for _, tc := range cases {
		if got := IsCacheValid(tc.entry, tc.current); got != tc.want {
			t.Errorf("%s: IsCacheValid = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// Package version checks GitHub for newer gcal releases. Checks are
// rate limited through a small on-disk cache so the browser can run
// one on startup without hammering the API.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// releaseURL points at the latest-release endpoint. Tests swap it for
// a local server.
var releaseURL = "https://api.github.com/repos/marcus/gcal/releases/latest"

var httpClient = &http.Client{Timeout: 5 * time.Second}

// CheckResult is the outcome of one release lookup. Error is carried
// in-band: a failed lookup is reported, never fatal, since update
// checking is advisory.
type CheckResult struct {
	CurrentVersion string
	LatestVersion  string
	UpdateURL      string
	HasUpdate      bool
	Error          error
}

// Check asks GitHub for the latest release and compares it against the
// running version. Development builds skip the lookup entirely.
func Check(current string) CheckResult {
	result := CheckResult{CurrentVersion: current}
	if IsDevelopmentVersion(current) {
		return result
	}

	resp, err := httpClient.Get(releaseURL)
	if err != nil {
		result.Error = fmt.Errorf("fetch latest release: %w", err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Errorf("fetch latest release: %s", resp.Status)
		return result
	}

	var release struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		result.Error = fmt.Errorf("decode release: %w", err)
		return result
	}
	if release.TagName == "" {
		result.Error = errors.New("release has no tag")
		return result
	}

	result.LatestVersion = release.TagName
	result.UpdateURL = release.HTMLURL
	result.HasUpdate = isNewer(release.TagName, current)
	return result
}

// IsDevelopmentVersion reports whether v names a local build rather
// than a tagged release ("dev", "devel+<rev>", empty).
func IsDevelopmentVersion(v string) bool {
	switch v {
	case "", "unknown", "dev", "devel":
		return true
	}
	return strings.HasPrefix(v, "devel+")
}

// releaseTag constrains what ends up interpolated into the install
// command; anything else (shell metacharacters included) is dropped.
var releaseTag = regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[a-zA-Z0-9]+([.-][a-zA-Z0-9]+)*)?$`)

// UpdateCommand returns the go install invocation for a release tag,
// or "" when the tag is not a plain version.
func UpdateCommand(tag string) string {
	if !releaseTag.MatchString(tag) {
		return ""
	}
	return fmt.Sprintf("go install -ldflags \"-X main.Version=%s\" github.com/marcus/gcal@%s", tag, tag)
}

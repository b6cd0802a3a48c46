package version

import (
	"strconv"
	"strings"
)

// parseSemver extracts the numeric core of a version string. Prerelease
// and build metadata are dropped; missing components default to 0, and
// unparseable input yields the zero version.
func parseSemver(v string) [3]int {
	v = strings.TrimPrefix(v, "v")

	// Strip build metadata, then prerelease.
	if i := strings.IndexByte(v, '+'); i >= 0 {
		v = v[:i]
	}
	if i := strings.IndexByte(v, '-'); i >= 0 {
		v = v[:i]
	}

	var out [3]int
	for i, part := range strings.SplitN(v, ".", 3) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return [3]int{}
		}
		out[i] = n
	}
	return out
}

// isNewer compares two versions by their numeric core only. Prerelease
// tags do not participate: v1.0.0-beta and v1.0.0 compare equal.
func isNewer(latest, current string) bool {
	l, c := parseSemver(latest), parseSemver(current)
	for i := 0; i < 3; i++ {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

// Package version compares release versions for the update check.
package version

import (
	"strconv"
	"strings"
)

// IsOutdated reports whether latest is a strictly newer semantic version
// than current. Unparseable versions (dev builds, "latest" tags) compare as
// up to date so the check stays quiet rather than nagging.
func IsOutdated(current, latest string) bool {
	cur, okCur := parse(current)
	lat, okLat := parse(latest)
	if !okCur || !okLat {
		return false
	}
	for i := range cur {
		if cur[i] != lat[i] {
			return cur[i] < lat[i]
		}
	}
	return false
}

// parse reads up to major.minor.patch, tolerating a v prefix and ignoring
// pre-release or build suffixes. Missing components count as zero.
func parse(v string) ([3]int, bool) {
	var out [3]int

	s := strings.TrimSpace(v)
	s = strings.TrimPrefix(s, "v")
	s = strings.TrimPrefix(s, "V")
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return out, false
	}

	for i, part := range strings.SplitN(s, ".", 4) {
		if i == 3 {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return out, false
		}
		out[i] = n
	}
	return out, true
}

// Package formats builds the per-video encoding catalog and selects the encoding to download.
package formats

import (
	"strconv"
	"strings"
)

// hasURL returns true when the entry carries a resolvable URL.
// Unresolved entries come from bare or malformed itag values.
func hasURL(url string) bool {
	return strings.TrimSpace(url) != ""
}

// normalizeID trims an encoding identifier as observed on the wire or in a table file.
func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// lessID orders identifiers numerically when both are numbers, lexically otherwise.
// Numbers sort before non-numbers.
func lessID(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

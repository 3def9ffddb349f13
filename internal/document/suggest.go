package document

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the known anchor closest to name, if any is close enough
// to be a plausible typo
func Suggest(anchors []string, name string) (string, bool) {
	name = strings.ToLower(strings.TrimPrefix(name, "#"))
	if name == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, a := range anchors {
		if a == "" {
			continue
		}
		d := levenshtein.ComputeDistance(name, strings.ToLower(a))
		if bestDist < 0 || d < bestDist {
			best, bestDist = a, d
		}
	}

	limit := len([]rune(name)) / 2
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}

package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/samdwyer/warband/internal/gamedata"
	"github.com/samdwyer/warband/internal/world"
)

// Suggest returns the candidate closest to input, or "" when none is within
// a small edit distance or input is already a candidate. Ties go to the
// earlier candidate.
func Suggest(input string, candidates []string) string {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return ""
	}

	best, bestDist := "", -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(in, cand)
		if dist == 0 {
			return ""
		}
		if dist > distanceLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func unitNames() []string {
	return gamedata.Units().IDs()
}

func directionNames() []string {
	dirs := world.Directions()
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return names
}

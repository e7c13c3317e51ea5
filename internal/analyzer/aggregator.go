package analyzer

import (
	"github.com/empiricalrun/flashimpact/internal/types"
)

// Aggregate merges direct and helper-induced impacts into one list,
// deduplicated on the (file path, test name) key. Direct impacts are
// inserted first, so a test edited in the commit itself is never also
// reported as helper-impacted, even when it calls a changed helper.
func Aggregate(direct, helper []types.TestImpact) []types.TestImpact {
	seen := make(map[string]bool)
	result := make([]types.TestImpact, 0, len(direct)+len(helper))

	for _, impact := range direct {
		if !seen[impact.Key()] {
			seen[impact.Key()] = true
			result = append(result, impact)
		}
	}
	for _, impact := range helper {
		if !seen[impact.Key()] {
			seen[impact.Key()] = true
			result = append(result, impact)
		}
	}

	return result
}

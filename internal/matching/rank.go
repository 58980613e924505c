package matching

import (
	"sort"

	"github.com/purplesquirrel/jobengine/internal/types"
)

// Rank sorts results descending by final score and truncates to limit.
// The sort is stable, so ties keep the scoring engine's output order.
// Pure function: scores are never recomputed here.
func Rank(results []types.MatchResult, limit int) []types.MatchResult {
	ranked := make([]types.MatchResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

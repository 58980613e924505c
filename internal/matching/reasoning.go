package matching

import (
	"strings"

	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/types"
)

// generateReasoning builds a short templated explanation from the rounded
// breakdown. It is explanatory metadata only and never feeds back into the
// numeric score.
func generateReasoning(job *catalog.Job, breakdown types.ScoreBreakdown) string {
	var reasons []string

	if breakdown.Skills >= 80 {
		reasons = append(reasons, "Strong skills match")
	} else if breakdown.Skills >= 50 {
		reasons = append(reasons, "Partial skills overlap")
	}

	if breakdown.Experience >= 90 {
		reasons = append(reasons, "Experience level is a great fit")
	}

	if breakdown.Location >= 90 && job.Remote == types.RemoteFull {
		reasons = append(reasons, "Fully remote position")
	} else if breakdown.Location >= 80 {
		reasons = append(reasons, "Location matches your preferences")
	}

	if breakdown.Salary >= 90 {
		reasons = append(reasons, "Salary within your range")
	}

	if len(reasons) == 0 {
		return "This role may be a good fit based on your profile."
	}
	return strings.Join(reasons, ". ") + "."
}

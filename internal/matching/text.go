package matching

import (
	"fmt"
	"strings"

	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/types"
)

// candidateText composes the profile text handed to the embedding
// provider.
func candidateText(candidate *types.CandidateProfile) string {
	return strings.Join([]string{
		candidate.Headline,
		candidate.Bio,
		"Skills: " + strings.Join(candidate.Skills, ", "),
		"Looking for: " + strings.Join(candidate.DesiredRoles, ", "),
		fmt.Sprintf("%d years of experience", candidate.YearsExperience),
	}, "\n")
}

// jobText composes the listing text handed to the embedding provider.
func jobText(job *catalog.Job) string {
	location := job.Location
	if location == "" {
		location = "Remote"
	}
	return strings.Join([]string{
		job.Title,
		job.Description,
		"Skills: " + strings.Join(job.Skills, ", "),
		"Company: " + job.CompanyName,
		location,
	}, "\n")
}

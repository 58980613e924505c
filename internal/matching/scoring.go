// Package matching scores catalog jobs against a candidate profile and
// ranks the results. Five independent sub-scores in [0,1] combine through
// fixed weights into a 0-100 final score.
package matching

import (
	"strings"

	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/types"
)

// Weights for the five scoring components.
const (
	topicalWeight    = 0.35
	skillsWeight     = 0.30
	experienceWeight = 0.15
	locationWeight   = 0.12
	salaryWeight     = 0.08
)

// Defaults applied when a job leaves its experience bounds unspecified.
const (
	defaultExperienceMin = 0
	defaultExperienceMax = 20
)

// titleMatchScore is the fallback topical sub-score: 0.8 when any desired
// role title and the job title contain each other case-insensitively,
// else 0.4.
func titleMatchScore(desiredRoles []string, jobTitle string) float64 {
	title := strings.ToLower(jobTitle)
	for _, role := range desiredRoles {
		r := strings.ToLower(role)
		if strings.Contains(title, r) || strings.Contains(r, title) {
			return 0.8
		}
	}
	return 0.4
}

// skillsScore is the fraction of the job's required skills the candidate
// covers. A job with no required skills scores 0.7: absence of a
// requirement is not a mismatch.
func skillsScore(candidateSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 0.7
	}

	matches := 0
	for _, skill := range jobSkills {
		if candidateHasSkill(candidateSkills, skill) {
			matches++
		}
	}
	return float64(matches) / float64(len(jobSkills))
}

// candidateHasSkill matches case-insensitively by substring containment in
// either direction, plus a normalized equality check that strips "." and
// "-" so "React.js" matches "React".
func candidateHasSkill(candidateSkills []string, jobSkill string) bool {
	js := strings.ToLower(jobSkill)
	jsNorm := normalizeSkill(js)
	for _, cs := range candidateSkills {
		c := strings.ToLower(cs)
		if strings.Contains(c, js) || strings.Contains(js, c) || normalizeSkill(c) == jsNorm {
			return true
		}
	}
	return false
}

func normalizeSkill(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, "-", "")
}

// experienceScore fits candidate years against the job's required band.
// Under-qualification penalizes 0.15 per missing year down to 0;
// over-qualification penalizes 0.05 per extra year with a floor of 0.5.
func experienceScore(candidateYears int, min, max *int) float64 {
	if min == nil && max == nil {
		return 0.8
	}

	lo := defaultExperienceMin
	if min != nil {
		lo = *min
	}
	hi := defaultExperienceMax
	if max != nil {
		hi = *max
	}

	switch {
	case candidateYears >= lo && candidateYears <= hi:
		return 1.0
	case candidateYears < lo:
		gap := float64(lo - candidateYears)
		if s := 1 - gap*0.15; s > 0 {
			return s
		}
		return 0
	default:
		gap := float64(candidateYears - hi)
		if s := 1 - gap*0.05; s > 0.5 {
			return s
		}
		return 0.5
	}
}

// locationScore compares the candidate's location preferences against the
// job's location and remote mode. A desired-location substring match
// overrides the hybrid default.
func locationScore(candidate *types.CandidateProfile, job *catalog.Job) float64 {
	if candidate.RemoteOnly {
		switch job.Remote {
		case types.RemoteFull:
			return 1.0
		case types.RemoteHybrid:
			return 0.5
		default:
			return 0
		}
	}

	if job.Remote == types.RemoteFull {
		return 1.0
	}
	if job.Location == "" {
		return 0.7
	}

	jobLocation := strings.ToLower(job.Location)
	for _, loc := range candidate.DesiredLocations {
		if strings.Contains(jobLocation, strings.ToLower(loc)) {
			return 1.0
		}
	}
	if job.Remote == types.RemoteHybrid {
		return 0.6
	}
	return 0.3
}

// salaryScore compares the candidate's acceptable band against the job's
// offered band. Missing data on either side is neutral, and a job paying
// above the candidate's band is not penalized like one paying below.
func salaryScore(candidate *types.CandidateProfile, job *catalog.Job) float64 {
	if candidate.SalaryMin == 0 || (job.SalaryMin == nil && job.SalaryMax == nil) {
		return 0.7
	}

	jobMin, jobMax := salaryBand(job)
	candidateMin := float64(candidate.SalaryMin)
	candidateMax := float64(candidate.SalaryMax)
	if candidateMax == 0 {
		candidateMax = candidateMin * 1.5
	}

	if float64(jobMax) >= candidateMin && float64(jobMin) <= candidateMax {
		return 1.0
	}

	if float64(jobMax) < candidateMin {
		gap := (candidateMin - float64(jobMax)) / candidateMin
		if s := 1 - gap; s > 0 {
			return s
		}
		return 0
	}

	// Job pays more than expected.
	return 0.8
}

// salaryBand fills a missing bound from the other side, so a single
// published figure acts as both min and max.
func salaryBand(job *catalog.Job) (int, int) {
	min, max := 0, 0
	if job.SalaryMin != nil {
		min = *job.SalaryMin
	}
	if job.SalaryMax != nil {
		max = *job.SalaryMax
	}
	if job.SalaryMin == nil {
		min = max
	}
	if job.SalaryMax == nil {
		max = min
	}
	return min, max
}

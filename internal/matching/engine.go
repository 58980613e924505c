package matching

import (
	"context"
	"log"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/embedding"
	"github.com/purplesquirrel/jobengine/internal/types"
)

// neutralTopical is the topical sub-score used when an embedding call
// fails or returns empty in the semantic variant.
const neutralTopical = 0.5

// Engine scores jobs against a candidate profile. With a nil provider it
// runs the fallback variant (role-title substring heuristic for topical
// relevance); with a provider it runs the semantic variant (embedding
// cosine similarity). The two variants share every other sub-score.
type Engine struct {
	provider embedding.Provider
}

// NewEngine creates a scoring engine. Pass provider as nil for the
// fallback variant.
func NewEngine(provider embedding.Provider) *Engine {
	return &Engine{provider: provider}
}

// Score computes a MatchResult per job. Output order follows input order;
// ranking is the caller's concern. An embedding failure degrades that
// pair's topical score to neutral and never fails the batch.
func (e *Engine) Score(ctx context.Context, candidate *types.CandidateProfile, jobs []*catalog.Job) []types.MatchResult {
	topical := e.topicalScores(ctx, candidate, jobs)

	results := make([]types.MatchResult, 0, len(jobs))
	for i, job := range jobs {
		results = append(results, scoreJob(candidate, job, topical[i]))
	}
	return results
}

// topicalScores computes the topical sub-score for every job. The
// semantic variant embeds the candidate once and each job concurrently;
// embeddings are independent and read-only.
func (e *Engine) topicalScores(ctx context.Context, candidate *types.CandidateProfile, jobs []*catalog.Job) []float64 {
	scores := make([]float64, len(jobs))

	if e.provider == nil {
		for i, job := range jobs {
			scores[i] = titleMatchScore(candidate.DesiredRoles, job.Title)
		}
		return scores
	}

	candidateVec, err := e.provider.Embed(ctx, candidateText(candidate))
	if err != nil || len(candidateVec) == 0 {
		if err != nil {
			log.Printf("[matching] candidate embedding failed: %v", err)
		}
		for i := range scores {
			scores[i] = neutralTopical
		}
		return scores
	}

	g, gCtx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			jobVec, err := e.provider.Embed(gCtx, jobText(job))
			if err != nil || len(jobVec) == 0 {
				if err != nil {
					log.Printf("[matching] embedding for job %s failed: %v", job.ID, err)
				}
				scores[i] = neutralTopical
				return nil
			}
			scores[i] = clampUnit(embedding.CosineSimilarity(candidateVec, jobVec))
			return nil
		})
	}
	_ = g.Wait()

	return scores
}

// scoreJob combines the five sub-scores. Full precision is kept through
// the weighted sum; rounding happens exactly once for the final score,
// and the breakdown percentages are rounded independently as cosmetic
// values.
func scoreJob(candidate *types.CandidateProfile, job *catalog.Job, topical float64) types.MatchResult {
	skills := skillsScore(candidate.Skills, job.Skills)
	experience := experienceScore(candidate.YearsExperience, job.ExperienceMin, job.ExperienceMax)
	location := locationScore(candidate, job)
	salary := salaryScore(candidate, job)

	final := topical*topicalWeight +
		skills*skillsWeight +
		experience*experienceWeight +
		location*locationWeight +
		salary*salaryWeight

	breakdown := types.ScoreBreakdown{
		Topical:    percent(topical),
		Skills:     percent(skills),
		Experience: percent(experience),
		Location:   percent(location),
		Salary:     percent(salary),
	}

	return types.MatchResult{
		JobID:     job.ID,
		Score:     percent(final),
		Breakdown: breakdown,
		Reasoning: generateReasoning(job, breakdown),
	}
}

func percent(score float64) int {
	return int(math.Round(score * 100))
}

// clampUnit clips a cosine similarity into [0,1]. Every sub-score must
// stay in that range; opposing embeddings are no worse a topical match
// than orthogonal ones.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

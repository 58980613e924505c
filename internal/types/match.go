package types

import "github.com/google/uuid"

// ScoreBreakdown holds the five sub-scores as rounded percentages (0-100).
// The breakdown is cosmetic: the final score is recombined from the
// unrounded sub-scores, never from these values.
type ScoreBreakdown struct {
	Topical    int `json:"topical"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Location   int `json:"location"`
	Salary     int `json:"salary"`
}

// MatchResult is the scoring output for a single candidate/job pair.
type MatchResult struct {
	JobID     uuid.UUID      `json:"job_id"`
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Reasoning string         `json:"reasoning"`
}

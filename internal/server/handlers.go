package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/matching"
	"github.com/purplesquirrel/jobengine/internal/types"
)

// defaultMatchLimit caps how many matches a request returns when the
// caller does not say.
const defaultMatchLimit = 20

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAggregate triggers one full aggregation run and returns its
// summary once every source has completed.
func (s *Server) handleAggregate(w http.ResponseWriter, r *http.Request) {
	summary, err := s.aggregator.Aggregate(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Aggregation failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

// handleListJobs lists catalog jobs, filtered by query parameters.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := catalog.JobFilters{
		Search:         q.Get("search"),
		Location:       q.Get("location"),
		Remote:         types.RemoteMode(q.Get("remote")),
		EmploymentType: catalog.EmploymentType(q.Get("employment_type")),
		Status:         catalog.JobStatus(q.Get("status")),
	}
	if filters.Status == "" {
		filters.Status = catalog.StatusActive
	}

	jobs, err := s.catalog.ListJobs(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// matchResponse is a MatchResult enriched with the scored job, so clients
// need no second catalog round trip.
type matchResponse struct {
	types.MatchResult
	Job catalog.Job `json:"job"`
}

// handleMatch scores all active jobs against the posted candidate profile
// and returns the ranked top matches.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var profile types.CandidateProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}

	limit := parseQueryInt(r, "limit", defaultMatchLimit, 100)

	jobs, err := s.catalog.ListJobs(r.Context(), catalog.JobFilters{Status: catalog.StatusActive})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	jobRefs := make([]*catalog.Job, len(jobs))
	byID := make(map[string]*catalog.Job, len(jobs))
	for i := range jobs {
		jobRefs[i] = &jobs[i]
		byID[jobs[i].ID.String()] = &jobs[i]
	}

	ranked := matching.Rank(s.engine.Score(r.Context(), &profile, jobRefs), limit)

	matches := make([]matchResponse, 0, len(ranked))
	for _, result := range ranked {
		job := byID[result.JobID.String()]
		matches = append(matches, matchResponse{MatchResult: result, Job: *job})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matches": matches,
		"total":   len(matches),
	})
}

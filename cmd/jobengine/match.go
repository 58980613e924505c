package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/matching"
	"github.com/purplesquirrel/jobengine/internal/types"
)

var matchLimit int

var matchCmd = &cobra.Command{
	Use:   "match <profile.json>",
	Short: "Score catalog jobs against a candidate profile",
	Long:  `Read a candidate profile from a JSON file, score every active catalog job against it, and print the ranked matches as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().IntVar(&matchLimit, "limit", 20, "Maximum number of matches to return")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	d, err := buildDeps(ctx)
	if err != nil {
		return err
	}
	defer d.close()

	jobs, err := d.catalog.ListJobs(ctx, catalog.JobFilters{Status: catalog.StatusActive})
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	jobRefs := make([]*catalog.Job, len(jobs))
	titles := make(map[string]string, len(jobs))
	for i := range jobs {
		jobRefs[i] = &jobs[i]
		titles[jobs[i].ID.String()] = fmt.Sprintf("%s at %s", jobs[i].Title, jobs[i].CompanyName)
	}

	ranked := matching.Rank(d.engine.Score(ctx, &profile, jobRefs), matchLimit)

	type matchLine struct {
		types.MatchResult
		Job string `json:"job"`
	}
	lines := make([]matchLine, 0, len(ranked))
	for _, r := range ranked {
		lines = append(lines, matchLine{MatchResult: r, Job: titles[r.JobID.String()]})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(lines)
}

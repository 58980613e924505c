package aggregate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purplesquirrel/jobengine/internal/types"
)

// fakeSource is a canned adapter for coordinator and service tests.
type fakeSource struct {
	name     string
	listings []types.RawListing
	err      error
	delay    time.Duration
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) FetchListings(ctx context.Context) ([]types.RawListing, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.listings, f.err
}

func listing(platform, externalID, title, company string) types.RawListing {
	return types.RawListing{
		Title:          title,
		Company:        company,
		Remote:         types.RemoteFull,
		SourcePlatform: platform,
		ExternalID:     externalID,
		SourceURL:      "https://example.com/" + externalID,
		PostedAt:       time.Now(),
	}
}

func TestCoordinator_CollectsAllSourcesInOrder(t *testing.T) {
	fast := &fakeSource{name: "fast", listings: []types.RawListing{
		listing("fast", "f1", "Fast One", "Acme"),
	}}
	slow := &fakeSource{name: "slow", delay: 30 * time.Millisecond, listings: []types.RawListing{
		listing("slow", "s1", "Slow One", "Beta"),
		listing("slow", "s2", "Slow Two", "Beta"),
	}}

	all, summary := NewCoordinator(slow, fast).Collect(context.Background())

	require.Len(t, all, 3)
	// Registration order, not completion order.
	assert.Equal(t, "slow", all[0].SourcePlatform)
	assert.Equal(t, "slow", all[1].SourcePlatform)
	assert.Equal(t, "fast", all[2].SourcePlatform)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, map[string]int{"slow": 2, "fast": 1}, summary.Sources)
}

func TestCoordinator_OneFailingSourceDoesNotSuppressOthers(t *testing.T) {
	ok := &fakeSource{name: "ok", listings: []types.RawListing{
		listing("ok", "1", "Fine", "Acme"),
	}}
	broken := &fakeSource{name: "broken", err: errors.New("connection refused")}

	all, summary := NewCoordinator(broken, ok).Collect(context.Background())

	require.Len(t, all, 1)
	assert.Equal(t, "ok", all[0].SourcePlatform)
	assert.Equal(t, 0, summary.Sources["broken"], "failure surfaces as zero listings")
	assert.Equal(t, 1, summary.Sources["ok"])
	assert.Equal(t, 1, summary.Total)
}

func TestCoordinator_NoSources(t *testing.T) {
	all, summary := NewCoordinator().Collect(context.Background())
	assert.Empty(t, all)
	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, summary.Sources)
}

package aggregate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/types"
)

func TestIngestor_ReplayIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemory()
	ing := NewIngestor(store)

	batch := []types.RawListing{
		listing("remoteok", "100", "Backend Engineer", "Acme"),
		listing("remoteok", "101", "Frontend Engineer", "Acme"),
		listing("weworkremotely", "/jobs/9", "Platform Engineer", "Beta"),
	}

	stats, err := ing.Upsert(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, IngestStats{Added: 3}, stats)

	stats, err = ing.Upsert(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, IngestStats{Duplicates: 3}, stats, "second pass adds nothing")

	jobs, err := store.ListJobs(ctx, catalog.JobFilters{})
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func TestIngestor_IneligibleListingsAreDropped(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemory()
	ing := NewIngestor(store)

	noPlatform := listing("", "1", "Mystery Role", "Acme")
	noID := listing("remoteok", "", "Untracked Role", "Acme")
	ok := listing("remoteok", "7", "Real Role", "Acme")

	stats, err := ing.Upsert(ctx, []types.RawListing{noPlatform, noID, ok})
	require.NoError(t, err)
	assert.Equal(t, IngestStats{Added: 1, Dropped: 2}, stats)
}

func TestIngestor_CompaniesMergeBySlug(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemory()
	ing := NewIngestor(store)

	a := listing("remoteok", "1", "Engineer One", "Acme Inc.")
	b := listing("weworkremotely", "/jobs/2", "Engineer Two", "ACME INC")

	_, err := ing.Upsert(ctx, []types.RawListing{a, b})
	require.NoError(t, err)

	company, err := store.FindCompanyBySlug(ctx, "acme-inc")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "Acme Inc.", company.Name, "first sighting names the company")

	jobs, err := store.ListJobs(ctx, catalog.JobFilters{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.Equal(t, company.ID, job.CompanyID)
	}
}

func TestIngestor_LogoOnlySetAtCompanyCreation(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemory()
	ing := NewIngestor(store)

	first := listing("remoteok", "1", "Engineer One", "Acme")
	first.CompanyLogo = "https://cdn.example.com/acme.png"
	second := listing("remoteok", "2", "Engineer Two", "Acme")
	second.CompanyLogo = "https://cdn.example.com/other.png"

	_, err := ing.Upsert(ctx, []types.RawListing{first, second})
	require.NoError(t, err)

	company, err := store.FindCompanyBySlug(ctx, "acme")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "https://cdn.example.com/acme.png", company.LogoURL)
}

func TestIngestor_SalaryBoundsOnlyWhenPositive(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemory()
	ing := NewIngestor(store)

	withSalary := listing("remoteok", "1", "Paid Role", "Acme")
	withSalary.SalaryMin = 120000
	withSalary.SalaryMax = 160000
	without := listing("remoteok", "2", "Quiet Role", "Acme")

	_, err := ing.Upsert(ctx, []types.RawListing{withSalary, without})
	require.NoError(t, err)

	jobs, err := store.ListJobs(ctx, catalog.JobFilters{Search: "Paid"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.NotNil(t, jobs[0].SalaryMin)
	require.NotNil(t, jobs[0].SalaryMax)
	assert.Equal(t, 120000, *jobs[0].SalaryMin)
	assert.Equal(t, 160000, *jobs[0].SalaryMax)

	jobs, err = store.ListJobs(ctx, catalog.JobFilters{Search: "Quiet"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Nil(t, jobs[0].SalaryMin)
	assert.Nil(t, jobs[0].SalaryMax)
}

func TestService_AggregateEndToEnd(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemory()

	src := &fakeSource{name: "remoteok", listings: []types.RawListing{
		listing("remoteok", "1", "Engineer", "Acme"),
		listing("remoteok", "2", "Designer", "Beta"),
		{Title: "No Provenance", Company: "Gamma", PostedAt: time.Now()},
	}}
	broken := &fakeSource{name: "weworkremotely", err: context.DeadlineExceeded}

	svc := NewService(store, src, broken)

	summary, err := svc.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Added)
	assert.Equal(t, 1, summary.Dropped)
	assert.Equal(t, 0, summary.Duplicates)

	summary, err = svc.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Added)
	assert.Equal(t, 2, summary.Duplicates)
	assert.Equal(t, 1, summary.Dropped)
}

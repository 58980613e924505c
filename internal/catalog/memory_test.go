package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purplesquirrel/jobengine/internal/types"
)

func newTestJob(title, platform, externalID string) *Job {
	return &Job{
		CompanyName:    "Acme",
		Title:          title,
		Slug:           Slugify(title),
		Remote:         types.RemoteFull,
		EmploymentType: EmploymentFullTime,
		SalaryCurrency: DefaultCurrency,
		Status:         StatusActive,
		SourcePlatform: platform,
		ExternalID:     externalID,
		PostedAt:       time.Now(),
	}
}

func TestMemory_CreateAndFindByNaturalKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	job := newTestJob("Backend Engineer", "remoteok", "123")
	require.NoError(t, store.CreateJob(ctx, job))
	assert.NotEqual(t, job.ID.String(), "00000000-0000-0000-0000-000000000000")

	found, err := store.FindJobByNaturalKey(ctx, "remoteok", "123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Backend Engineer", found.Title)

	missing, err := store.FindJobByNaturalKey(ctx, "remoteok", "999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemory_CreateJobDuplicateNaturalKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.CreateJob(ctx, newTestJob("First", "remoteok", "123")))
	require.NoError(t, store.CreateJob(ctx, newTestJob("Second", "remoteok", "123")))

	jobs, err := store.ListJobs(ctx, JobFilters{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "First", jobs[0].Title)
}

func TestMemory_ManualJobsWithoutProvenanceNeverCollide(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.CreateJob(ctx, newTestJob("Manual A", "", "")))
	require.NoError(t, store.CreateJob(ctx, newTestJob("Manual B", "", "")))

	jobs, err := store.ListJobs(ctx, JobFilters{})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestMemory_ListJobsFiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	older := newTestJob("DevOps Engineer", "remoteok", "1")
	older.PostedAt = time.Now().Add(-48 * time.Hour)
	older.Remote = types.RemoteOnsite
	older.Location = "Boston, MA"
	older.Skills = []string{"Kubernetes"}

	newer := newTestJob("Frontend Engineer", "remoteok", "2")
	newer.PostedAt = time.Now().Add(-1 * time.Hour)
	newer.Skills = []string{"React"}

	closed := newTestJob("Closed Role", "remoteok", "3")
	closed.Status = StatusClosed

	require.NoError(t, store.CreateJob(ctx, older))
	require.NoError(t, store.CreateJob(ctx, newer))
	require.NoError(t, store.CreateJob(ctx, closed))

	active, err := store.ListJobs(ctx, JobFilters{Status: StatusActive})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Frontend Engineer", active[0].Title, "newest postedAt first")

	bySkill, err := store.ListJobs(ctx, JobFilters{Search: "kubernetes"})
	require.NoError(t, err)
	require.Len(t, bySkill, 1)
	assert.Equal(t, "DevOps Engineer", bySkill[0].Title)

	byLocation, err := store.ListJobs(ctx, JobFilters{Location: "boston"})
	require.NoError(t, err)
	assert.Len(t, byLocation, 1)

	byRemote, err := store.ListJobs(ctx, JobFilters{Remote: types.RemoteOnsite})
	require.NoError(t, err)
	assert.Len(t, byRemote, 1)
}

func TestMemory_Companies(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	company := &Company{Name: "Acme Inc.", Slug: Slugify("Acme Inc.")}
	require.NoError(t, store.CreateCompany(ctx, company))

	found, err := store.FindCompanyBySlug(ctx, "acme-inc")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Acme Inc.", found.Name)

	missing, err := store.FindCompanyBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSeedDemoData_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, SeedDemoData(ctx, store))
	jobs, err := store.ListJobs(ctx, JobFilters{})
	require.NoError(t, err)
	first := len(jobs)
	assert.Equal(t, 5, first)

	require.NoError(t, SeedDemoData(ctx, store))
	jobs, err = store.ListJobs(ctx, JobFilters{})
	require.NoError(t, err)
	assert.Len(t, jobs, first, "re-seeding must not duplicate")
}

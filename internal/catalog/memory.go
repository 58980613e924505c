package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-memory Catalog. It backs tests and runs without a
// configured database. A single mutex serializes writers, so the
// check-then-create sequence in CreateJob is atomic within one process.
type Memory struct {
	mu        sync.RWMutex
	jobs      []Job
	companies []Company
}

// NewMemory returns an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{}
}

// ListJobs returns jobs matching the filters, newest postedAt first.
func (m *Memory) ListJobs(_ context.Context, filters JobFilters) ([]Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		if matchesFilters(&j, filters) {
			result = append(result, j)
		}
	}

	sort.SliceStable(result, func(i, k int) bool {
		return result[i].PostedAt.After(result[k].PostedAt)
	})
	return result, nil
}

// FindJobByNaturalKey scans for the (platform, externalID) pair. A linear
// scan is fine at the catalog sizes this store ever holds.
func (m *Memory) FindJobByNaturalKey(_ context.Context, platform, externalID string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.jobs {
		if m.jobs[i].SourcePlatform == platform && m.jobs[i].ExternalID == externalID {
			j := m.jobs[i]
			return &j, nil
		}
	}
	return nil, nil
}

// CreateJob inserts a job, assigning its ID and CreatedAt. Re-inserting an
// existing natural key is a silent no-op.
func (m *Memory) CreateJob(_ context.Context, job *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if job.SourcePlatform != "" && job.ExternalID != "" {
		for i := range m.jobs {
			if m.jobs[i].SourcePlatform == job.SourcePlatform && m.jobs[i].ExternalID == job.ExternalID {
				return nil
			}
		}
	}

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	m.jobs = append(m.jobs, *job)
	return nil
}

// FindCompanyBySlug returns the company with the given slug, or nil.
func (m *Memory) FindCompanyBySlug(_ context.Context, slug string) (*Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.companies {
		if m.companies[i].Slug == slug {
			c := m.companies[i]
			return &c, nil
		}
	}
	return nil, nil
}

// CreateCompany inserts a company, assigning its ID and CreatedAt.
func (m *Memory) CreateCompany(_ context.Context, company *Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now()
	}
	m.companies = append(m.companies, *company)
	return nil
}

func matchesFilters(j *Job, f JobFilters) bool {
	if f.Status != "" && j.Status != f.Status {
		return false
	}
	if f.Remote != "" && j.Remote != f.Remote {
		return false
	}
	if f.EmploymentType != "" && j.EmploymentType != f.EmploymentType {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.CompanyName), q) &&
			!containsSkill(j.Skills, q) {
			return false
		}
	}
	return true
}

func containsSkill(skills []string, q string) bool {
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

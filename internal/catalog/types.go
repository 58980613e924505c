package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/purplesquirrel/jobengine/internal/types"
)

// JobStatus is the lifecycle state of a catalog job.
type JobStatus string

const (
	StatusActive JobStatus = "ACTIVE"
	StatusClosed JobStatus = "CLOSED"
	StatusDraft  JobStatus = "DRAFT"
)

// EmploymentType classifies the contract offered by a job.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentFreelance  EmploymentType = "FREELANCE"
	EmploymentInternship EmploymentType = "INTERNSHIP"
)

// DefaultCurrency is assumed when a source does not state one.
const DefaultCurrency = "USD"

// Company is a catalog entity owning zero or more jobs. Companies are
// created lazily the first time a listing mentions a new company name;
// the slug is the dedup key.
type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// Job is a catalog entity. Jobs are created once (by manual entry or by the
// dedup engine) and never mutated by the matching path. The provenance
// triple (SourceURL, SourcePlatform, ExternalID) is empty for
// manually-entered jobs.
type Job struct {
	ID             uuid.UUID        `json:"id"`
	CompanyID      uuid.UUID        `json:"company_id"`
	CompanyName    string           `json:"company_name"`
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	Description    string           `json:"description"`
	Location       string           `json:"location,omitempty"`
	Remote         types.RemoteMode `json:"remote"`
	EmploymentType EmploymentType   `json:"employment_type"`
	SalaryMin      *int             `json:"salary_min,omitempty"`
	SalaryMax      *int             `json:"salary_max,omitempty"`
	SalaryCurrency string           `json:"salary_currency"`
	ExperienceMin  *int             `json:"experience_min,omitempty"`
	ExperienceMax  *int             `json:"experience_max,omitempty"`
	Status         JobStatus        `json:"status"`
	SourceURL      string           `json:"source_url,omitempty"`
	SourcePlatform string           `json:"source_platform,omitempty"`
	ExternalID     string           `json:"external_id,omitempty"`
	Skills         []string         `json:"skills,omitempty"`
	PostedAt       time.Time        `json:"posted_at"`
	CreatedAt      time.Time        `json:"created_at"`
}

// JobFilters narrows a ListJobs query. Zero values mean "no filter".
type JobFilters struct {
	Search         string
	Location       string
	Remote         types.RemoteMode
	EmploymentType EmploymentType
	Status         JobStatus
}

// Package catalog provides the job/company catalog consumed by the
// aggregation and matching engines. The engines treat the catalog as an
// injected collaborator behind the Catalog interface; the package ships a
// mutex-guarded in-memory store and a PostgreSQL store.
package catalog

import (
	"context"
	"strings"
)

// Catalog is the narrow read/write surface the engines depend on.
// CreateJob and CreateCompany assign the record's ID and CreatedAt.
type Catalog interface {
	// ListJobs returns jobs matching the filters, newest postedAt first.
	ListJobs(ctx context.Context, filters JobFilters) ([]Job, error)
	// FindJobByNaturalKey returns the job with the given provenance pair,
	// or nil when none exists.
	FindJobByNaturalKey(ctx context.Context, platform, externalID string) (*Job, error)
	// CreateJob inserts a job. Inserting a natural key that already exists
	// is a no-op, not an error.
	CreateJob(ctx context.Context, job *Job) error
	// FindCompanyBySlug returns the company with the given slug, or nil.
	FindCompanyBySlug(ctx context.Context, slug string) (*Company, error)
	// CreateCompany inserts a company.
	CreateCompany(ctx context.Context, company *Company) error
}

// Slugify derives the deterministic slug used as the company dedup key and
// for job URLs: lowercase, runs of non-alphanumerics collapsed to a single
// hyphen, no leading or trailing hyphen. "Acme Inc." and "ACME INC" both
// map to "acme-inc".
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

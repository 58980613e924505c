package aggregate

import (
	"context"
	"fmt"

	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/types"
)

// Ingestor maps raw listings onto the catalog: it rejects listings already
// known by natural key, lazily creates companies by slug, and inserts new
// jobs. Re-running it over the same batch adds nothing the second time.
type Ingestor struct {
	catalog catalog.Catalog
}

// NewIngestor builds an ingestor over the given catalog.
func NewIngestor(cat catalog.Catalog) *Ingestor {
	return &Ingestor{catalog: cat}
}

// IngestStats counts the fate of every listing in a batch.
type IngestStats struct {
	Added      int
	Duplicates int
	Dropped    int
}

// Upsert processes listings in batch order. Catalog failures abort the
// batch (the catalog is this core's one hard dependency); everything else
// is a per-listing skip.
func (in *Ingestor) Upsert(ctx context.Context, listings []types.RawListing) (IngestStats, error) {
	var stats IngestStats

	for i := range listings {
		listing := &listings[i]
		if !listing.Eligible() {
			stats.Dropped++
			continue
		}

		existing, err := in.catalog.FindJobByNaturalKey(ctx, listing.SourcePlatform, listing.ExternalID)
		if err != nil {
			return stats, fmt.Errorf("natural key lookup: %w", err)
		}
		if existing != nil {
			stats.Duplicates++
			continue
		}

		company, err := in.resolveCompany(ctx, listing)
		if err != nil {
			return stats, err
		}

		if err := in.catalog.CreateJob(ctx, jobFromListing(listing, company)); err != nil {
			return stats, fmt.Errorf("create job %q: %w", listing.Title, err)
		}
		stats.Added++
	}
	return stats, nil
}

// resolveCompany finds the company owning a listing by slug, creating it on
// first sight. The listing's logo is only used at creation time; an
// existing company's logo is never overwritten.
func (in *Ingestor) resolveCompany(ctx context.Context, listing *types.RawListing) (*catalog.Company, error) {
	slug := catalog.Slugify(listing.Company)
	company, err := in.catalog.FindCompanyBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("company lookup %q: %w", slug, err)
	}
	if company != nil {
		return company, nil
	}

	company = &catalog.Company{
		Name:    listing.Company,
		Slug:    slug,
		LogoURL: listing.CompanyLogo,
	}
	if err := in.catalog.CreateCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("create company %q: %w", listing.Company, err)
	}
	return company, nil
}

func jobFromListing(listing *types.RawListing, company *catalog.Company) *catalog.Job {
	job := &catalog.Job{
		CompanyID:      company.ID,
		CompanyName:    company.Name,
		Title:          listing.Title,
		Slug:           catalog.Slugify(listing.Title),
		Description:    listing.Description,
		Location:       listing.Location,
		Remote:         listing.Remote,
		EmploymentType: catalog.EmploymentFullTime,
		SalaryCurrency: catalog.DefaultCurrency,
		Status:         catalog.StatusActive,
		SourceURL:      listing.SourceURL,
		SourcePlatform: listing.SourcePlatform,
		ExternalID:     listing.ExternalID,
		Skills:         listing.Skills,
		PostedAt:       listing.PostedAt,
	}
	if listing.SalaryMin > 0 {
		v := listing.SalaryMin
		job.SalaryMin = &v
	}
	if listing.SalaryMax > 0 {
		v := listing.SalaryMax
		job.SalaryMax = &v
	}
	return job
}

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/purplesquirrel/jobengine/internal/fetch"
	"github.com/purplesquirrel/jobengine/internal/types"
)

const (
	remoteOKPlatform   = "remoteok"
	remoteOKDefaultURL = "https://remoteok.com/api"
	remoteOKListingCap = 50
)

// RemoteOK fetches listings from the RemoteOK public API. The API needs no
// auth; its response is a JSON array whose first element is metadata, not a
// job.
type RemoteOK struct {
	BaseURL string
	Limit   int
}

// NewRemoteOK constructs the adapter with production defaults.
func NewRemoteOK() *RemoteOK {
	return &RemoteOK{BaseURL: remoteOKDefaultURL, Limit: remoteOKListingCap}
}

// Name identifies the source platform.
func (r *RemoteOK) Name() string { return remoteOKPlatform }

// remoteOKJob mirrors one RemoteOK API item. The id and salary fields are
// sometimes numbers and sometimes strings, hence json.Number.
type remoteOKJob struct {
	ID          json.Number `json:"id"`
	Position    string      `json:"position"`
	Company     string      `json:"company"`
	CompanyLogo string      `json:"company_logo"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	SalaryMin   json.Number `json:"salary_min"`
	SalaryMax   json.Number `json:"salary_max"`
	Tags        []string    `json:"tags"`
	URL         string      `json:"url"`
	Date        string      `json:"date"`
}

// salaryInt converts a salary field to an int. An absent or unparseable
// value means "not stated", never a failed batch.
func salaryInt(n json.Number) int {
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return int(f)
}

// FetchListings retrieves up to Limit of the most recent RemoteOK jobs.
func (r *RemoteOK) FetchListings(ctx context.Context) ([]types.RawListing, error) {
	var items []remoteOKJob
	if err := fetch.JSON(ctx, r.BaseURL, nil, &items); err != nil {
		return nil, fmt.Errorf("remoteok: %w", err)
	}
	if len(items) <= 1 {
		return nil, nil
	}

	// First item is metadata, rest are jobs.
	jobs := items[1:]
	if len(jobs) > r.Limit {
		jobs = jobs[:r.Limit]
	}

	listings := make([]types.RawListing, 0, len(jobs))
	for _, job := range jobs {
		location := job.Location
		if location == "" {
			location = "Remote"
		}
		postedAt := time.Now()
		if t, err := time.Parse(time.RFC3339, job.Date); err == nil {
			postedAt = t
		}

		listings = append(listings, types.RawListing{
			Title:          job.Position,
			Company:        job.Company,
			CompanyLogo:    job.CompanyLogo,
			Location:       location,
			Remote:         types.RemoteFull,
			Description:    job.Description,
			SalaryMin:      salaryInt(job.SalaryMin),
			SalaryMax:      salaryInt(job.SalaryMax),
			Skills:         job.Tags,
			SourceURL:      job.URL,
			SourcePlatform: remoteOKPlatform,
			ExternalID:     job.ID.String(),
			PostedAt:       postedAt,
		})
	}
	return listings, nil
}

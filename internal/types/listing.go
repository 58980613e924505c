// Package types provides type definitions for structured data shared across the job engine.
package types

import "time"

// RemoteMode describes how location-bound a job is.
type RemoteMode string

const (
	RemoteOnsite RemoteMode = "ONSITE"
	RemoteHybrid RemoteMode = "HYBRID"
	RemoteFull   RemoteMode = "REMOTE"
)

// RawListing is the normalized output of a source adapter. It is ephemeral:
// listings only live between a fetch and the dedup/upsert pass.
type RawListing struct {
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	CompanyLogo    string     `json:"company_logo,omitempty"`
	Location       string     `json:"location,omitempty"`
	Remote         RemoteMode `json:"remote"`
	Description    string     `json:"description"`
	SalaryMin      int        `json:"salary_min,omitempty"`
	SalaryMax      int        `json:"salary_max,omitempty"`
	Skills         []string   `json:"skills,omitempty"`
	SourceURL      string     `json:"source_url"`
	SourcePlatform string     `json:"source_platform"`
	ExternalID     string     `json:"external_id"`
	PostedAt       time.Time  `json:"posted_at"`
}

// Eligible reports whether the listing carries the natural key
// (source platform, external ID) required for ingestion. Listings without
// it are dropped, never stored.
func (l *RawListing) Eligible() bool {
	return l.SourcePlatform != "" && l.ExternalID != ""
}

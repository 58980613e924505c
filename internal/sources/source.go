// Package sources contains one adapter per external job board. Each adapter
// converts a source-specific payload into the normalized RawListing shape
// and isolates that source's failure modes: a failing adapter reports an
// error to the coordinator, which records it as zero listings from that
// source. Adding a source means adding an adapter, never branching inside a
// shared function.
package sources

import (
	"context"

	"github.com/purplesquirrel/jobengine/internal/types"
)

// Source is the uniform capability every adapter implements.
type Source interface {
	// Name identifies the source platform; it becomes the listing's
	// SourcePlatform and the key in aggregation summaries.
	Name() string
	// FetchListings retrieves a bounded batch of the most recent listings.
	FetchListings(ctx context.Context) ([]types.RawListing, error)
}

// Defaults returns the adapter set used in production, in the order their
// listings appear in an aggregation batch.
func Defaults() []Source {
	return []Source{
		NewRemoteOK(),
		NewHackerNews(),
		NewWeWorkRemotely(),
	}
}

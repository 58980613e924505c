// Package aggregate pulls listings from every registered source, merges
// them into the catalog without duplicating previously-seen postings, and
// reports per-source counts.
package aggregate

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/purplesquirrel/jobengine/internal/sources"
	"github.com/purplesquirrel/jobengine/internal/types"
)

// Summary reports the outcome of one aggregation run. Degraded sources and
// dropped listings surface here, not only in logs.
type Summary struct {
	Total      int            `json:"total"`
	Sources    map[string]int `json:"sources"`
	Added      int            `json:"added"`
	Duplicates int            `json:"duplicates"`
	Dropped    int            `json:"dropped"`
}

// Coordinator fans out over all adapters concurrently and gathers their
// results. One source failing, hanging on its own timeout, or returning
// garbage never suppresses another source's listings.
type Coordinator struct {
	sources []sources.Source
}

// NewCoordinator builds a coordinator over the given adapters. Listing
// order in the collected batch follows adapter registration order.
func NewCoordinator(srcs ...sources.Source) *Coordinator {
	return &Coordinator{sources: srcs}
}

// Collect runs every adapter in its own goroutine and waits for all of
// them. Each goroutine writes only its own slot, so no locking is needed.
// Adapter errors are logged and counted as zero listings from that source.
func (c *Coordinator) Collect(ctx context.Context) ([]types.RawListing, Summary) {
	results := make([][]types.RawListing, len(c.sources))

	g, gCtx := errgroup.WithContext(ctx)
	for i, src := range c.sources {
		i, src := i, src
		g.Go(func() error {
			listings, err := src.FetchListings(gCtx)
			if err != nil {
				log.Printf("[aggregate] source %s failed, continuing with 0 listings: %v", src.Name(), err)
				return nil
			}
			results[i] = listings
			return nil
		})
	}
	// Goroutines never return errors; Wait is a pure join.
	_ = g.Wait()

	summary := Summary{Sources: make(map[string]int, len(c.sources))}
	var all []types.RawListing
	for i, src := range c.sources {
		summary.Sources[src.Name()] = len(results[i])
		summary.Total += len(results[i])
		all = append(all, results[i]...)
	}
	return all, summary
}

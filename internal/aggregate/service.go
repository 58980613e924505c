package aggregate

import (
	"context"
	"log"

	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/sources"
)

// Service is the aggregation entry point: collect from all sources, then
// dedup and upsert into the catalog.
type Service struct {
	coordinator *Coordinator
	ingestor    *Ingestor
}

// NewService builds the aggregation pipeline over a catalog and adapter set.
func NewService(cat catalog.Catalog, srcs ...sources.Source) *Service {
	return &Service{
		coordinator: NewCoordinator(srcs...),
		ingestor:    NewIngestor(cat),
	}
}

// Aggregate runs one full aggregation pass and returns its summary. The
// caller receives the summary only after every source has completed.
func (s *Service) Aggregate(ctx context.Context) (Summary, error) {
	log.Printf("[aggregate] starting aggregation run")

	listings, summary := s.coordinator.Collect(ctx)

	stats, err := s.ingestor.Upsert(ctx, listings)
	summary.Added = stats.Added
	summary.Duplicates = stats.Duplicates
	summary.Dropped = stats.Dropped
	if err != nil {
		return summary, err
	}

	log.Printf("[aggregate] run complete: total=%d added=%d duplicates=%d dropped=%d",
		summary.Total, summary.Added, summary.Duplicates, summary.Dropped)
	return summary, nil
}

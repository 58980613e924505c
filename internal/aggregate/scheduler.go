package aggregate

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron and triggers a full aggregation run on a
// fixed interval. Runs are serialized: a tick that fires while the previous
// run is still going is skipped, so two runs never race on the same
// natural keys.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	spec    string
	busy    chan struct{}
}

// NewScheduler creates a scheduler that fires every intervalHours hours.
func NewScheduler(service *Service, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		service: service,
		spec:    fmt.Sprintf("@every %dh", intervalHours),
		busy:    make(chan struct{}, 1),
	}
}

// Start registers the job and starts the cron loop. One run fires
// immediately so the catalog is populated without waiting for the first
// tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] cron started with spec %s", s.spec)

	go s.run(ctx)
	return nil
}

// Stop shuts down the cron loop. Already-running aggregations finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Printf("[scheduler] cron stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	select {
	case s.busy <- struct{}{}:
		defer func() { <-s.busy }()
	default:
		log.Printf("[scheduler] previous aggregation still running, skipping tick")
		return
	}

	if _, err := s.service.Aggregate(ctx); err != nil {
		log.Printf("[scheduler] aggregation failed: %v", err)
	}
}

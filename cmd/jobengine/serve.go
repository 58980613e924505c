package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/purplesquirrel/jobengine/internal/aggregate"
	"github.com/purplesquirrel/jobengine/internal/server"
)

var (
	servePort   int
	serveNoCron bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing aggregation, job listing, and candidate matching endpoints, with scheduled background aggregation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveNoCron, "no-cron", false, "Disable scheduled background aggregation")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	d, err := buildDeps(ctx)
	if err != nil {
		return err
	}
	defer d.close()

	port := d.cfg.Port
	if servePort > 0 {
		port = servePort
	}

	if !serveNoCron {
		scheduler := aggregate.NewScheduler(d.aggregator, d.cfg.AggregateIntervalHours)
		if err := scheduler.Start(ctx); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer scheduler.Stop()
	}

	srv := server.New(server.Config{Port: port}, d.catalog, d.aggregator, d.engine)
	return srv.Start()
}

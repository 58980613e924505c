package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Run one aggregation pass and print the summary",
	Long:  `Fetch listings from every configured source, merge them into the catalog, and print the run summary as JSON.`,
	RunE:  runAggregate,
}

func init() {
	rootCmd.AddCommand(aggregateCmd)
}

func runAggregate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	d, err := buildDeps(ctx)
	if err != nil {
		return err
	}
	defer d.close()

	summary, err := d.aggregator.Aggregate(ctx)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

// Package main provides the entry point for the job engine CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobengine",
	Short: "Job aggregation and candidate matching engine",
	Long:  "jobengine pulls job postings from external sources into a unified catalog and ranks them against candidate profiles with a multi-factor scoring heuristic.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the VibeScout CLI. Uses Cobra for command parsing.
//
// Run with: go run ./cmd/cli discover --location Lagos --budget 50 --occasion birthday
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/config"
	"github.com/vibescout/vibescout/internal/model"
	"github.com/vibescout/vibescout/internal/server"
	"github.com/vibescout/vibescout/internal/storage"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vibescout",
		Short: "VibeScout venue discovery tools",
	}

	root.AddCommand(discoverCmd())
	root.AddCommand(historyCmd())
	return root
}

func discoverCmd() *cobra.Command {
	var (
		location string
		budget   float64
		age      int
		occasion string
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Run a discovery from the terminal and print the results as JSON",
		// RunE returns an error (vs Run which doesn't); Cobra prints it automatically.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscover(cmd.Context(), model.SearchParameters{
				Location: location,
				Budget:   budget,
				Age:      age,
				Occasion: occasion,
			})
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "City or area to search (required)")
	cmd.Flags().Float64Var(&budget, "budget", 50, "Budget in dollars per person")
	cmd.Flags().IntVar(&age, "age", 25, "Age of the outing party")
	cmd.Flags().StringVar(&occasion, "occasion", "night out", "Occasion, free text")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent recorded discovery runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")
	return cmd
}

func runDiscover(ctx context.Context, params model.SearchParameters) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	deps, err := server.BuildDeps(cfg, logger)
	if err != nil {
		return fmt.Errorf("wiring dependencies: %w", err)
	}
	defer func() { _ = deps.Close() }()

	result := deps.Orchestrator.RunDiscovery(ctx, params)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runHistory(ctx context.Context, limit int) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := storage.NewDatabase(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	runs, err := storage.NewRunRepository(db).ListRecent(ctx, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}
	for _, r := range runs {
		mode := "live"
		if r.UsedFallback {
			mode = "fallback"
		}
		fmt.Printf("%s  %-20s %-15s venues=%d %s (%dms)\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Location, r.Occasion, r.VenueCount, mode, r.DurationMs)
	}
	return nil
}

// setup loads config and builds a development-mode logger (CLI output is for
// humans, not log shippers).
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(os.Getenv("VIBESCOUT_CONFIG_PATH"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	return cfg, logger, nil
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rocket-sim/rocket-sim/rocket"
	_ "github.com/rocket-sim/rocket-sim/rocket/ascent" // registers the vertical ascent model
	"github.com/rocket-sim/rocket-sim/rocket/search"
)

var (
	// CLI flags for the search loop
	seed        int64  // Seed for candidate sampling
	iterations  int64  // Trial budget across all workers
	workers     int    // Number of evaluation goroutines
	logLevel    string // Log verbosity level
	strategy    string // Candidate source: mutate, random, exhaustive
	minParts    int    // Shortest candidate length (random strategy)
	maxParts    int    // Longest candidate length (random, exhaustive)
	startParts  string // Comma-separated base sequence for the mutation climb
	catalogPath string // Part catalog YAML; empty means the built-in stock set
	ascentModel string // Burnout trajectory model: impulse, vertical

	// CLI flags for candidate constraints
	maxLaunchMass    float64 // Pad mass ceiling in tonnes
	minTWR           float64 // Bottom stage thrust-to-weight floor
	minSecondTWR     float64 // Second stage thrust-to-weight floor; 0 disables
	requirePod       bool    // Final stage must carry a command pod
	requireParachute bool    // Final stage must carry a parachute
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "rocket-sim",
	Short: "Brute-force configuration search over stock rocket parts",
}

// searchCmd runs the delta-v search using parameters from CLI flags
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search part sequences for the highest delta-v rocket",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		catalog := mustCatalog()
		evaluator, err := rocket.NewEvaluator(constraintsFromFlags(), ascentModel)
		if err != nil {
			logrus.Fatalf("Invalid evaluator setup: %v", err)
		}

		cfg := search.DefaultConfig()
		cfg.Seed = seed
		cfg.Iterations = iterations
		cfg.Workers = workers
		cfg.Strategy = strategy
		cfg.MinParts = minParts
		cfg.MaxParts = maxParts
		cfg.Start = splitPartList(startParts)

		source, err := search.NewCandidateSource(cfg.Strategy, catalog, cfg)
		if err != nil {
			logrus.Fatalf("Invalid candidate source: %v", err)
		}
		driver, err := search.NewDriver(cfg, evaluator, source, os.Stdout)
		if err != nil {
			logrus.Fatalf("Invalid search config: %v", err)
		}

		logrus.Infof("Starting search: strategy=%s seed=%d iterations=%d workers=%d",
			cfg.Strategy, cfg.Seed, cfg.Iterations, cfg.Workers)

		// Interrupt cancels the workers between trials; the best found so
		// far is still reported.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		startTime := time.Now()
		best, err := driver.Search(ctx)
		if err != nil {
			logrus.Fatalf("Search failed: %v", err)
		}
		logrus.Infof("Search complete in %s: best delta-v %dm/s with %d parts",
			time.Since(startTime).Round(time.Millisecond), int(best.TotalDeltaV), best.PartCount)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// mustCatalog loads the catalog selected by --catalog, or the built-in
// stock set when the flag is empty.
func mustCatalog() *rocket.Catalog {
	if catalogPath == "" {
		return rocket.DefaultCatalog()
	}
	catalog, err := rocket.LoadCatalog(catalogPath)
	if err != nil {
		logrus.Fatalf("Failed to load catalog: %v", err)
	}
	return catalog
}

// constraintsFromFlags collects the constraint flags into a Constraints.
func constraintsFromFlags() rocket.Constraints {
	return rocket.Constraints{
		MaxLaunchMass:     maxLaunchMass,
		MinTWR:            minTWR,
		MinSecondStageTWR: minSecondTWR,
		RequirePod:        requirePod,
		RequireParachute:  requireParachute,
	}
}

// splitPartList splits a comma-separated part list, trimming whitespace and
// dropping empty entries. Part names may contain spaces, so comma is the
// only separator.
func splitPartList(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// registerCommonFlags attaches the flags every subcommand understands.
func registerCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Part catalog YAML file (default: built-in stock parts)")
}

// init sets up CLI flags and subcommands
func init() {
	registerCommonFlags(searchCmd)
	searchCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for candidate sampling")
	searchCmd.Flags().Int64Var(&iterations, "iterations", 10000, "Number of candidate rockets to evaluate")
	searchCmd.Flags().IntVar(&workers, "workers", 1, "Number of evaluation goroutines (1 is fully deterministic)")
	searchCmd.Flags().StringVar(&strategy, "strategy", search.StrategyMutate, "Search strategy (mutate, random, exhaustive)")
	searchCmd.Flags().IntVar(&minParts, "min-parts", 1, "Minimum candidate length for the random strategy")
	searchCmd.Flags().IntVar(&maxParts, "max-parts", 16, "Maximum candidate length for random and exhaustive strategies")
	searchCmd.Flags().StringVar(&startParts, "start", "", "Comma-separated base sequence for the mutation climb (default: built-in two-stage rocket)")
	searchCmd.Flags().StringVar(&ascentModel, "ascent", rocket.AscentImpulse, "Burnout trajectory model (impulse, vertical)")

	// Candidate constraints
	searchCmd.Flags().Float64Var(&maxLaunchMass, "max-launch-mass", 18.0, "Reject rockets at or above this pad mass (tonnes)")
	searchCmd.Flags().Float64Var(&minTWR, "min-twr", 2.0, "Reject rockets whose bottom stage TWR is at or below this")
	searchCmd.Flags().Float64Var(&minSecondTWR, "min-second-stage-twr", 0.0, "Reject rockets whose second stage TWR is at or below this (0 disables)")
	searchCmd.Flags().BoolVar(&requirePod, "require-pod", false, "Require a command pod in the final stage")
	searchCmd.Flags().BoolVar(&requireParachute, "require-parachute", false, "Require a parachute in the final stage")

	// Attach `search` as a subcommand to `root`
	rootCmd.AddCommand(searchCmd)
}

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rocket-sim/rocket-sim/rocket"
)

var evaluateParts string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [part ...]",
	Short: "Evaluate one part sequence and print its flight report",
	Long: "Evaluate a single rocket given as part names, bottom of the stack first, " +
		"and print the per-stage and whole-rocket report. Names are passed as " +
		"arguments or via --parts as a comma-separated list (names contain spaces).",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		names := args
		if evaluateParts != "" {
			names = splitPartList(evaluateParts)
		}
		if len(names) == 0 {
			logrus.Fatalf("No parts given: pass part names as arguments or --parts")
		}

		catalog := mustCatalog()
		parts, err := catalog.Parts(names...)
		if err != nil {
			logrus.Fatalf("Unknown part: %v", err)
		}

		evaluator, err := rocket.NewEvaluator(constraintsFromFlags(), ascentModel)
		if err != nil {
			logrus.Fatalf("Invalid evaluator setup: %v", err)
		}
		result, err := evaluator.Evaluate(parts)
		if err != nil {
			logrus.Fatalf("Evaluation failed: %v", err)
		}

		rocket.WriteReport(os.Stdout, result)
		if !result.PassesConstraints {
			logrus.Warnf("Rocket fails constraints (launch mass %.2ft, TWR %.4f)",
				result.LaunchMass, result.OverallTWR)
		}
	},
}

func init() {
	registerCommonFlags(evaluateCmd)
	evaluateCmd.Flags().StringVar(&evaluateParts, "parts", "", "Comma-separated part sequence, bottom of the stack first")
	evaluateCmd.Flags().StringVar(&ascentModel, "ascent", rocket.AscentImpulse, "Burnout trajectory model (impulse, vertical)")
	evaluateCmd.Flags().Float64Var(&maxLaunchMass, "max-launch-mass", 18.0, "Pad mass ceiling for the constraint check (tonnes)")
	evaluateCmd.Flags().Float64Var(&minTWR, "min-twr", 2.0, "Bottom stage TWR floor for the constraint check")

	rootCmd.AddCommand(evaluateCmd)
}

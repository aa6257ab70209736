package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "List the part catalog",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		catalog := mustCatalog()
		fmt.Printf("%-18s %-14s %9s %9s %12s %12s %9s %9s\n",
			"NAME", "CATEGORY", "DRY (t)", "FUEL (t)", "THRUST ASL", "THRUST VAC", "ISP ASL", "ISP VAC")
		for _, p := range catalog.List() {
			fmt.Printf("%-18s %-14s %9.4f %9.4f %12.2f %12.2f %9.0f %9.0f\n",
				p.Name, p.Category, p.DryMass, p.FuelMass, p.ThrustASL, p.ThrustVac, p.ISPASL, p.ISPVac)
		}
	},
}

func init() {
	registerCommonFlags(partsCmd)
	rootCmd.AddCommand(partsCmd)
}

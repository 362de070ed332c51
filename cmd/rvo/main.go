package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvo/rentvsown-calculator/internal/calculation"
	"github.com/rvo/rentvsown-calculator/internal/config"
	"github.com/rvo/rentvsown-calculator/internal/output"
	"github.com/rvo/rentvsown-calculator/pkg/logger"
)

var (
	debugFlag  bool
	formatFlag string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rvo",
		Short: "Rent vs. own wealth comparison calculator",
		Long: `rvo projects year-by-year net wealth for buying a home versus renting
while investing the cash difference, over a fixed 15-year horizon.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	compareCmd := &cobra.Command{
		Use:   "compare <assumptions.yaml>",
		Short: "Run the comparison for an assumptions file and write a report",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}
	compareCmd.Flags().StringVar(&formatFlag, "format", "console", "output format (console, csv, detailed-csv, json)")

	exampleCmd := &cobra.Command{
		Use:   "example <output.yaml>",
		Short: "Write an example assumptions file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.WriteExampleFile(args[0]); err != nil {
				return err
			}
			fmt.Printf("Wrote example assumptions to %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(compareCmd, exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	assumptions, err := parser.LoadFromFile(args[0])
	if err != nil {
		return err
	}

	engine := calculation.NewProjectionEngine()
	if debugFlag {
		log := logger.New(logger.Config{Level: "debug", Pretty: true})
		engine.SetLogger(logger.EngineAdapter{Log: log})
	}

	comparison, err := engine.RunComparison(assumptions)
	if err != nil {
		return err
	}

	if err := output.GenerateReport(comparison, formatFlag); err != nil {
		return err
	}

	for _, m := range comparison.Milestones {
		fmt.Printf("Year %2d: %s (%s)\n", m.Year, output.FormatCurrency(m.Benefit), m.Winner)
	}
	return nil
}

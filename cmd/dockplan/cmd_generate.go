package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/dockplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/dockplan/pkg/interfaces/cli/commands"
)

var (
	generateConfig commands.GenerateConfig
	generateStart  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random scheduling scenario",
	Long: `Generate writes purchase_orders.csv and dock_slots.csv into the output
directory. A fixed --seed reproduces the same scenario.`,
	RunE: runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.IntVar(&generateConfig.Orders, "orders", 20, "Number of purchase orders")
	flags.IntVar(&generateConfig.MaxLines, "max-lines", 5, "Maximum lines per purchase order")
	flags.IntVar(&generateConfig.Docks, "docks", 3, "Number of docks")
	flags.IntVar(&generateConfig.Slots, "slots", 8, "Number of consecutive slots")
	flags.IntVar(&generateConfig.SlotMinutes, "slot-minutes", 60, "Length of each slot in minutes")
	flags.IntVar(&generateConfig.MaxCapacity, "max-capacity", 100, "Largest dock capacity in a slot")
	flags.StringVar(&generateStart, "start", "", "First slot start, e.g. 2018-08-01T06:00:00 (default next midnight UTC)")
	flags.StringVarP(&generateConfig.OutputDir, "output", "o", ".", "Output directory for generated files")
	flags.Int64Var(&generateConfig.Seed, "seed", 0, "Random seed (0 uses the current time)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config := generateConfig
	config.Verbose = verbose

	if generateStart != "" {
		start, err := csv.ParseTimestamp(generateStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		config.Start = start
	}

	command := commands.NewGenerateCommand(config)
	command.SetOutput(cmd.OutOrStdout())

	return command.Execute(cmd.Context())
}

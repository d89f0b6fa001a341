package main

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/dockplan/pkg/domain/repositories"
	"github.com/vsinha/dockplan/pkg/interfaces/cli/commands"
)

var (
	schedulePOFile   string
	scheduleDockFile string
	scheduleOutput   string
	scheduleFormat   string
	scheduleSave     bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Assign PO line items to dock slots",
	Long: `Schedule reads PO lines from a CSV file and assigns them to dock slots.

Dock slots come from --docks when given, otherwise from the database.

Examples:
  # Schedule against a dock slot file and print a text report
  dockplan schedule --po purchase_orders.csv --docks dock_slots.csv

  # Schedule against stored dock slots and keep the inbounds
  dockplan schedule --po purchase_orders.csv --save --format csv --output out/
`,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&schedulePOFile, "po", "", "Path to PO lines CSV file (required)")
	scheduleCmd.Flags().StringVar(&scheduleDockFile, "docks", "", "Path to dock slots CSV file")
	scheduleCmd.Flags().StringVarP(&scheduleOutput, "output", "o", "", "Output directory for results")
	scheduleCmd.Flags().StringVarP(&scheduleFormat, "format", "f", "text", "Output format: text, json, csv, gantt")
	scheduleCmd.Flags().BoolVar(&scheduleSave, "save", false, "Store scheduled inbounds in the database")
	_ = scheduleCmd.MarkFlagRequired("po")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	var (
		docks    repositories.DockSlotRepository
		inbounds repositories.InboundRepository
	)
	if scheduleDockFile == "" || scheduleSave {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		docks, inbounds = store, store
	}

	command := commands.NewScheduleCommand(commands.ScheduleConfig{
		POFile:    schedulePOFile,
		DockFile:  scheduleDockFile,
		OutputDir: outputDir(cmd, scheduleOutput),
		Format:    outputFormat(cmd, scheduleFormat),
		Save:      scheduleSave,
		Verbose:   verbose,
	}, docks, inbounds, logger)
	command.SetOutput(cmd.OutOrStdout())

	return command.Execute(cmd.Context())
}

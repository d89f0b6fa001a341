package main

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/dockplan/pkg/interfaces/cli/commands"
)

var (
	historyDock   string
	historyDate   string
	historyFormat string
	historyOutput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored inbounds",
	Long: `History lists inbounds saved by earlier schedule runs.

--date matches records whose slot starts or ends on that day (YYYY-MM-DD).`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDock, "dock", "", "Only show this dock")
	historyCmd.Flags().StringVar(&historyDate, "date", "", "Only show slots on this date (YYYY-MM-DD)")
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "text", "Output format: text, json, csv")
	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "Output directory for results")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	command := commands.NewHistoryCommand(commands.HistoryConfig{
		DockID:    historyDock,
		SlotDate:  historyDate,
		Format:    outputFormat(cmd, historyFormat),
		OutputDir: outputDir(cmd, historyOutput),
	}, store)
	command.SetOutput(cmd.OutOrStdout())

	return command.Execute(cmd.Context())
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/dockplan/pkg/interfaces/cli/commands"
)

var docksFile string

var docksCmd = &cobra.Command{
	Use:   "docks",
	Short: "Manage stored dock slots",
}

var docksImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import dock slots from a CSV file",
	Long: `Import dock slots into the database.

A slot already stored for the same dock, start and end gets the new capacity.`,
	RunE: runDocksImport,
}

func init() {
	docksImportCmd.Flags().StringVar(&docksFile, "file", "", "Path to dock slots CSV file (required)")
	_ = docksImportCmd.MarkFlagRequired("file")
	docksCmd.AddCommand(docksImportCmd)
	rootCmd.AddCommand(docksCmd)
}

func runDocksImport(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	command := commands.NewImportDocksCommand(commands.ImportDocksConfig{
		DockFile: docksFile,
		Verbose:  verbose,
	}, store)
	command.SetOutput(cmd.OutOrStdout())

	return command.Execute(cmd.Context())
}

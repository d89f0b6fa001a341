package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vsinha/dockplan/pkg/infrastructure/config"
	"github.com/vsinha/dockplan/pkg/infrastructure/logging"
	"github.com/vsinha/dockplan/pkg/infrastructure/repositories/database"
)

var (
	logger zerolog.Logger
	cfg    *config.Config

	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "dockplan",
	Short: "Dockplan - warehouse dock slot scheduling",
	Long: `Dockplan assigns purchase order line items to warehouse dock time slots.

Dock slots and PO lines are read from CSV files. Dock slots and scheduled
inbounds can be kept in a database and served over HTTP.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it)
func loadConfig() error {
	var err error
	cfg, err = config.LoadFile(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = logging.Setup(cfg.Environment)
	return nil
}

// openStore connects to the configured database and migrates its schema.
// The returned func closes the connection.
func openStore() (*database.Store, func(), error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}

	closeDB := func() {
		if err := database.Close(db); err != nil {
			logger.Error().Err(err).Msg("close database")
		}
	}
	return database.NewStore(db), closeDB, nil
}

// outputFormat falls back to the configured format when the flag is unset
func outputFormat(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("format") {
		return flagValue
	}
	return cfg.OutputFormat
}

// outputDir falls back to the configured directory when the flag is unset
func outputDir(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("output") {
		return flagValue
	}
	return cfg.OutputDir
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vsinha/dockplan/pkg/infrastructure/events"
	httpapi "github.com/vsinha/dockplan/pkg/interfaces/http"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  "Serve dock uploads, PO scheduling and inbound history over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	eventStore := events.NewInMemoryEventStoreWithLogger(logger)
	if err := eventStore.Subscribe(events.SchedulingEventTypes, events.NewLogHandler(logger)); err != nil {
		return err
	}

	addr := cfg.HTTPAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	api := httpapi.New(store, store, logger, httpapi.WithEventStore(eventStore))
	server := httpapi.NewServer(addr, httpapi.NewRouter(api, logger), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("backend", string(cfg.DBBackend)).Msg("dockplan starting")
	if err := server.Run(ctx); err != nil {
		return err
	}
	logger.Info().Msg("dockplan stopped")
	return nil
}

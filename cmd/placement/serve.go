package main

import (
	"fmt"

	"github.com/jonathan/placement-prep/internal/server"
	"github.com/jonathan/placement-prep/internal/users"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web client",
	Long: "Start an HTTP server that hosts the built client, the user-record endpoints, " +
		"/health and /metrics. Uses PostgreSQL for users when DATABASE_URL is set, memory otherwise.",
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}

	store := users.Open(cmd.Context(), cfg.Database, log)
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("failed to close user store", nil)
		}
	}()

	srv, err := server.New(cfg, store, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(cmd.Context())
}

// Package main provides the placement command: analyze job descriptions, review past
// results and serve the web client.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// errReported means the user already saw a message; exit non-zero without repeating it.
var errReported = errors.New("reported")

var (
	configFile string

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "placement",
	Short: "Placement preparation from a job description",
	Long: "placement extracts skills from a job description and builds a readiness score, " +
		"a 7-day plan, an interview checklist and likely questions. Results are kept in a local history.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadRuntime,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: ./config.yaml or ./configs/config.yaml)")
}

func loadRuntime(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}
	l, err := logger.NewStructured(loaded.Logging.Level, loaded.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	cfg, log = loaded, l
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

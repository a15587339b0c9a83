package main

import (
	"errors"

	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/jonathan/placement-prep/internal/prep"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results [ID]",
	Short: "Show a saved result",
	Long:  "Show the saved result with the given ID. Without an ID, or when the ID is unknown, the most recent result is shown.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResults,
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	var id string
	if len(args) == 1 {
		id = args[0]
	}

	svc, closeStore, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := svc.Result(cmd.Context(), id)
	if errors.Is(err, prep.ErrNoResults) {
		observability.NewPrinter(cmd.OutOrStdout()).PrintNotice("No analysis found", "Run `placement analyze` to create one.")
		return nil
	}
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintResult(result)
	return nil
}

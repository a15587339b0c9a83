package main

import (
	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past analyses, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	svc, closeStore, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	all, err := svc.History(cmd.Context())
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintHistory(all)
	return nil
}

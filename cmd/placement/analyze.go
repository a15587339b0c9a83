package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jonathan/placement-prep/internal/history"
	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/jonathan/placement-prep/internal/prep"
	"github.com/jonathan/placement-prep/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and save the result",
	Long: "Read a job description from a file (or - for stdin), extract skills, build the plan, " +
		"checklist and questions, save the result to history and print it.",
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

var (
	analyzeJDFile  string
	analyzeCompany string
	analyzeRole    string
	analyzeDelay   time.Duration
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd", "", "Path to the job description text, or - for stdin (required)")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Role title")
	analyzeCmd.Flags().DurationVar(&analyzeDelay, "delay", 0, "Pause before analyzing (default from config)")
	_ = analyzeCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	jd, err := readJD(analyzeJDFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	delay := cfg.Analysis.Delay
	if cmd.Flags().Changed("delay") {
		delay = analyzeDelay
	}

	svc, closeStore, err := openService(cmd.Context(), prep.WithDelay(delay))
	if err != nil {
		return err
	}
	defer closeStore()

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if delay > 0 && strings.TrimSpace(jd) != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Analyzing...")
	}

	result, err := svc.Analyze(cmd.Context(), types.AnalyzeRequest{
		JDText:  jd,
		Company: analyzeCompany,
		Role:    analyzeRole,
	})
	if err != nil {
		return reportAnalyzeError(observability.NewPrinter(cmd.ErrOrStderr()), err)
	}

	printer.PrintResult(result)
	return nil
}

// reportAnalyzeError shows the user-facing message for err.
func reportAnalyzeError(p *observability.Printer, err error) error {
	switch {
	case errors.Is(err, prep.ErrInputRequired):
		p.PrintNotice("Input Required", "Please paste a job description to analyze.")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		p.PrintNotice("Analysis Canceled", "No result was saved.")
	case errors.Is(err, prep.ErrAnalysisFailed):
		p.PrintNotice("Analysis Failed", "Something went wrong. Please try again.")
	default:
		return err
	}
	return errReported
}

func readJD(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read job description from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	return string(data), nil
}

// openService opens the configured history backend and wraps it in a prep.Service.
func openService(ctx context.Context, opts ...prep.Option) (*prep.Service, func(), error) {
	store, err := history.Open(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history: %w", err)
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("failed to close history store", nil)
		}
	}
	return prep.NewService(store, log, opts...), closeStore, nil
}

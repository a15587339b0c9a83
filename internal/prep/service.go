// Package prep runs analyses on behalf of a user and keeps their history.
package prep

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/history"
	"github.com/jonathan/placement-prep/internal/logger"
	"github.com/jonathan/placement-prep/internal/metrics"
	"github.com/jonathan/placement-prep/internal/types"
)

var (
	// ErrInputRequired is returned for a blank job description.
	ErrInputRequired = errors.New("input required: please paste a job description to analyze")
	// ErrAnalysisFailed covers every failure after input validation.
	ErrAnalysisFailed = errors.New("analysis failed: something went wrong, please try again")
	// ErrNoResults is returned when there is no history to show.
	ErrNoResults = errors.New("no analysis results yet")
)

// AnalyzeFunc produces a result from the three inputs.
type AnalyzeFunc func(jdText, company, role string) *types.AnalysisResult

// Service is the analysis, results and history flow over an injected repository.
type Service struct {
	repo    history.Repository
	log     logger.Logger
	delay   time.Duration
	analyze AnalyzeFunc
}

// Option configures a Service.
type Option func(*Service)

// WithDelay sets the pause before each analysis.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithAnalyzer replaces the analysis function.
func WithAnalyzer(fn AnalyzeFunc) Option {
	return func(s *Service) { s.analyze = fn }
}

// NewService creates a Service.
func NewService(repo history.Repository, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		log:     log,
		analyze: analysis.Analyze,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze validates the request, waits the configured delay, runs the analysis and
// stores the result at the front of the history. If ctx ends during the delay, nothing
// is stored and ctx's error is returned. The same holds when the save is cut short by ctx.
func (s *Service) Analyze(ctx context.Context, req types.AnalyzeRequest) (*types.AnalysisResult, error) {
	if strings.TrimSpace(req.JDText) == "" {
		metrics.Analyses.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, ErrInputRequired
	}
	if err := req.Validate(); err != nil {
		metrics.Analyses.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	if err := s.wait(ctx); err != nil {
		metrics.Analyses.WithLabelValues(metrics.OutcomeCanceled).Inc()
		return nil, err
	}

	result, err := s.run(req)
	if err != nil {
		s.log.WithError(err).Error("analysis failed", nil)
		metrics.Analyses.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, ErrAnalysisFailed
	}

	if err := s.repo.Append(ctx, result); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			metrics.Analyses.WithLabelValues(metrics.OutcomeCanceled).Inc()
			return nil, ctxErr
		}
		s.log.WithError(err).Error("failed to save analysis", map[string]interface{}{
			"analysis_id": result.ID,
		})
		metrics.Analyses.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, ErrAnalysisFailed
	}

	metrics.Analyses.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.ReadinessScore.Observe(float64(result.ReadinessScore))
	s.log.Info("analysis saved", map[string]interface{}{
		"analysis_id":     result.ID,
		"readiness_score": result.ReadinessScore,
		"skills":          len(result.ExtractedSkills),
	})
	return result, nil
}

// Result returns the result with the given id. An empty or unknown id falls back to the
// most recent result.
func (s *Service) Result(ctx context.Context, id string) (*types.AnalysisResult, error) {
	if id != "" {
		r, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get result %s: %w", id, err)
		}
		if r != nil {
			return r, nil
		}
		s.log.Debug("result not found, showing most recent", map[string]interface{}{"analysis_id": id})
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	if len(all) == 0 {
		return nil, ErrNoResults
	}
	return &all[0], nil
}

// History returns every stored result, newest first.
func (s *Service) History(ctx context.Context) ([]types.AnalysisResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return all, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// run invokes the analyzer, turning a panic into an error.
func (s *Service) run(req types.AnalyzeRequest) (result *types.AnalysisResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("analysis panicked: %v", p)
		}
	}()
	result = s.analyze(req.JDText, req.Company, req.Role)
	if result == nil {
		return nil, errors.New("analysis returned no result")
	}
	return result, nil
}

// Package history stores past analysis results, newest first.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/placement-prep/internal/schemas"
	"github.com/jonathan/placement-prep/internal/types"
)

// Repository is the analysis history. Results are never mutated or deleted.
type Repository interface {
	// List returns every result, newest first.
	List(ctx context.Context) ([]types.AnalysisResult, error)
	// Append inserts r at the front.
	Append(ctx context.Context, r *types.AnalysisResult) error
	// Get returns the result with the given id, or nil if there is none.
	Get(ctx context.Context, id string) (*types.AnalysisResult, error)
}

// Store is a Repository that holds resources.
type Store interface {
	Repository
	io.Closer
}

// decode validates and parses a stored history blob. An empty blob is an empty history.
func decode(data []byte) ([]types.AnalysisResult, error) {
	if len(data) == 0 {
		return []types.AnalysisResult{}, nil
	}
	if err := schemas.ValidateHistory(data); err != nil {
		return nil, fmt.Errorf("stored history is invalid: %w", err)
	}
	var results []types.AnalysisResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return results, nil
}

func encode(results []types.AnalysisResult) ([]byte, error) {
	data, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history: %w", err)
	}
	return data, nil
}

func prepend(results []types.AnalysisResult, r *types.AnalysisResult) []types.AnalysisResult {
	out := make([]types.AnalysisResult, 0, len(results)+1)
	out = append(out, r.Clone())
	return append(out, results...)
}

func find(results []types.AnalysisResult, id string) *types.AnalysisResult {
	for i := range results {
		if results[i].ID == id {
			r := results[i].Clone()
			return &r
		}
	}
	return nil
}

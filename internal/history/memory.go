package history

import (
	"context"
	"sync"

	"github.com/jonathan/placement-prep/internal/types"
)

// MemoryStore keeps history for the life of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	results []types.AnalysisResult
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) List(_ context.Context) ([]types.AnalysisResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.AnalysisResult, len(m.results))
	for i, r := range m.results {
		out[i] = r.Clone()
	}
	return out, nil
}

func (m *MemoryStore) Append(_ context.Context, r *types.AnalysisResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results = prepend(m.results, r)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*types.AnalysisResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return find(m.results, id), nil
}

func (m *MemoryStore) Close() error { return nil }

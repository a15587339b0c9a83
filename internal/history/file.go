package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jonathan/placement-prep/internal/types"
)

// FileStore keeps the whole history as one JSON array in a single file. Every append
// reads the file in full and replaces it in full via rename. Writers in other processes
// are not coordinated: the last rename wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by path. The parent directory is created on the
// first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) List(ctx context.Context) ([]types.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileStore) Append(ctx context.Context, r *types.AnalysisResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	results, err := f.read()
	if err != nil {
		return err
	}
	data, err := encode(prepend(results, r))
	if err != nil {
		return err
	}
	return f.write(data)
}

func (f *FileStore) Get(ctx context.Context, id string) (*types.AnalysisResult, error) {
	results, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	return find(results, id), nil
}

func (f *FileStore) Close() error { return nil }

func (f *FileStore) read() ([]types.AnalysisResult, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []types.AnalysisResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history file %s: %w", f.path, err)
	}
	return decode(data)
}

func (f *FileStore) write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec // already failing
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close() //nolint:errcheck,gosec // already failing
		return fmt.Errorf("failed to sync history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close history temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

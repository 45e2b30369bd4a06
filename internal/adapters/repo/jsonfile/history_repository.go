package jsonfile

import (
	"context"
	"sync"

	"github.com/bnema/cave/internal/ports"
)

// HistoryRepository stores the history log as a JSON array of strings.
type HistoryRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.HistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository(path string) (*HistoryRepository, error) {
	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &HistoryRepository{path: normalized, mu: lockForPath(normalized)}, nil
}

func (r *HistoryRepository) Path() string {
	return r.path
}

func (r *HistoryRepository) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []string
	if _, err := readJSON(r.path, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []string{}
	}

	return entries, nil
}

func (r *HistoryRepository) Save(ctx context.Context, entries []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entries == nil {
		entries = []string{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return writeJSON(r.path, entries)
}

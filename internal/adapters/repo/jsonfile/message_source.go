package jsonfile

import (
	"context"
	"sync"

	"github.com/bnema/cave/internal/domain"
	"github.com/bnema/cave/internal/ports"
)

type messagesSchema struct {
	Messages []string `json:"messages"`
}

// MessageSource reads the message pool from a {"messages": [...]} document.
type MessageSource struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.MessageSource = (*MessageSource)(nil)

func NewMessageSource(path string) (*MessageSource, error) {
	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &MessageSource{path: normalized, mu: lockForPath(normalized)}, nil
}

func (s *MessageSource) Path() string {
	return s.path
}

func (s *MessageSource) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var file messagesSchema
	found, err := readJSON(s.path, &file)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.DefaultMessages(), nil
	}

	return domain.NormalizeMessages(file.Messages), nil
}

// WriteMessages creates a messages document; used to seed a pool file.
func WriteMessages(path string, messages []string) error {
	normalized, err := normalizePath(path)
	if err != nil {
		return err
	}

	mu := lockForPath(normalized)
	mu.Lock()
	defer mu.Unlock()

	return writeJSON(normalized, messagesSchema{Messages: messages})
}

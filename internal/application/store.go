package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/cave/internal/domain"
	"github.com/bnema/cave/internal/ports"
	"github.com/rs/zerolog/log"
)

var ErrEmptyMessage = errors.New("message is empty")

// Store holds the message pool and the history log for the lifetime of the process.
type Store struct {
	history ports.HistoryRepository
	source  ports.MessageSource
	rng     ports.Random

	mu       sync.Mutex
	messages []string
	entries  []string
}

func NewStore(ctx context.Context, history ports.HistoryRepository, source ports.MessageSource, rng ports.Random) (*Store, error) {
	if rng == nil {
		rng = ports.SystemRandom{}
	}

	s := &Store{
		history: history,
		source:  source,
		rng:     rng,
	}

	if _, err := s.LoadMessages(ctx); err != nil {
		return nil, err
	}
	if _, err := s.LoadHistory(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) LoadMessages(ctx context.Context) ([]string, error) {
	messages, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	messages = domain.NormalizeMessages(messages)

	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()

	log.Debug().Int("messages", len(messages)).Msg("message pool loaded")
	return cloneStrings(messages), nil
}

func (s *Store) LoadHistory(ctx context.Context) ([]string, error) {
	entries, err := s.history.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if entries == nil {
		entries = []string{}
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	log.Debug().Int("entries", len(entries)).Msg("history loaded")
	return cloneStrings(entries), nil
}

// Record appends message to the history and persists the whole log.
// A failed write leaves the in-memory history unchanged.
func (s *Store) Record(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := len(s.entries)
	s.entries = append(s.entries, message)

	if err := s.history.Save(ctx, cloneStrings(s.entries)); err != nil {
		s.entries = s.entries[:previous]
		return fmt.Errorf("save history: %w", err)
	}

	log.Debug().Int("entries", len(s.entries)).Msg("history entry recorded")
	return nil
}

// PickMessage draws uniformly from the pool; repeated draws are independent.
func (s *Store) PickMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.messages) == 0 {
		return domain.DefaultMessages()[0]
	}

	return s.messages[s.rng.Intn(len(s.messages))]
}

// Complete records a random message for a finished countdown and returns it.
func (s *Store) Complete(ctx context.Context) (string, error) {
	message := s.PickMessage()
	if err := s.Record(ctx, message); err != nil {
		return "", err
	}

	return message, nil
}

func (s *Store) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneStrings(s.entries)
}

func (s *Store) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneStrings(s.messages)
}

func cloneStrings(values []string) []string {
	result := make([]string, len(values))
	copy(result, values)
	return result
}

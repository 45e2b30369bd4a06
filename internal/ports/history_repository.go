package ports

import "context"

type HistoryRepository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, entries []string) error
}

package ports

import "context"

type MessageSource interface {
	Load(ctx context.Context) ([]string, error)
}

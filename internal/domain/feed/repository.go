package feed

import "context"

type Repository interface {
	Create(ctx context.Context, p Post) error
	ListAll(ctx context.Context) ([]Post, error)
}

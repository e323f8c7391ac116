package listings

import "context"

type Repository interface {
	Create(ctx context.Context, l Listing) error
	GetByID(ctx context.Context, id string) (Listing, error)
	ListAll(ctx context.Context) ([]Listing, error)
	ListByOwner(ctx context.Context, ownerUsername string) ([]Listing, error)

	CreateApplication(ctx context.Context, a Application) error
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"furever-pals/internal/domain/listings"
)

type listingsRepo struct {
	mu   sync.RWMutex
	byID map[string]listings.Listing
	apps map[string]listings.Application
}

func NewListingsRepo() listings.Repository {
	return &listingsRepo{
		byID: make(map[string]listings.Listing),
		apps: make(map[string]listings.Application),
	}
}

func (r *listingsRepo) Create(ctx context.Context, l listings.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("listing id required")
	}
	if _, exists := r.byID[l.ID]; exists {
		return errors.New("listing already exists")
	}
	r.byID[l.ID] = l
	return nil
}

func (r *listingsRepo) GetByID(ctx context.Context, id string) (listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return listings.Listing{}, ErrNotFound
	}
	return l, nil
}

func (r *listingsRepo) ListAll(ctx context.Context) ([]listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]listings.Listing, 0, len(r.byID))
	for _, l := range r.byID {
		out = append(out, l)
	}
	sortByCreated(out)
	return out, nil
}

func (r *listingsRepo) ListByOwner(ctx context.Context, ownerUsername string) ([]listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]listings.Listing, 0)
	for _, l := range r.byID {
		if l.OwnerUsername == ownerUsername {
			out = append(out, l)
		}
	}
	sortByCreated(out)
	return out, nil
}

func (r *listingsRepo) CreateApplication(ctx context.Context, a listings.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("application id required")
	}
	if _, exists := r.apps[a.ID]; exists {
		return errors.New("application already exists")
	}
	r.apps[a.ID] = a
	return nil
}

// Orden estable por created_at asc (solo para consistencia en dev)
func sortByCreated(out []listings.Listing) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}

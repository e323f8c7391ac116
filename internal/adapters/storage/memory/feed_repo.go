package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"furever-pals/internal/domain/feed"
)

type feedRepo struct {
	mu   sync.RWMutex
	byID map[string]feed.Post
}

func NewFeedRepo() feed.Repository {
	return &feedRepo{
		byID: make(map[string]feed.Post),
	}
}

func (r *feedRepo) Create(ctx context.Context, p feed.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("post id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("post already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *feedRepo) ListAll(ctx context.Context) ([]feed.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]feed.Post, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// El orden de display lo decide el cliente; acá asc por fecha
	// solo para salida estable.
	sort.Slice(out, func(i, j int) bool {
		return out[i].PostedAt.Before(out[j].PostedAt)
	})

	return out, nil
}

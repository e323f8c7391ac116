package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"furever-pals/internal/domain/accounts"
)

var (
	ErrNotFound = errors.New("not found")
)

type accountsRepo struct {
	mu         sync.RWMutex
	byUsername map[string]accounts.Account
}

func NewAccountsRepo() accounts.Repository {
	return &accountsRepo{
		byUsername: make(map[string]accounts.Account),
	}
}

func (r *accountsRepo) Create(ctx context.Context, a accounts.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.Username) == "" {
		return errors.New("username required")
	}
	if _, exists := r.byUsername[a.Username]; exists {
		return errors.New("account already exists")
	}
	r.byUsername[a.Username] = a
	return nil
}

func (r *accountsRepo) GetByUsername(ctx context.Context, username string) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byUsername[username]
	if !ok {
		return accounts.Account{}, ErrNotFound
	}
	return a, nil
}

func (r *accountsRepo) Update(ctx context.Context, a accounts.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[a.Username]; !exists {
		return ErrNotFound
	}
	r.byUsername[a.Username] = a
	return nil
}

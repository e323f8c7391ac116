package feed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Create registra un post. Si no viene timestamp se usa el del server.
func (s *Service) Create(ctx context.Context, authorUsername, content string, postedAt time.Time) (Post, error) {
	authorUsername = strings.TrimSpace(authorUsername)
	content = strings.TrimSpace(content)

	if authorUsername == "" || content == "" {
		return Post{}, ErrInvalidInput
	}
	if postedAt.IsZero() {
		postedAt = s.now()
	}

	p := Post{
		ID:             uuid.NewString(),
		AuthorUsername: authorUsername,
		Content:        content,
		PostedAt:       postedAt,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Post, error) {
	return s.repo.ListAll(ctx)
}

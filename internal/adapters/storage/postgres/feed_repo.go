package postgres

import (
	"context"
	"database/sql"

	"furever-pals/internal/domain/feed"
)

type FeedRepo struct {
	db *sql.DB
}

func NewFeedRepo(db *sql.DB) *FeedRepo {
	return &FeedRepo{db: db}
}

func (r *FeedRepo) Create(ctx context.Context, p feed.Post) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (id, author_username, content, posted_at)
		VALUES ($1,$2,$3,$4)
	`,
		p.ID,
		p.AuthorUsername,
		p.Content,
		p.PostedAt,
	)
	return err
}

func (r *FeedRepo) ListAll(ctx context.Context) ([]feed.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, author_username, content, posted_at
		FROM posts
		ORDER BY posted_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feed.Post, 0)
	for rows.Next() {
		var p feed.Post
		if err := rows.Scan(&p.ID, &p.AuthorUsername, &p.Content, &p.PostedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

package api

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"furever-pals/internal/platform/httpclient"
)

// AllPosts trae el feed de comunidad, más reciente primero.
// El backend no garantiza orden, así que se reordena acá siempre.
// 404 significa feed vacío (nadie publicó todavía).
func (c *Client) AllPosts(ctx context.Context) ([]CommunityPost, error) {
	var out struct {
		Posts []CommunityPost `json:"posts"`
	}
	err := c.http.DoJSON(ctx, http.MethodGet, "/all-user-posts", nil, &out)
	if err != nil {
		var ce *httpclient.ClientError
		if errors.As(err, &ce) && ce.StatusCode == http.StatusNotFound {
			return []CommunityPost{}, nil
		}
		return nil, err
	}

	posts := out.Posts
	if posts == nil {
		posts = []CommunityPost{}
	}
	sortPostsDesc(posts)
	return posts, nil
}

type createPostRequest struct {
	Username   string `json:"username"`
	SharedPost string `json:"sharedpost"`
	DatePosted string `json:"date_posted"`
}

// CreatePost comparte un tip a nombre de la sesión, con timestamp local.
func (c *Client) CreatePost(ctx context.Context, content string) error {
	username, err := c.actingUser()
	if err != nil {
		return err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return validationError([]string{"sharedpost"})
	}

	req := createPostRequest{
		Username:   username,
		SharedPost: content,
		DatePosted: c.timestamp(),
	}

	if err := c.http.DoJSON(ctx, http.MethodPost, "/user-posts/"+username, req, nil); err != nil {
		return err
	}

	c.log.Info("community post shared", "user", username)
	return nil
}

func (c *Client) timestamp() string {
	if c.now != nil {
		return c.now()
	}
	return time.Now().Format(TimestampLayout)
}

// sortPostsDesc ordena por fecha de publicación descendente.
// Timestamps que no parsean van al final, en orden estable.
func sortPostsDesc(posts []CommunityPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, tj := posts[i].PostedAt(), posts[j].PostedAt()
		if ti.IsZero() || tj.IsZero() {
			return tj.IsZero() && !ti.IsZero()
		}
		return ti.After(tj)
	})
}

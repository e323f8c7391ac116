package feed

import "time"

// Post es un tip compartido en la comunidad.
type Post struct {
	ID             string
	AuthorUsername string
	Content        string
	PostedAt       time.Time
}

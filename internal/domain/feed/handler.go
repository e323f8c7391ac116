package feed

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"furever-pals/internal/domain/accounts"

	"github.com/go-chi/chi/v5"
)

const timestampLayout = "2006-01-02 15:04:05"

func RegisterRoutes(r chi.Router, svc *Service, accountsSvc *accounts.Service) {
	r.Post("/user-posts/{username}", createPostHandler(svc, accountsSvc))
	r.Get("/all-user-posts", allPostsHandler(svc, accountsSvc))
}

type createPostRequest struct {
	Username   string `json:"username"`
	SharedPost string `json:"sharedpost"`
	DatePosted string `json:"date_posted"`
}

type postResponse struct {
	Username     string `json:"username"`
	PostID       string `json:"post_id"`
	PostContent  string `json:"post_content"`
	DatePosted   string `json:"date_posted"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}

func createPostHandler(svc *Service, accountsSvc *accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid json")
			return
		}

		// La URL manda: el body puede traer otro username por error.
		username := chi.URLParam(r, "username")
		if !accountsSvc.Exists(r.Context(), username) {
			writeDetail(w, http.StatusNotFound, "User not found")
			return
		}

		var postedAt time.Time
		if req.DatePosted != "" {
			t, err := time.Parse(timestampLayout, req.DatePosted)
			if err != nil {
				writeValidation(w, []string{"date_posted must be YYYY-MM-DD HH:mm:ss"})
				return
			}
			postedAt = t
		}

		p, err := svc.Create(r.Context(), username, req.SharedPost, postedAt)
		switch {
		case errors.Is(err, ErrInvalidInput):
			writeDetail(w, http.StatusBadRequest, "Failed to create post for user '"+username+"'")
		case err != nil:
			writeDetail(w, http.StatusInternalServerError, "internal error")
		default:
			writeJSON(w, http.StatusOK, map[string]string{
				"message": "Post created successfully",
				"post_id": p.ID,
			})
		}
	}
}

func allPostsHandler(svc *Service, accountsSvc *accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.ListAll(r.Context())
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "internal error")
			return
		}

		// Contrato original: feed vacío responde 404.
		if len(posts) == 0 {
			writeDetail(w, http.StatusNotFound, "No posts found")
			return
		}

		out := make([]postResponse, 0, len(posts))
		for _, p := range posts {
			resp := postResponse{
				Username:    p.AuthorUsername,
				PostID:      p.ID,
				PostContent: p.Content,
				DatePosted:  p.PostedAt.Format(timestampLayout),
			}
			// join con la foto de perfil del autor, como el original
			if a, err := accountsSvc.Get(r.Context(), p.AuthorUsername); err == nil {
				resp.ProfilePhoto = a.ProfilePhoto
			}
			out = append(out, resp)
		}

		writeJSON(w, http.StatusOK, map[string]any{"posts": out})
	}
}

// duplicado adrede por módulo, igual que en accounts/listings
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeValidation(w http.ResponseWriter, msgs []string) {
	type item struct {
		Msg string `json:"msg"`
	}
	items := make([]item, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, item{Msg: m})
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": items})
}

package post

import (
	"context"
	"net/http"
	"strings"

	"social-service/internal/comment"
	"social-service/internal/listquery"
	"social-service/internal/shared/httpx"
	"social-service/internal/shared/validate"
)

var listSpec = listquery.Spec{
	DefaultLimit: 20,
	ModeParam:    "filter",
	Modes:        FilterModes,
	DefaultMode:  "all",
}

// CommentSource is satisfied by comment.Service; the detail view embeds the
// post's comment threads and serves the cached comment count.
type CommentSource interface {
	ThreadsByPost(ctx context.Context, postID string) ([]comment.Comment, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
}

type Handler struct {
	svc      Service
	comments CommentSource
}

func NewHandler(s Service, cs CommentSource) *Handler {
	return &Handler{svc: s, comments: cs}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	// whitespace-only content is as empty as missing content
	in.Content = strings.TrimSpace(in.Content)
	if err := validate.Struct(in); err != nil {
		return err
	}
	p, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusCreated)
	return nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	q, err := listquery.Parse(r.URL.Query(), listSpec)
	if err != nil {
		return err
	}
	viewer, _ := httpx.UserFromCtx(r)
	page, err := h.svc.List(r.Context(), q, r.URL.Query().Get("author"), viewer)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, page, http.StatusOK)
	return nil
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	p, err := h.svc.Get(r.Context(), r.PathValue("post_id"))
	if err != nil {
		return err
	}
	threads, err := h.comments.ThreadsByPost(r.Context(), p.ID)
	if err != nil {
		return err
	}
	commentCount, err := h.comments.CountByPost(r.Context(), p.ID)
	if err != nil {
		return err
	}
	out := map[string]any{
		"id":               p.ID,
		"author":           p.Author,
		"content":          p.Content,
		"media":            p.Media,
		"tags":             p.Tags,
		"likesCount":       p.LikesCount,
		"commentsCount":    commentCount,
		"repostsCount":     p.RepostsCount,
		"onchainReference": p.Onchain,
		"createdAt":        p.CreatedAt,
		"comments":         threads,
	}
	httpx.WriteJSON(w, out, http.StatusOK)
	return nil
}

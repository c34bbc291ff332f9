package like

import (
	"net/http"

	"social-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	n, err := h.svc.Like(r.Context(), uid, r.PathValue("post_id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"success": true, "isLiked": true, "likesCount": n,
	}, http.StatusOK)
	return nil
}

func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	n, err := h.svc.Unlike(r.Context(), uid, r.PathValue("post_id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"success": true, "isLiked": false, "likesCount": n,
	}, http.StatusOK)
	return nil
}

package user

import (
	"net/http"

	"social-service/internal/shared/apperr"
	"social-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	u, err := h.svc.Get(r.Context(), r.PathValue("address"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	// only the profile owner may update it
	if uid != r.PathValue("address") {
		return apperr.Unauthorized()
	}
	in, err := httpx.Decode[UpdateReq](r)
	if err != nil {
		return err
	}
	u, err := h.svc.Update(r.Context(), r.PathValue("address"), in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	n, err := h.svc.Follow(r.Context(), uid, r.PathValue("address"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"success": true, "isFollowing": true, "followersCount": n,
	}, http.StatusOK)
	return nil
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	n, err := h.svc.Unfollow(r.Context(), uid, r.PathValue("address"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{
		"success": true, "isFollowing": false, "followersCount": n,
	}, http.StatusOK)
	return nil
}

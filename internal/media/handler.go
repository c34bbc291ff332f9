package media

import (
	"net/http"

	"social-service/internal/shared/apperr"
	"social-service/internal/shared/httpx"
)

const maxUploadSize = 20 << 20 // 20MB

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) error {
	if _, err := httpx.UserFromCtx(r); err != nil {
		return err
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return apperr.Invalid("invalid multipart body")
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return apperr.Invalid("file is required")
	}
	defer file.Close()

	up, err := h.svc.Upload(r.Context(), file, header)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, up, http.StatusCreated)
	return nil
}

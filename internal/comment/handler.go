package comment

import (
	"net/http"
	"strings"

	"social-service/internal/listquery"
	"social-service/internal/shared/httpx"
	"social-service/internal/shared/validate"
)

var listSpec = listquery.Spec{
	DefaultLimit: 20,
	ModeParam:    "sort",
	Modes:        SortModes,
	DefaultMode:  "newest",
}

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

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
	c, err := h.svc.Create(r.Context(), uid, r.PathValue("post_id"), in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, c, http.StatusCreated)
	return nil
}

func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) error {
	q, err := listquery.Parse(r.URL.Query(), listSpec)
	if err != nil {
		return err
	}
	page, err := h.svc.ListByPost(r.Context(), r.PathValue("post_id"), q)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, page, http.StatusOK)
	return nil
}

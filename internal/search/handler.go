package search

import (
	"net/http"

	"social-service/internal/listquery"
	"social-service/internal/shared/httpx"
)

var spec = listquery.Spec{
	DefaultLimit: 20,
	ModeParam:    "type",
	Modes:        Types,
	DefaultMode:  "all",
	TextParam:    "q",
	TextRequired: true,
}

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) error {
	q, err := listquery.Parse(r.URL.Query(), spec)
	if err != nil {
		return err
	}
	res, err := h.svc.Search(r.Context(), q)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, res, http.StatusOK)
	return nil
}

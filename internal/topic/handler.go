package topic

import (
	"net/http"

	"social-service/internal/listquery"
	"social-service/internal/shared/httpx"
)

var trendingSpec = listquery.Spec{
	DefaultLimit: 10,
	ModeParam:    "timeframe",
	Modes:        Timeframes,
	DefaultMode:  "day",
}

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) error {
	q, err := listquery.Parse(r.URL.Query(), trendingSpec)
	if err != nil {
		return err
	}
	topics, err := h.svc.Trending(r.Context(), q)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"topics": topics}, http.StatusOK)
	return nil
}

package api

import (
	"net/http"

	"bookflow/internal/domain"
	"bookflow/pkg/logger"
)

type StatsHandler struct {
	service domain.StatsService
	logger  logger.Logger
}

func NewStatsHandler(service domain.StatsService, logger logger.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger,
	}
}

func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Dashboard())
}

func (h *StatsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Categories())
}

func (h *StatsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/stats", h.Dashboard)
	mux.HandleFunc("GET /api/stats/categories", h.Categories)
}

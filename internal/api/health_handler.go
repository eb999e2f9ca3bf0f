package api

import (
	"net/http"
	"time"

	"bookflow/internal/storage"
	"bookflow/pkg/logger"
)

type HealthHandler struct {
	store  storage.Store
	logger logger.Logger
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Store     string    `json:"store"`
}

func NewHealthHandler(store storage.Store, logger logger.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Store:     "healthy",
	}

	status := http.StatusOK
	if err := h.store.Ping(); err != nil {
		h.logger.Error("Store health check failed", map[string]interface{}{"error": err.Error()})
		response.Status = "degraded"
		response.Store = "unreachable"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, response)
}

func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
}

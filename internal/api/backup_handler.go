package api

import (
	"encoding/json"
	"net/http"

	"bookflow/internal/domain"
	"bookflow/pkg/logger"
)

type BackupHandler struct {
	service domain.BackupService
	logger  logger.Logger
}

func NewBackupHandler(service domain.BackupService, logger logger.Logger) *BackupHandler {
	return &BackupHandler{
		service: service,
		logger:  logger,
	}
}

func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	backup, err := h.service.Export()
	if err != nil {
		h.logger.Error("Backup export failed", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, backup)
}

func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	var backup domain.Backup
	if err := json.NewDecoder(r.Body).Decode(&backup); err != nil {
		h.logger.Error("Could not decode backup document", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Invalid import data format", http.StatusBadRequest)
		return
	}

	if err := h.service.Import(&backup); err != nil {
		h.logger.Error("Backup import failed", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BackupHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/backup", h.Export)
	mux.HandleFunc("POST /api/backup", h.Import)
}

package api

import (
	"encoding/json"
	"net/http"

	"bookflow/internal/domain"
	"bookflow/pkg/logger"
)

type CategoryHandler struct {
	repo   domain.CategoryRepository
	logger logger.Logger
}

func NewCategoryHandler(repo domain.CategoryRepository, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		repo:   repo,
		logger: logger,
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("q"); query != "" {
		writeJSON(w, http.StatusOK, h.repo.Search(query))
		return
	}

	writeJSON(w, http.StatusOK, h.repo.GetAll())
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.repo.GetByID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Could not decode request body", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	category, err := h.repo.Create(input)
	if err != nil {
		h.logger.Error("Category create failed", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Could not decode request body", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	category, err := h.repo.Update(r.PathValue("id"), input)
	if err != nil {
		h.logger.Error("Category update failed", map[string]interface{}{"id": r.PathValue("id"), "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.PathValue("id")); err != nil {
		h.logger.Error("Category delete failed", map[string]interface{}{"id": r.PathValue("id"), "error": err.Error()})
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/categories", h.List)
	mux.HandleFunc("GET /api/categories/{id}", h.Get)
	mux.HandleFunc("POST /api/categories", h.Create)
	mux.HandleFunc("PUT /api/categories/{id}", h.Update)
	mux.HandleFunc("DELETE /api/categories/{id}", h.Delete)
}

package api

import (
	"encoding/json"
	"net/http"

	"bookflow/internal/domain"
	"bookflow/pkg/logger"
)

type AuthorHandler struct {
	repo   domain.AuthorRepository
	logger logger.Logger
}

func NewAuthorHandler(repo domain.AuthorRepository, logger logger.Logger) *AuthorHandler {
	return &AuthorHandler{
		repo:   repo,
		logger: logger,
	}
}

func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("q"); query != "" {
		writeJSON(w, http.StatusOK, h.repo.Search(query))
		return
	}

	writeJSON(w, http.StatusOK, h.repo.GetAll())
}

func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	author, err := h.repo.GetByID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, author)
}

func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.AuthorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Could not decode request body", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	author, err := h.repo.Create(input)
	if err != nil {
		h.logger.Error("Author create failed", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, author)
}

func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.AuthorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Could not decode request body", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	author, err := h.repo.Update(r.PathValue("id"), input)
	if err != nil {
		h.logger.Error("Author update failed", map[string]interface{}{"id": r.PathValue("id"), "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, author)
}

func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.PathValue("id")); err != nil {
		h.logger.Error("Author delete failed", map[string]interface{}{"id": r.PathValue("id"), "error": err.Error()})
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthorHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/authors", h.List)
	mux.HandleFunc("GET /api/authors/{id}", h.Get)
	mux.HandleFunc("POST /api/authors", h.Create)
	mux.HandleFunc("PUT /api/authors/{id}", h.Update)
	mux.HandleFunc("DELETE /api/authors/{id}", h.Delete)
}

package api

import (
	"encoding/json"
	"net/http"

	"bookflow/internal/domain"
	"bookflow/pkg/logger"
)

type BookHandler struct {
	repo   domain.BookRepository
	logger logger.Logger
}

func NewBookHandler(repo domain.BookRepository, logger logger.Logger) *BookHandler {
	return &BookHandler{
		repo:   repo,
		logger: logger,
	}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("q"); query != "" {
		writeJSON(w, http.StatusOK, h.repo.Search(query))
		return
	}

	writeJSON(w, http.StatusOK, h.repo.GetAll())
}

func (h *BookHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.repo.GetAvailable())
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.repo.GetByID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Could not decode request body", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	book, err := h.repo.Create(input)
	if err != nil {
		h.logger.Error("Book create failed", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, book)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Could not decode request body", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	book, err := h.repo.Update(r.PathValue("id"), input)
	if err != nil {
		h.logger.Error("Book update failed", map[string]interface{}{"id": r.PathValue("id"), "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.PathValue("id")); err != nil {
		h.logger.Error("Book delete failed", map[string]interface{}{"id": r.PathValue("id"), "error": err.Error()})
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/books", h.List)
	mux.HandleFunc("GET /api/books/available", h.ListAvailable)
	mux.HandleFunc("GET /api/books/{id}", h.Get)
	mux.HandleFunc("POST /api/books", h.Create)
	mux.HandleFunc("PUT /api/books/{id}", h.Update)
	mux.HandleFunc("DELETE /api/books/{id}", h.Delete)
}

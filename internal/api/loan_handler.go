package api

import (
	"encoding/json"
	"net/http"

	"bookflow/internal/domain"
	"bookflow/pkg/logger"
)

type LoanHandler struct {
	repo   domain.LoanRepository
	logger logger.Logger
}

func NewLoanHandler(repo domain.LoanRepository, logger logger.Logger) *LoanHandler {
	return &LoanHandler{
		repo:   repo,
		logger: logger,
	}
}

func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("q"); query != "" {
		writeJSON(w, http.StatusOK, h.repo.Search(query))
		return
	}

	writeJSON(w, http.StatusOK, h.repo.GetAll())
}

func (h *LoanHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.repo.GetActive())
}

func (h *LoanHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.repo.GetOverdue())
}

func (h *LoanHandler) ListByMember(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.repo.GetByMember(r.PathValue("id")))
}

func (h *LoanHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.repo.GetByBook(r.PathValue("id")))
}

func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	loan, err := h.repo.GetByID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Could not decode request body", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	loan, err := h.repo.Create(input)
	if err != nil {
		h.logger.Error("Loan create failed", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, loan)
}

func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	loan, err := h.repo.ReturnBook(r.PathValue("id"))
	if err != nil {
		h.logger.Error("Loan return failed", map[string]interface{}{"id": r.PathValue("id"), "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.PathValue("id")); err != nil {
		h.logger.Error("Loan delete failed", map[string]interface{}{"id": r.PathValue("id"), "error": err.Error()})
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LoanHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/loans", h.List)
	mux.HandleFunc("GET /api/loans/active", h.ListActive)
	mux.HandleFunc("GET /api/loans/overdue", h.ListOverdue)
	mux.HandleFunc("GET /api/loans/{id}", h.Get)
	mux.HandleFunc("POST /api/loans", h.Create)
	mux.HandleFunc("POST /api/loans/{id}/return", h.Return)
	mux.HandleFunc("DELETE /api/loans/{id}", h.Delete)
	mux.HandleFunc("GET /api/members/{id}/loans", h.ListByMember)
	mux.HandleFunc("GET /api/books/{id}/loans", h.ListByBook)
}

package api

import (
	"encoding/json"
	"net/http"

	"bookflow/internal/domain"
	"bookflow/pkg/logger"
)

type MemberHandler struct {
	repo   domain.MemberRepository
	logger logger.Logger
}

func NewMemberHandler(repo domain.MemberRepository, logger logger.Logger) *MemberHandler {
	return &MemberHandler{
		repo:   repo,
		logger: logger,
	}
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("q"); query != "" {
		writeJSON(w, http.StatusOK, h.repo.Search(query))
		return
	}

	writeJSON(w, http.StatusOK, h.repo.GetAll())
}

func (h *MemberHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.repo.GetActive())
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.repo.GetByID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.MemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Could not decode request body", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	member, err := h.repo.Create(input)
	if err != nil {
		h.logger.Error("Member create failed", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.MemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Could not decode request body", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	member, err := h.repo.Update(r.PathValue("id"), input)
	if err != nil {
		h.logger.Error("Member update failed", map[string]interface{}{"id": r.PathValue("id"), "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.PathValue("id")); err != nil {
		h.logger.Error("Member delete failed", map[string]interface{}{"id": r.PathValue("id"), "error": err.Error()})
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MemberHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/members", h.List)
	mux.HandleFunc("GET /api/members/active", h.ListActive)
	mux.HandleFunc("GET /api/members/{id}", h.Get)
	mux.HandleFunc("POST /api/members", h.Create)
	mux.HandleFunc("PUT /api/members/{id}", h.Update)
	mux.HandleFunc("DELETE /api/members/{id}", h.Delete)
}

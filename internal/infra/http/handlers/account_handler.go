package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xbarbosa1/campaign-studio/internal/usecase"
	"github.com/xbarbosa1/campaign-studio/internal/workflow"
)

// AccountHandler manages the session's account drafts. Drafts are mutable
// until submission; nothing here reaches the generator.
type AccountHandler struct {
	Session *workflow.Session
}

func NewAccountHandler(session *workflow.Session) *AccountHandler {
	return &AccountHandler{Session: session}
}

func (h *AccountHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Session.Drafts())
}

func (h *AccountHandler) AddHandler(w http.ResponseWriter, r *http.Request) {
	var draft usecase.DraftInput
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	index := h.Session.AddDraft(draft)
	writeJSON(w, http.StatusCreated, map[string]int{"account": index})
}

func (h *AccountHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	index, ok := accountIndex(w, r)
	if !ok {
		return
	}

	var draft usecase.DraftInput
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	if err := h.Session.UpdateDraft(index, draft); err != nil {
		writeWorkflowError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) RemoveHandler(w http.ResponseWriter, r *http.Request) {
	index, ok := accountIndex(w, r)
	if !ok {
		return
	}

	if err := h.Session.RemoveDraft(index); err != nil {
		writeWorkflowError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func accountIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INDEX")
		return 0, false
	}
	return index, true
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xbarbosa1/campaign-studio/internal/infra/http/middleware"
	"github.com/xbarbosa1/campaign-studio/internal/infra/integration/genservice"
	"github.com/xbarbosa1/campaign-studio/internal/usecase"
	"github.com/xbarbosa1/campaign-studio/internal/workflow"
)

type CampaignHandler struct {
	Session *workflow.Session
}

func NewCampaignHandler(session *workflow.Session) *CampaignHandler {
	return &CampaignHandler{Session: session}
}

type actionRequest struct {
	Account int `json:"account"`
}

func (h *CampaignHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var input actionRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	_, err := h.Session.Generate(r.Context(), input.Account)
	if err != nil {
		middleware.RecordGeneration("error")
		writeWorkflowError(w, err)
		return
	}

	middleware.RecordGeneration("success")
	writeJSON(w, http.StatusOK, h.Session.Snapshot())
}

func (h *CampaignHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	var input actionRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	out, err := h.Session.Export(r.Context(), input.Account)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}

	middleware.RecordExport()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(out.Content)
}

func (h *CampaignHandler) NarrateHandler(w http.ResponseWriter, r *http.Request) {
	out, err := h.Session.Narrate(r.Context())
	if err != nil {
		writeWorkflowError(w, err)
		return
	}

	middleware.RecordNarration()
	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(out.Audio)
}

// AudioHandler replays the retained narration without a new generator call.
func (h *CampaignHandler) AudioHandler(w http.ResponseWriter, r *http.Request) {
	audio, ok := h.Session.Audio()
	if !ok {
		writeError(w, http.StatusNotFound, "NO_AUDIO")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}

func (h *CampaignHandler) ClearAudioHandler(w http.ResponseWriter, r *http.Request) {
	h.Session.ClearAudio()
	w.WriteHeader(http.StatusNoContent)
}

func (h *CampaignHandler) ReportHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Session.Snapshot())
}

func (h *CampaignHandler) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	var input usecase.PreviewEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	if err := h.Session.Preview(input); err != nil {
		writeWorkflowError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "SENT"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeWorkflowError maps the error taxonomy onto statuses: local
// preconditions are the caller's fault, generator failures are upstream.
func writeWorkflowError(w http.ResponseWriter, err error) {
	if usecase.IsValidationError(err) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR")
		return
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case "NO_ACCOUNT":
			writeError(w, http.StatusNotFound, domainErr.Code)
		case "MAIL_NOT_CONFIGURED":
			writeError(w, http.StatusServiceUnavailable, domainErr.Code)
		default:
			writeError(w, http.StatusConflict, domainErr.Code)
		}
		return
	}

	var transportErr *genservice.TransportError
	if errors.As(err, &transportErr) {
		middleware.RecordIntegrationError(transportErr.Endpoint)
		writeError(w, http.StatusBadGateway, "TRANSPORT_ERROR")
		return
	}

	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
}

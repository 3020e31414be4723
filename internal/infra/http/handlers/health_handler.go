package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthHandler struct {
	GeneratorURL string
	MailHost     string
	StartTime    time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(generatorURL, mailHost string) *HealthHandler {
	return &HealthHandler{
		GeneratorURL: generatorURL,
		MailHost:     mailHost,
		StartTime:    time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.GeneratorURL != "" {
		deps["generator"] = "configured"
	} else {
		deps["generator"] = "not configured"
	}

	if h.MailHost != "" {
		deps["mail"] = "configured"
	} else {
		deps["mail"] = "not configured"
	}

	// The generator is the only hard dependency; mail is optional.
	status := "healthy"
	if deps["generator"] == "not configured" {
		status = "degraded"
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(response)
}

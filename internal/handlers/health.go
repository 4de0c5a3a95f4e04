package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/achariya/guardrail/internal/services/gemini"
)

type HealthResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceHealth `json:"services"`
}

type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type HealthHandler struct {
	model *gemini.Client
}

func NewHealthHandler(model *gemini.Client) *HealthHandler {
	return &HealthHandler{model: model}
}

// Health reports overall status. A missing model credential degrades the
// service (blocked/canned responses still work) but does not fail it.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:   "ok",
		Services: make(map[string]ServiceHealth),
	}

	if h.model.IsAvailable() {
		response.Services["gemini"] = ServiceHealth{Status: "healthy"}
	} else {
		response.Services["gemini"] = ServiceHealth{Status: "unhealthy", Message: "API credential missing or malformed"}
		response.Status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// Ready reports readiness. The catalog is compiled in, so a running process
// is always ready to classify.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

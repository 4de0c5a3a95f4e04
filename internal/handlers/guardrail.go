package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/achariya/guardrail/internal/guardrail"
)

type GuardrailHandler struct {
	engine *guardrail.Engine
	logger *zap.Logger
}

func NewGuardrailHandler(engine *guardrail.Engine, logger *zap.Logger) *GuardrailHandler {
	return &GuardrailHandler{
		engine: engine,
		logger: logger.Named("guardrail_handler"),
	}
}

type CheckRequest struct {
	Message string `json:"message"`
}

// Check classifies one message and returns the full pipeline result without
// contacting the model. An empty message is valid input and resolves through
// the default-allow branch.
func (h *GuardrailHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "request body must be JSON with a \"message\" field")
		return
	}

	result := h.engine.ProcessMessage(req.Message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("failed to encode check response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"message": message,
			"type":    "guardrail_error",
			"code":    code,
		},
	})
}

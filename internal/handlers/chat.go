package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/achariya/guardrail/internal/guardrail"
	"github.com/achariya/guardrail/internal/services/gemini"
)

type ChatHandler struct {
	engine *guardrail.Engine
	model  *gemini.Client
	logger *zap.Logger
}

func NewChatHandler(engine *guardrail.Engine, model *gemini.Client, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		engine: engine,
		model:  model,
		logger: logger.Named("chat_handler"),
	}
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	RequestID string           `json:"request_id"`
	Reply     string           `json:"reply"`
	Blocked   bool             `json:"blocked"`
	Action    guardrail.Action `json:"action"`
	Label     guardrail.Label  `json:"label"`
}

// Chat is the backend relay: the guardrail decides, then either the canned
// response is returned verbatim or the ORIGINAL message is forwarded to the
// model under the selected system-prompt variant. A model failure surfaces
// after the decision is already made and logged; it never changes it.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "request body must be JSON with a \"message\" field")
		return
	}

	requestID := uuid.NewString()
	result := h.engine.ProcessMessage(req.Message)
	decision := result.Decision

	if !decision.ShouldCallGemini {
		writeJSON(w, http.StatusOK, ChatResponse{
			RequestID: requestID,
			Reply:     decision.Response,
			Blocked:   true,
			Action:    decision.Action,
			Label:     decision.Label,
		})
		return
	}

	if !h.model.IsAvailable() {
		writeError(w, http.StatusServiceUnavailable, "model_unavailable", "generative model is not configured")
		return
	}

	systemPrompt := h.engine.Catalog().SystemPrompt(decision.SystemPrompt)
	reply, err := h.model.Generate(r.Context(), systemPrompt, req.Message)
	if err != nil {
		h.logger.Error("model call failed",
			zap.String("request_id", requestID),
			zap.String("action", string(decision.Action)),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, "model_error", "generative model call failed")
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		RequestID: requestID,
		Reply:     reply,
		Action:    decision.Action,
		Label:     decision.Label,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

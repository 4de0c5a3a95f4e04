package guardrail

import (
	"time"

	"go.uber.org/zap"

	"github.com/achariya/guardrail/internal/catalog"
)

// Sink receives one audit record per processed message. The engine always
// writes the record to its own logger; sinks are for deployments that also
// forward records to an analytics pipeline.
type Sink interface {
	Record(LogData)
}

// Engine composes the three pipeline stages behind a single entry point.
// It holds only the read-only catalog and a logger, so one Engine serves
// any number of concurrent callers.
type Engine struct {
	cat    *catalog.Catalog
	logger *zap.Logger
	sinks  []Sink
}

// New creates an engine over an immutable catalog.
func New(cat *catalog.Catalog, logger *zap.Logger, sinks ...Sink) *Engine {
	return &Engine{
		cat:    cat,
		logger: logger.Named("guardrail"),
		sinks:  sinks,
	}
}

// Catalog exposes the engine's catalog, e.g. for system-prompt lookup by
// the chat relay.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// ProcessMessage runs normalize, classify and route over one raw message
// and emits exactly one audit record. Deterministic for a given catalog:
// same input, same label, action and response, every time.
func (e *Engine) ProcessMessage(rawMessage string) Result {
	start := time.Now()

	normalized := e.Normalize(rawMessage)
	classification := e.Classify(normalized)
	decision := e.Route(normalized, classification)

	observeDecision(decision, time.Since(start))

	e.logger.Info("decision",
		zap.String("message_hash", decision.LogData.MessageHash),
		zap.String("preview", RedactMessage(rawMessage)),
		zap.String("label", string(decision.Label)),
		zap.Float64("confidence", classification.Confidence),
		zap.String("domain", classification.AcademicDomain),
		zap.Strings("matched_rules", decision.LogData.MatchedRules),
		zap.String("action", string(decision.Action)),
		zap.Bool("gemini_called", decision.ShouldCallGemini),
		zap.String("language", normalized.Language),
	)

	for _, sink := range e.sinks {
		sink.Record(decision.LogData)
	}

	return Result{
		Decision:        decision,
		NormalizedInput: normalized,
		Classification:  classification,
	}
}

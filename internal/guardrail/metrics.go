package guardrail

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guardrail_decisions_total",
			Help: "Total number of guardrail decisions by label and action",
		},
		[]string{"label", "action"},
	)

	decisionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "guardrail_decision_duration_seconds",
			Help:    "Pipeline latency per message",
			Buckets: prometheus.ExponentialBuckets(0.000001, 10, 8),
		},
	)

	forwardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guardrail_forwarded_total",
			Help: "Messages forwarded to the model by system-prompt variant",
		},
		[]string{"system_prompt"},
	)
)

func observeDecision(d Decision, elapsed time.Duration) {
	decisionsTotal.WithLabelValues(string(d.Label), string(d.Action)).Inc()
	decisionDuration.Observe(elapsed.Seconds())
	if d.ShouldCallGemini {
		forwardedTotal.WithLabelValues(string(d.SystemPrompt)).Inc()
	}
}

package guardrail

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/achariya/guardrail/internal/catalog"
)

type captureSink struct {
	mu      sync.Mutex
	records []LogData
}

func (s *captureSink) Record(d LogData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, d)
}

func TestProcessMessageDeterminism(t *testing.T) {
	engine := newTestEngine(t)

	for _, message := range []string{
		"",
		"what is photosynthesis",
		"i want to die",
		"give me answers to the test",
		"puberty as per chapter 5 ncert biology",
	} {
		first := engine.ProcessMessage(message)
		second := engine.ProcessMessage(message)

		assert.Equal(t, first.Decision.Label, second.Decision.Label, "message %q", message)
		assert.Equal(t, first.Decision.Action, second.Decision.Action, "message %q", message)
		assert.Equal(t, first.Decision.Response, second.Decision.Response, "message %q", message)
	}
}

func TestProcessMessageEmitsOneRecordPerCall(t *testing.T) {
	sink := &captureSink{}
	engine := New(catalog.Default(), zap.NewNop(), sink)

	engine.ProcessMessage("what is gravity")
	engine.ProcessMessage("i want to die")

	require.Len(t, sink.records, 2)
	assert.Equal(t, ActionSendToGeminiNormal, sink.records[0].ActionTaken)
	assert.True(t, sink.records[0].GeminiCalled)
	assert.Equal(t, ActionEscalateSelfHarm, sink.records[1].ActionTaken)
	assert.False(t, sink.records[1].GeminiCalled)
}

func TestProcessMessageLogPrivacy(t *testing.T) {
	sink := &captureSink{}
	engine := New(catalog.Default(), zap.NewNop(), sink)

	raw := "my secret message that must never appear in logs"
	engine.ProcessMessage(raw)

	require.Len(t, sink.records, 1)
	record := sink.records[0]
	assert.NotEqual(t, raw, record.MessageHash)
	assert.NotContains(t, record.MessageHash, raw)
}

func TestProcessMessageDefaultAllow(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.ProcessMessage("")

	assert.Equal(t, LabelAllowedAcademic, result.Decision.Label)
	assert.Equal(t, ActionSendToGeminiNormal, result.Decision.Action)
	assert.True(t, result.Decision.ShouldCallGemini)
	assert.Equal(t, catalog.PromptNormal, result.Decision.SystemPrompt)
	assert.Empty(t, result.NormalizedInput.Tokens)
}

func TestProcessMessageConcurrent(t *testing.T) {
	engine := newTestEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := engine.ProcessMessage("explain the laws of motion")
			assert.Equal(t, LabelAllowedAcademic, result.Decision.Label)
		}()
	}
	wg.Wait()
}

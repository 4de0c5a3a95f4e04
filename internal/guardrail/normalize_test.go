package guardrail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/achariya/guardrail/internal/catalog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(catalog.Default(), zap.NewNop())
}

func TestNormalizeEvasion(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("leetspeak", func(t *testing.T) {
		got := engine.Normalize("s3x")
		assert.Contains(t, got.CleanText, "sex")
	})

	t.Run("single letter spacing", func(t *testing.T) {
		got := engine.Normalize("f l i r t")
		assert.Contains(t, got.CleanText, "flirt")
	})

	t.Run("embedded spaced run", func(t *testing.T) {
		got := engine.Normalize("tell me about s e x")
		assert.Contains(t, got.CleanText, "sex")
		assert.Contains(t, got.CleanText, "tell me about")
	})

	t.Run("repeated characters collapse to exactly two", func(t *testing.T) {
		got := engine.Normalize("sexxxxxx")
		assert.Contains(t, got.CleanText, "sexx")
		assert.NotContains(t, got.CleanText, "sexxx")
	})

	t.Run("zero width characters stripped", func(t *testing.T) {
		got := engine.Normalize("fl\u200birt")
		assert.Contains(t, got.CleanText, "flirt")
	})

	t.Run("fullwidth characters folded", func(t *testing.T) {
		got := engine.Normalize("ｓｅｘ")
		assert.Contains(t, got.CleanText, "sex")
	})

	t.Run("legitimate sentences survive", func(t *testing.T) {
		got := engine.Normalize("What is photosynthesis?")
		assert.Equal(t, "what is photosynthesis", got.CleanText)
		assert.Equal(t, []string{"what", "is", "photosynthesis"}, got.Tokens)
	})
}

func TestNormalizeEmptyInput(t *testing.T) {
	engine := newTestEngine(t)

	for _, input := range []string{"", "   ", "\n\t"} {
		got := engine.Normalize(input)
		assert.Empty(t, got.CleanText)
		assert.Empty(t, got.Tokens)
		assert.Equal(t, input, got.RawText)
		assert.Equal(t, LangEnglish, got.Language)
	}
}

func TestNormalizeStructuralSignals(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, got NormalizedInput)
	}{
		{
			name:  "ten digit phone",
			input: "call me at 9876543210",
			check: func(t *testing.T, got NormalizedInput) {
				assert.True(t, got.HasPhoneLike)
				assert.False(t, got.HasEmailLike)
			},
		},
		{
			name:  "grouped phone",
			input: "my number is 987-654-3210",
			check: func(t *testing.T, got NormalizedInput) {
				assert.True(t, got.HasPhoneLike)
			},
		},
		{
			name:  "email",
			input: "mail me at student@school.edu please",
			check: func(t *testing.T, got NormalizedInput) {
				assert.True(t, got.HasEmailLike)
				assert.False(t, got.HasPhoneLike)
			},
		},
		{
			name:  "url",
			input: "check www.example.com for notes",
			check: func(t *testing.T, got NormalizedInput) {
				assert.True(t, got.HasURLs)
			},
		},
		{
			name:  "plain sentence",
			input: "how do plants make food",
			check: func(t *testing.T, got NormalizedInput) {
				assert.False(t, got.HasPhoneLike)
				assert.False(t, got.HasEmailLike)
				assert.False(t, got.HasURLs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, engine.Normalize(tt.input))
		})
	}
}

func TestNormalizeLanguage(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, LangTamil, engine.Normalize("தாவரங்கள் பற்றி சொல்லுங்கள்").Language)
	assert.Equal(t, LangTamilTranslit, engine.Normalize("photosynthesis explain pannunga").Language)
	assert.Equal(t, LangEnglish, engine.Normalize("explain photosynthesis").Language)
}

func TestHashMessage(t *testing.T) {
	raw := "call me at 9876543210"
	hash := HashMessage(raw)

	require.Len(t, hash, 64)
	assert.NotEqual(t, raw, hash)
	assert.NotContains(t, hash, raw)

	// One-way but stable
	assert.Equal(t, hash, HashMessage(raw))
	assert.NotEqual(t, hash, HashMessage(raw+"!"))
}

func TestRedactMessage(t *testing.T) {
	assert.Equal(t, "[REDACTED]", RedactMessage("short message"))
	assert.Equal(t, "[REDACTED]", RedactMessage(""))

	long := strings.Repeat("a", 50)
	got := RedactMessage(long)
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaa... [50 chars]", got)
	assert.NotContains(t, got, strings.Repeat("a", 21))
}

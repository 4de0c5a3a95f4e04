package guardrail

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/achariya/guardrail/internal/catalog"
)

var (
	singleLetterSpaced = regexp.MustCompile(`^([a-z] )+[a-z]$`)
	spacedRun3         = regexp.MustCompile(`\b([a-z])\s+([a-z])\s+([a-z])\b`)
	spacedRun4         = regexp.MustCompile(`\b([a-z])\s+([a-z])\s+([a-z])\s+([a-z])\b`)
	spacedRun5         = regexp.MustCompile(`\b([a-z])\s+([a-z])\s+([a-z])\s+([a-z])\s+([a-z])\b`)
	punctuation        = regexp.MustCompile(`[^\w\s]`)
	whitespaceRun      = regexp.MustCompile(`\s+`)

	urlLike   = regexp.MustCompile(`(?i)https?://|www\.`)
	phoneLike = regexp.MustCompile(`\d{10,}|\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
	emailLike = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)

	tamilScript = regexp.MustCompile(`[\x{0B80}-\x{0BFF}]`)
)

// Normalize builds the canonical, evasion-resistant view of a raw message.
// Total over its input: any string, including empty, yields a valid result.
// The step order is load-bearing; each step assumes the previous one ran.
func (e *Engine) Normalize(rawText string) NormalizedInput {
	text := strings.ToLower(strings.TrimSpace(rawText))

	text = stripInvisible(text)
	text = norm.NFKC.String(text)
	text = e.cat.LeetReplacer().Replace(text)

	// A message that is nothing but spaced-out single letters is an evasion
	// attempt in its entirety; otherwise only repair short embedded runs so
	// real multi-word sentences survive. Longest runs first, or a 5-letter
	// run would be half-merged by the 3-letter pass.
	if singleLetterSpaced.MatchString(text) {
		text = strings.ReplaceAll(text, " ", "")
	} else {
		text = spacedRun5.ReplaceAllString(text, "$1$2$3$4$5")
		text = spacedRun4.ReplaceAllString(text, "$1$2$3$4")
		text = spacedRun3.ReplaceAllString(text, "$1$2$3")
	}

	text = collapseRepeats(text)

	cleanText := punctuation.ReplaceAllString(text, " ")
	cleanText = strings.TrimSpace(whitespaceRun.ReplaceAllString(cleanText, " "))

	return NormalizedInput{
		RawText:      rawText,
		CleanText:    cleanText,
		Tokens:       strings.Fields(cleanText),
		Language:     e.detectLanguage(rawText, cleanText),
		HasURLs:      urlLike.MatchString(rawText),
		HasPhoneLike: phoneLike.MatchString(rawText),
		HasEmailLike: emailLike.MatchString(rawText),
	}
}

// stripInvisible drops zero-width and control characters used to split
// words without visible spacing.
func stripInvisible(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == '\uFEFF' || unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, s)
}

// collapseRepeats reduces runs of 3+ identical runes to exactly 2. Two is
// the floor: collapsing to 1 would corrupt legitimately doubled letters.
func collapseRepeats(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	count := 0
	for _, r := range s {
		if r == prev {
			count++
		} else {
			prev, count = r, 1
		}
		if count <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// detectLanguage is a best-effort tag. Tamil script wins outright; romanized
// Tamil is guessed from cue words; everything else reads as English.
func (e *Engine) detectLanguage(rawText, cleanText string) string {
	if tamilScript.MatchString(rawText) {
		return LangTamil
	}
	for _, cue := range e.cat.Patterns(catalog.CategoryTamilCues) {
		if strings.Contains(cleanText, cue) {
			return LangTamilTranslit
		}
	}
	return LangEnglish
}

// HashMessage returns the one-way hash under which a message appears in log
// records. The raw text itself is never logged.
func HashMessage(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// RedactMessage produces the only human-readable form of a message allowed
// on a log surface: at most the first 20 characters plus the total length.
func RedactMessage(text string) string {
	runes := []rune(text)
	if len(runes) <= 20 {
		return "[REDACTED]"
	}
	return fmt.Sprintf("%s... [%d chars]", string(runes[:20]), len(runes))
}

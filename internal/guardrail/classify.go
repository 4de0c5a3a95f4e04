package guardrail

import (
	"slices"
	"strings"

	"github.com/achariya/guardrail/internal/catalog"
)

// Classify runs the fixed-priority cascade over a normalized message and
// returns exactly one label. The stage order is the safety policy itself:
// self-harm is checked first so it can never be shadowed by a broader
// match, and the learning-intent override deliberately lets borderline
// cheating phrasings through. Do not reorder casually.
func (e *Engine) Classify(input NormalizedInput) ClassifierOutput {
	cleanText, tokens := input.CleanText, input.Tokens

	// 1. Self-harm: the only escalation path.
	if m := e.matchAny(cleanText, catalog.CategorySelfHarm); len(m) > 0 {
		return blocked(LabelBlockSelfHarm, 0.95, "Self-harm ideation detected", m)
	}

	// 2. Explicit sexual content.
	if m := e.matchWords(cleanText, tokens, catalog.CategoryExplicitSexual); len(m) > 0 {
		return blocked(LabelBlockRomanceSexual, 0.95, "Explicit content detected", m)
	}

	// 3. Violence.
	if m := e.matchAny(cleanText, catalog.CategoryViolence); len(m) > 0 {
		return blocked(LabelBlockViolence, 0.90, "Violence-related content detected", m)
	}

	// 4. Romance/flirting.
	if m := e.matchWords(cleanText, tokens, catalog.CategoryRomance); len(m) > 0 {
		return blocked(LabelBlockRomanceSexual, 0.90, "Romance/dating content detected", m)
	}

	// 5. Profanity.
	if m := e.matchWords(cleanText, tokens, catalog.CategoryProfanity); len(m) > 0 {
		return blocked(LabelBlockProfanity, 0.90, "Profanity detected", m)
	}

	// 6. Harassment/bullying.
	if m := e.matchAny(cleanText, catalog.CategoryHarassment); len(m) > 0 {
		return blocked(LabelBlockHarassmentHate, 0.90, "Harassment/bullying detected", m)
	}

	// 7. Privacy/PII: catalog keywords or the structural signals computed
	// from the raw text. The synthetic markers make audit logs explain a
	// block that no literal pattern caused.
	privacyMatches := e.matchAny(cleanText, catalog.CategoryPrivacy)
	if len(privacyMatches) > 0 || input.HasPhoneLike || input.HasEmailLike {
		if input.HasPhoneLike {
			privacyMatches = append(privacyMatches, "phone-like pattern")
		}
		if input.HasEmailLike {
			privacyMatches = append(privacyMatches, "email-like pattern")
		}
		return blocked(LabelBlockPrivacyPersonalData, 0.85, "Personal data request detected", privacyMatches)
	}

	// 8. Illegal activity.
	if m := e.matchAny(cleanText, catalog.CategoryIllegal); len(m) > 0 {
		return blocked(LabelBlockIllegal, 0.90, "Illegal activity detected", m)
	}

	// 9. Cheating, unless a learning-intent cue is present. "Explain how to
	// solve this" passes; "give me the answers" does not.
	cheatingMatches := e.matchAny(cleanText, catalog.CategoryCheating)
	learningMatches := e.matchAny(cleanText, catalog.CategoryLearningIntent)
	if len(cheatingMatches) > 0 && len(learningMatches) == 0 {
		return blocked(LabelBlockCheating, 0.85, "Cheating request without learning intent", cheatingMatches)
	}

	// 10. Sensitive academic terms need a syllabus anchor.
	sensitiveMatches := e.matchWords(cleanText, tokens, catalog.CategorySensitiveAcademic)
	if len(sensitiveMatches) > 0 {
		syllabusMatches := e.matchAny(cleanText, catalog.CategorySyllabusCues)
		if len(syllabusMatches) > 0 {
			return ClassifierOutput{
				Label:           LabelAllowedAcademicSensitive,
				Confidence:      0.85,
				Reasons:         []string{"Sensitive topic with syllabus context"},
				AcademicDomain:  "biology",
				MatchedPatterns: append(sensitiveMatches, syllabusMatches...),
			}
		}
		return ClassifierOutput{
			Label:                LabelNeedClarificationAcademic,
			Confidence:           0.70,
			Reasons:              []string{"Sensitive topic without syllabus context"},
			AcademicDomain:       "biology",
			NeedsSyllabusContext: true,
			MatchedPatterns:      sensitiveMatches,
		}
	}

	// 11. Domain check: off-topic only when nothing academic matched at all.
	academicMatches := e.matchWords(cleanText, tokens, catalog.CategoryAcademicDomains)
	nonAcademicMatches := e.matchWords(cleanText, tokens, catalog.CategoryNonAcademicDomains)

	if len(nonAcademicMatches) > 0 && len(academicMatches) == 0 {
		return blocked(LabelBlockOtherNonAcademic, 0.75, "Non-academic topic detected", nonAcademicMatches)
	}

	if len(academicMatches) > 0 || len(learningMatches) > 0 {
		domain := "general"
		if len(academicMatches) > 0 {
			domain = academicMatches[0]
		}
		return ClassifierOutput{
			Label:           LabelAllowedAcademic,
			Confidence:      0.85,
			Reasons:         []string{"Academic topic detected"},
			AcademicDomain:  domain,
			MatchedPatterns: academicMatches,
		}
	}

	// 12. Default: nothing known-bad matched. The gate catches known-bad
	// patterns; unmatched input is deferred to the model's own judgment.
	return ClassifierOutput{
		Label:           LabelAllowedAcademic,
		Confidence:      0.70,
		Reasons:         []string{"No block patterns matched - deferring to model"},
		AcademicDomain:  "general",
		MatchedPatterns: []string{},
	}
}

func blocked(label Label, confidence float64, reason string, matches []string) ClassifierOutput {
	return ClassifierOutput{
		Label:           label,
		Confidence:      confidence,
		Reasons:         []string{reason},
		MatchedPatterns: matches,
	}
}

// matchAny reports every pattern in the category that occurs as a substring
// of the clean text.
func (e *Engine) matchAny(cleanText string, cat catalog.Category) []string {
	var matches []string
	for _, p := range e.cat.Patterns(cat) {
		if strings.Contains(cleanText, p) {
			matches = append(matches, p)
		}
	}
	return matches
}

// matchWords is the word-boundary-aware variant: multi-word phrases match as
// substrings, single words match as whole tokens and as substrings (to catch
// compounds), with duplicates removed.
func (e *Engine) matchWords(cleanText string, tokens []string, cat catalog.Category) []string {
	var matches []string
	for _, p := range e.cat.Patterns(cat) {
		if strings.Contains(p, " ") {
			if strings.Contains(cleanText, p) {
				matches = append(matches, p)
			}
			continue
		}
		if slices.Contains(tokens, p) || strings.Contains(cleanText, p) {
			if !slices.Contains(matches, p) {
				matches = append(matches, p)
			}
		}
	}
	return matches
}

// Package catalog holds the pattern lists, response templates and system
// prompts the guardrail pipeline consults. A Catalog is immutable after
// construction; matching is exact-substring over the listed patterns, so
// morphological variants belong in the data, not in the matcher.
package catalog

import "strings"

// Category identifies one pattern list in the catalog.
type Category string

const (
	CategorySelfHarm           Category = "self_harm"
	CategoryExplicitSexual     Category = "explicit_sexual"
	CategoryViolence           Category = "violence"
	CategoryRomance            Category = "romance"
	CategoryProfanity          Category = "profanity"
	CategoryHarassment         Category = "harassment"
	CategoryPrivacy            Category = "privacy"
	CategoryIllegal            Category = "illegal"
	CategoryCheating           Category = "cheating"
	CategoryLearningIntent     Category = "learning_intent"
	CategorySensitiveAcademic  Category = "sensitive_academic"
	CategorySyllabusCues       Category = "syllabus_cues"
	CategoryAcademicDomains    Category = "academic_domains"
	CategoryNonAcademicDomains Category = "non_academic_domains"
	CategoryEmotionalWellness  Category = "emotional_wellness"
	CategoryTamilCues          Category = "tamil_cues"
)

// TemplateKey identifies a canned response template.
type TemplateKey string

const (
	TemplateAcademicRedirect       TemplateKey = "ACADEMIC_REDIRECT"
	TemplateClarification          TemplateKey = "CLARIFICATION"
	TemplateClarificationSensitive TemplateKey = "CLARIFICATION_SENSITIVE"
	TemplateCheatingRedirect       TemplateKey = "CHEATING_REDIRECT"
	TemplatePrivacyRedirect        TemplateKey = "PRIVACY_REDIRECT"
	TemplateSelfHarmEscalation     TemplateKey = "SELF_HARM_ESCALATION"
	TemplateProfanityRedirect      TemplateKey = "PROFANITY_REDIRECT"
	TemplateHarassmentRedirect     TemplateKey = "HARASSMENT_REDIRECT"
	TemplateBlockGeneric           TemplateKey = "BLOCK_GENERIC"
)

// PromptVariant selects which system prompt the generative model is paired
// with when a message is forwarded.
type PromptVariant string

const (
	PromptNormal    PromptVariant = "normal"
	PromptSensitive PromptVariant = "sensitive"
)

// LeetRule is a single leetspeak substitution.
type LeetRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Catalog is the read-only pattern set consumed by the classifier. Build one
// with Default or Load at process start and never mutate it afterwards;
// concurrent readers are safe.
type Catalog struct {
	patterns  map[Category][]string
	templates map[TemplateKey]string
	prompts   map[PromptVariant]string
	leetRules []LeetRule
	leet      *strings.Replacer
}

// Patterns returns the pattern list for a category. Unknown categories
// return nil, which matchers treat as zero matches.
func (c *Catalog) Patterns(cat Category) []string {
	return c.patterns[cat]
}

// Template returns the canned response for a key, or an empty string when
// the key is not present.
func (c *Catalog) Template(key TemplateKey) string {
	return c.templates[key]
}

// SystemPrompt returns the prompt text for a variant. Anything other than
// the sensitive variant falls back to the normal prompt.
func (c *Catalog) SystemPrompt(variant PromptVariant) string {
	if variant == PromptSensitive {
		if p, ok := c.prompts[PromptSensitive]; ok {
			return p
		}
	}
	return c.prompts[PromptNormal]
}

// LeetReplacer returns the prepared leetspeak substitution pass.
// strings.Replacer replaces longest-match-first in a single left-to-right
// sweep, which is exactly the semantics the normalizer needs.
func (c *Catalog) LeetReplacer() *strings.Replacer {
	return c.leet
}

// LeetRules exposes the substitution table for validation tooling.
func (c *Catalog) LeetRules() []LeetRule {
	return c.leetRules
}

// Categories returns the categories present, for validation output.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.patterns))
	for cat := range c.patterns {
		out = append(out, cat)
	}
	return out
}

func build(patterns map[Category][]string, templates map[TemplateKey]string, prompts map[PromptVariant]string, rules []LeetRule) *Catalog {
	pairs := make([]string, 0, len(rules)*2)
	for _, r := range rules {
		pairs = append(pairs, r.From, r.To)
	}
	return &Catalog{
		patterns:  patterns,
		templates: templates,
		prompts:   prompts,
		leetRules: rules,
		leet:      strings.NewReplacer(pairs...),
	}
}

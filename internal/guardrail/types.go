// Package guardrail implements the content-safety gate that sits in front
// of the tutoring model: normalization, intent classification and decision
// routing over a read-only pattern catalog. The whole pipeline is pure
// computation with no I/O, safe for concurrent use.
package guardrail

import (
	"time"

	"github.com/achariya/guardrail/internal/catalog"
)

// Label is the single classification outcome for a message. Exactly one
// label is produced per message; the cascade stops at the first match.
type Label string

const (
	LabelAllowedAcademic           Label = "ALLOWED_ACADEMIC"
	LabelAllowedAcademicSensitive  Label = "ALLOWED_ACADEMIC_SENSITIVE"
	LabelNeedClarificationAcademic Label = "NEED_CLARIFICATION_ACADEMIC"
	LabelBlockRomanceSexual        Label = "BLOCK_ROMANCE_SEXUAL"
	LabelBlockHarassmentHate       Label = "BLOCK_HARASSMENT_HATE"
	LabelBlockProfanity            Label = "BLOCK_PROFANITY"
	LabelBlockSelfHarm             Label = "BLOCK_SELF_HARM"
	LabelBlockViolence             Label = "BLOCK_VIOLENCE"
	LabelBlockIllegal              Label = "BLOCK_ILLEGAL"
	LabelBlockCheating             Label = "BLOCK_CHEATING"
	LabelBlockPrivacyPersonalData  Label = "BLOCK_PRIVACY_PERSONAL_DATA"
	LabelBlockOtherNonAcademic     Label = "BLOCK_OTHER_NON_ACADEMIC"
)

// Labels lists every label the classifier can produce, in cascade order.
func Labels() []Label {
	return []Label{
		LabelBlockSelfHarm,
		LabelBlockRomanceSexual,
		LabelBlockViolence,
		LabelBlockProfanity,
		LabelBlockHarassmentHate,
		LabelBlockPrivacyPersonalData,
		LabelBlockIllegal,
		LabelBlockCheating,
		LabelAllowedAcademicSensitive,
		LabelNeedClarificationAcademic,
		LabelBlockOtherNonAcademic,
		LabelAllowedAcademic,
	}
}

// Action is what the caller must do with a classified message.
type Action string

const (
	ActionSendToGeminiNormal    Action = "SEND_TO_GEMINI_NORMAL"
	ActionSendToGeminiSensitive Action = "SEND_TO_GEMINI_SENSITIVE"
	ActionAskClarification      Action = "ASK_CLARIFICATION"
	ActionBlock                 Action = "BLOCK"
	ActionBlockCheating         Action = "BLOCK_CHEATING"
	ActionEscalateSelfHarm      Action = "ESCALATE_SELF_HARM"
	ActionRedirect              Action = "REDIRECT"
)

// Language tags produced by the normalizer. Advisory only: downstream logic
// never branches on them.
const (
	LangEnglish       = "en"
	LangTamil         = "ta"
	LangTamilTranslit = "ta-translit"
)

// NormalizedInput is the evasion-resistant view of one raw message. Built
// once by Normalize, consumed by Classify, never mutated.
type NormalizedInput struct {
	RawText      string   `json:"raw_text"`
	CleanText    string   `json:"clean_text"`
	Tokens       []string `json:"tokens"`
	Language     string   `json:"language"`
	HasURLs      bool     `json:"has_urls"`
	HasPhoneLike bool     `json:"has_phone_like"`
	HasEmailLike bool     `json:"has_email_like"`
}

// ClassifierOutput is the result of the classification cascade.
//
// Confidence is advisory and only ever compared within the ALLOWED_ACADEMIC
// branch of the router; it is never compared across labels.
type ClassifierOutput struct {
	Label                Label    `json:"label"`
	Confidence           float64  `json:"confidence"`
	Reasons              []string `json:"reasons"`
	AcademicDomain       string   `json:"academic_domain,omitempty"`
	NeedsSyllabusContext bool     `json:"needs_syllabus_context"`
	MatchedPatterns      []string `json:"matched_patterns"`
}

// Decision is the pipeline's final output for one message.
type Decision struct {
	Action           Action                `json:"action"`
	Label            Label                 `json:"label"`
	Response         string                `json:"response,omitempty"`
	ShouldCallGemini bool                  `json:"should_call_gemini"`
	SystemPrompt     catalog.PromptVariant `json:"system_prompt,omitempty"`
	LogData          LogData               `json:"log_data"`
}

// LogData is the per-message audit record. It must never contain
// recoverable user text: only the one-way hash and counts.
type LogData struct {
	Timestamp    time.Time `json:"timestamp"`
	MessageHash  string    `json:"message_hash"`
	Label        Label     `json:"label"`
	Confidence   float64   `json:"confidence"`
	Domain       string    `json:"domain,omitempty"`
	MatchedRules []string  `json:"matched_rules"`
	ActionTaken  Action    `json:"action_taken"`
	GeminiCalled bool      `json:"gemini_called"`
}

// Result bundles the outputs of all three stages for one message, mirroring
// what the chat relay returns to its caller.
type Result struct {
	Decision        Decision         `json:"decision"`
	NormalizedInput NormalizedInput  `json:"normalized_input"`
	Classification  ClassifierOutput `json:"classification"`
}

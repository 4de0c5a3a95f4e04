package guardrail

import (
	"time"

	"github.com/achariya/guardrail/internal/catalog"
)

// Route maps a classification to its action, canned response and audit
// record. Pure except for the timestamp. The switch is one arm per label;
// the default arm exists only because Label is an open string type on the
// wire and a corrupted value must still produce a safe redirect.
func (e *Engine) Route(input NormalizedInput, classification ClassifierOutput) Decision {
	var (
		action       Action
		response     string
		callGemini   bool
		systemPrompt catalog.PromptVariant
	)

	switch classification.Label {
	case LabelAllowedAcademic:
		if classification.Confidence >= 0.70 {
			action = ActionSendToGeminiNormal
			callGemini = true
			systemPrompt = catalog.PromptNormal
		} else {
			action = ActionAskClarification
			response = e.cat.Template(catalog.TemplateClarification)
		}

	case LabelAllowedAcademicSensitive:
		action = ActionSendToGeminiSensitive
		callGemini = true
		systemPrompt = catalog.PromptSensitive

	case LabelNeedClarificationAcademic:
		action = ActionAskClarification
		if classification.NeedsSyllabusContext {
			response = e.cat.Template(catalog.TemplateClarificationSensitive)
		} else {
			response = e.cat.Template(catalog.TemplateClarification)
		}

	case LabelBlockRomanceSexual:
		action = ActionBlock
		response = e.cat.Template(catalog.TemplateAcademicRedirect)

	case LabelBlockProfanity:
		action = ActionBlock
		response = e.cat.Template(catalog.TemplateProfanityRedirect)

	case LabelBlockHarassmentHate:
		action = ActionBlock
		response = e.cat.Template(catalog.TemplateHarassmentRedirect)

	case LabelBlockPrivacyPersonalData:
		action = ActionBlock
		response = e.cat.Template(catalog.TemplatePrivacyRedirect)

	case LabelBlockCheating:
		action = ActionBlockCheating
		response = e.cat.Template(catalog.TemplateCheatingRedirect)

	case LabelBlockIllegal:
		action = ActionBlock
		response = e.cat.Template(catalog.TemplateAcademicRedirect)

	case LabelBlockSelfHarm:
		action = ActionEscalateSelfHarm
		response = e.cat.Template(catalog.TemplateSelfHarmEscalation)

	case LabelBlockViolence:
		action = ActionBlock
		response = e.cat.Template(catalog.TemplateAcademicRedirect)

	case LabelBlockOtherNonAcademic:
		action = ActionRedirect
		response = e.cat.Template(catalog.TemplateBlockGeneric)

	default:
		action = ActionRedirect
		response = e.cat.Template(catalog.TemplateAcademicRedirect)
	}

	return Decision{
		Action:           action,
		Label:            classification.Label,
		Response:         response,
		ShouldCallGemini: callGemini,
		SystemPrompt:     systemPrompt,
		LogData: LogData{
			Timestamp:    time.Now().UTC(),
			MessageHash:  HashMessage(input.RawText),
			Label:        classification.Label,
			Confidence:   classification.Confidence,
			Domain:       classification.AcademicDomain,
			MatchedRules: classification.MatchedPatterns,
			ActionTaken:  action,
			GeminiCalled: callGemini,
		},
	}
}

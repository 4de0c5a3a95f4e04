package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	for _, category := range []Category{
		CategorySelfHarm, CategoryExplicitSexual, CategoryViolence,
		CategoryRomance, CategoryProfanity, CategoryHarassment,
		CategoryPrivacy, CategoryIllegal, CategoryCheating,
		CategoryLearningIntent, CategorySensitiveAcademic,
		CategorySyllabusCues, CategoryAcademicDomains,
		CategoryNonAcademicDomains, CategoryEmotionalWellness,
		CategoryTamilCues,
	} {
		assert.NotEmpty(t, cat.Patterns(category), "category %s", category)
	}

	assert.Nil(t, cat.Patterns(Category("no_such_category")))
	assert.NotEmpty(t, cat.Template(TemplateSelfHarmEscalation))
	assert.Empty(t, cat.Template(TemplateKey("NO_SUCH_TEMPLATE")))
	assert.NotEmpty(t, cat.LeetRules())
}

func TestSystemPromptSelection(t *testing.T) {
	cat := Default()

	normal := cat.SystemPrompt(PromptNormal)
	sensitive := cat.SystemPrompt(PromptSensitive)

	require.NotEmpty(t, normal)
	require.NotEmpty(t, sensitive)
	assert.NotEqual(t, normal, sensitive)

	// Anything other than the sensitive variant resolves to normal.
	assert.Equal(t, normal, cat.SystemPrompt(""))
	assert.Equal(t, normal, cat.SystemPrompt(PromptVariant("bogus")))
}

func TestLeetReplacer(t *testing.T) {
	cat := Default()
	assert.Equal(t, "sex", cat.LeetReplacer().Replace("s3x"))
	assert.Equal(t, "ass", cat.LeetReplacer().Replace("4s$"))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cat, warnings, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, Default().Patterns(CategorySelfHarm), cat.Patterns(CategorySelfHarm))
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
version: "1"
patterns:
  profanity:
    - "Badword"
    - "  otherword  "
  made_up_category:
    - "whatever"
templates:
  ACADEMIC_REDIRECT: "Custom redirect."
  NOT_A_TEMPLATE: "ignored"
prompts:
  normal: "Custom tutor prompt."
  mystery: "ignored"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat, warnings, err := Load(path)
	require.NoError(t, err)

	// Overridden sections replace wholesale, lowercased and trimmed.
	assert.Equal(t, []string{"badword", "otherword"}, cat.Patterns(CategoryProfanity))
	// Untouched sections keep defaults.
	assert.Equal(t, Default().Patterns(CategorySelfHarm), cat.Patterns(CategorySelfHarm))
	assert.Equal(t, "Custom redirect.", cat.Template(TemplateAcademicRedirect))
	assert.Equal(t, "Custom tutor prompt.", cat.SystemPrompt(PromptNormal))
	assert.Equal(t, Default().SystemPrompt(PromptSensitive), cat.SystemPrompt(PromptSensitive))

	// Unknown keys warn instead of failing.
	assert.Len(t, warnings, 3)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns: [not, a, map]"), 0o644))

	_, _, err := Load(path)
	assert.Error(t, err)
}

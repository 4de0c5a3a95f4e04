package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override format. Every section is optional; a section
// that is present replaces the corresponding built-in data wholesale so
// deployments can trim lists as well as extend them.
type File struct {
	Version   string              `yaml:"version"`
	Patterns  map[string][]string `yaml:"patterns"`
	Templates map[string]string   `yaml:"templates"`
	Prompts   map[string]string   `yaml:"prompts"`
	Leetspeak []LeetRule          `yaml:"leetspeak"`
}

// Load builds a catalog from the defaults merged with the YAML file at path.
// A missing file yields the defaults unchanged. Unknown category or template
// keys are reported via the returned warnings but never fail the load; the
// classifier treats unknown categories as zero matches anyway.
func Load(path string) (*Catalog, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil, nil
		}
		return nil, nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return merge(&file)
}

func merge(file *File) (*Catalog, []string, error) {
	var warnings []string

	patterns := defaultPatterns()
	known := make(map[Category]bool, len(patterns))
	for cat := range patterns {
		known[cat] = true
	}
	for key, list := range file.Patterns {
		cat := Category(strings.ToLower(key))
		if !known[cat] {
			warnings = append(warnings, fmt.Sprintf("unknown pattern category %q ignored", key))
			continue
		}
		patterns[cat] = lowered(list)
	}

	templates := defaultTemplates()
	for key, text := range file.Templates {
		tk := TemplateKey(strings.ToUpper(key))
		if _, ok := templates[tk]; !ok {
			warnings = append(warnings, fmt.Sprintf("unknown template key %q ignored", key))
			continue
		}
		templates[tk] = text
	}

	prompts := defaultPrompts()
	for key, text := range file.Prompts {
		switch PromptVariant(strings.ToLower(key)) {
		case PromptNormal:
			prompts[PromptNormal] = text
		case PromptSensitive:
			prompts[PromptSensitive] = text
		default:
			warnings = append(warnings, fmt.Sprintf("unknown prompt variant %q ignored", key))
		}
	}

	rules := defaultLeetRules()
	if len(file.Leetspeak) > 0 {
		rules = rules[:0:0]
		for _, r := range file.Leetspeak {
			if r.From == "" {
				warnings = append(warnings, "leetspeak rule with empty source ignored")
				continue
			}
			rules = append(rules, LeetRule{From: r.From, To: r.To})
		}
	}

	return build(patterns, templates, prompts, rules), warnings, nil
}

// Patterns are matched against lowercased text, so the lists themselves must
// be lowercase regardless of how the file was authored.
func lowered(list []string) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

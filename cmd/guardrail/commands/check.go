package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/achariya/guardrail/internal/catalog"
	"github.com/achariya/guardrail/internal/guardrail"
)

var (
	catalogPath string
	outputJSON  bool
)

// SetCatalogPath sets the catalog override file used by all commands.
func SetCatalogPath(path string) {
	catalogPath = path
}

// SetOutputJSON sets the output format preference.
func SetOutputJSON(v bool) {
	outputJSON = v
}

func loadCatalog() (*catalog.Catalog, error) {
	if catalogPath == "" {
		return catalog.Default(), nil
	}
	cat, warnings, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return cat, nil
}

func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [message]",
		Short: "Classify a message exactly as the server would",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			engine := guardrail.New(cat, zap.NewNop())
			result := engine.ProcessMessage(strings.Join(args, " "))

			if outputJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "label:\t%s\n", result.Decision.Label)
			fmt.Fprintf(w, "action:\t%s\n", result.Decision.Action)
			fmt.Fprintf(w, "confidence:\t%.2f\n", result.Classification.Confidence)
			fmt.Fprintf(w, "forward to model:\t%t\n", result.Decision.ShouldCallGemini)
			if result.Decision.SystemPrompt != "" {
				fmt.Fprintf(w, "system prompt:\t%s\n", result.Decision.SystemPrompt)
			}
			if result.Decision.Response != "" {
				fmt.Fprintf(w, "response:\t%s\n", result.Decision.Response)
			}
			if len(result.Classification.MatchedPatterns) > 0 {
				fmt.Fprintf(w, "matched:\t%s\n", strings.Join(result.Classification.MatchedPatterns, ", "))
			}
			fmt.Fprintf(w, "language:\t%s\n", result.NormalizedInput.Language)
			return w.Flush()
		},
	}
}

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func NewCatalogCommand() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate pattern catalogs",
	}
	catalogCmd.AddCommand(newCatalogValidateCommand())
	return catalogCmd
}

func newCatalogValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the catalog override file and show category sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			categories := cat.Categories()
			sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

			if outputJSON {
				counts := make(map[string]int, len(categories))
				for _, c := range categories {
					counts[string(c)] = len(cat.Patterns(c))
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"categories": counts,
					"leet_rules": len(cat.LeetRules()),
				})
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%d patterns\n", c, len(cat.Patterns(c)))
			}
			fmt.Fprintf(w, "leetspeak\t%d rules\n", len(cat.LeetRules()))
			return w.Flush()
		},
	}
}

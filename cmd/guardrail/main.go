package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/achariya/guardrail/cmd/guardrail/commands"
)

var (
	catalogPath string
	outputJSON  bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "guardrail",
		Short: "Guardrail management CLI",
		Long: `Inspect the content-safety pipeline from the terminal: classify a
message exactly as the server would, and validate pattern catalog files.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commands.SetCatalogPath(catalogPath)
			commands.SetOutputJSON(outputJSON)
		},
	}

	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a catalog override file (default: built-in catalog)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewCatalogCommand())

	return rootCmd
}

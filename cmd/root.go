package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asharali-codefied/Worklog-manager-gemini/internal/registry"
)

// store is the registry store shared by all subcommands, resolved in
// PersistentPreRunE.
var store registry.Store

// reg holds the loaded registry, populated in PersistentPreRunE.
var reg *registry.Registry

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "Generate daily work logs from git history with an LLM backend",
	Long: `worklog turns recent git history into a human-readable activity report.

It lists the commits of the active project since a time window, feeds their
diffs to an external generation CLI (gemini by default), and writes the
result to a dated markdown file inside the repository.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		store, err = registry.NewStore()
		if err != nil {
			return fmt.Errorf("opening registry: %w", err)
		}
		reg, err = store.Load()
		if err != nil {
			return fmt.Errorf("loading registry: %w", err)
		}
		return nil
	},
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

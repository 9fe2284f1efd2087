package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asharali-codefied/Worklog-manager-gemini/internal/registry"
)

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if _, exists := reg.Projects[name]; !exists {
			return fmt.Errorf("project %q: %w", name, registry.ErrUnknownProject)
		}

		reg.Active = name
		if err := store.Save(reg); err != nil {
			return err
		}

		cmd.Printf("Active project: %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}

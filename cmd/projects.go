package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/asharali-codefied/Worklog-manager-gemini/internal/registry"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List registered projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(reg.Projects) == 0 {
			cmd.Println("No projects registered. Add one with 'worklog projects add <name> <path>'.")
			return nil
		}
		for _, name := range reg.Names() {
			marker := " "
			if name == reg.Active {
				marker = "*"
			}
			cmd.Printf("%s %s\t%s\n", marker, name, reg.Projects[name].Path)
		}
		return nil
	},
}

var projectsAddCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "Register a project repository",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, path := args[0], args[1]
		if _, exists := reg.Projects[name]; exists {
			return fmt.Errorf("project %q already registered", name)
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}

		reg.Projects[name] = registry.Project{
			ID:   uuid.New().String(),
			Path: abs,
		}
		// First project becomes active so generate works immediately.
		if reg.Active == "" {
			reg.Active = name
		}
		if err := store.Save(reg); err != nil {
			return err
		}

		cmd.Printf("Registered %q at %s\n", name, abs)
		return nil
	},
}

var projectsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a project from the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if _, exists := reg.Projects[name]; !exists {
			return fmt.Errorf("project %q: %w", name, registry.ErrUnknownProject)
		}

		delete(reg.Projects, name)
		if reg.Active == name {
			reg.Active = ""
		}
		if err := store.Save(reg); err != nil {
			return err
		}

		cmd.Printf("Removed %q\n", name)
		return nil
	},
}

func init() {
	projectsCmd.AddCommand(projectsAddCmd)
	projectsCmd.AddCommand(projectsRemoveCmd)
	rootCmd.AddCommand(projectsCmd)
}

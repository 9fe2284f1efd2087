package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/asharali-codefied/Worklog-manager-gemini/internal/backend"
	"github.com/asharali-codefied/Worklog-manager-gemini/internal/history"
	"github.com/asharali-codefied/Worklog-manager-gemini/internal/pipeline"
	"github.com/asharali-codefied/Worklog-manager-gemini/internal/tui"
	"github.com/asharali-codefied/Worklog-manager-gemini/internal/window"
)

var generateCmd = &cobra.Command{
	Use:     "generate [window]",
	Aliases: []string{"gen"},
	Short:   "Generate a work log for commits since the given window",
	Long: `Generate a work log for the active project.

The optional window token selects the lower bound for commit history:
"today" (default), "yesterday", or a YYYY-MM-DD date. An unrecognized
token falls back to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, proj, err := reg.ActiveProject()
		if err != nil {
			return err
		}
		if _, err := os.Stat(proj.Path); err != nil {
			return fmt.Errorf("project %q path %s is not accessible: %w", name, proj.Path, err)
		}

		token := ""
		if len(args) == 1 {
			token = args[0]
		}
		since := window.Resolve(token, time.Now())

		sp := tui.Start("listing commits")
		p := &pipeline.Pipeline{
			Extractor: &history.Extractor{
				RepoPath:     proj.Path,
				MaxCommits:   reg.MaxCommits,
				MaxDiffBytes: reg.MaxDiffBytes,
			},
			Invoker:  backend.New(reg.Backend),
			Progress: sp.Update,
		}

		res, err := p.Run(context.Background(), pipeline.Project{
			Name:         name,
			RepoPath:     proj.Path,
			OutputFolder: reg.OutputFolder,
		}, since)
		sp.Stop()
		if err != nil {
			return err
		}

		if res.Empty {
			cmd.Printf("No commits found since %s\n", since.Format("2006-01-02 15:04:05 MST"))
			return nil
		}

		cmd.Printf("Work log for %q (%d commits) written to %s\n", name, res.Commits, res.OutputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

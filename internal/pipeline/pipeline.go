// Package pipeline orchestrates one worklog generation run: list commits in
// the window, fetch their diffs, assemble the prompt, invoke the backend,
// and write the dated report.
package pipeline

import (
	"context"
	"time"

	"github.com/asharali-codefied/Worklog-manager-gemini/internal/backend"
	"github.com/asharali-codefied/Worklog-manager-gemini/internal/history"
	"github.com/asharali-codefied/Worklog-manager-gemini/internal/prompt"
	"github.com/asharali-codefied/Worklog-manager-gemini/internal/worklog"
)

// Project is the read-only project context the pipeline operates on,
// supplied by the caller at invocation start.
type Project struct {
	Name         string
	RepoPath     string
	OutputFolder string
}

// Result summarizes one completed run.
type Result struct {
	Since      time.Time
	Commits    int    // diffs fetched and fed to the backend
	OutputPath string // empty when Empty is true
	Empty      bool   // zero commits in the window; nothing was generated
}

// Pipeline wires the stages together. Each run is strictly sequential:
// stages are awaited one at a time and any failure aborts the run before
// the output file is touched.
type Pipeline struct {
	Extractor *history.Extractor
	Invoker   *backend.Invoker
	// Progress, if set, is notified with a short label as each stage starts.
	// It is a display capability only; the pipeline never depends on it.
	Progress func(stage string)
	// Clock supplies the date used for the output file name. If nil, time.Now.
	Clock func() time.Time
}

func (p *Pipeline) notify(stage string) {
	if p.Progress != nil {
		p.Progress(stage)
	}
}

// Run executes one generation for project with the given window lower bound.
func (p *Pipeline) Run(ctx context.Context, project Project, since time.Time) (Result, error) {
	res := Result{Since: since}

	p.notify("listing commits")
	hashes, err := p.Extractor.ListCommits(since)
	if err != nil {
		return res, err
	}
	if len(hashes) == 0 {
		res.Empty = true
		return res, nil
	}

	// Diffs are fetched one at a time to bound peak memory; latency is
	// proportional to the number of retained commits.
	batch := make([]history.Commit, 0, len(hashes))
	for _, hash := range hashes {
		p.notify("fetching diff " + hash[:min(8, len(hash))])
		c, err := p.Extractor.FetchDiff(hash)
		if err != nil {
			return res, err
		}
		batch = append(batch, c)
	}
	res.Commits = len(batch)

	p.notify("generating report")
	payload := prompt.Build(batch)
	report, err := p.Invoker.Invoke(ctx, payload)
	if err != nil {
		return res, err
	}

	p.notify("writing worklog")
	now := time.Now()
	if p.Clock != nil {
		now = p.Clock()
	}
	path, err := worklog.Write(project.RepoPath, project.OutputFolder, report, now)
	if err != nil {
		return res, err
	}
	res.OutputPath = path
	return res, nil
}

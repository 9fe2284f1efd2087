// Package worklog persists generated reports under a per-project output
// directory, one file per date.
package worklog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Write persists report to {repoPath}/{folder}/{YYYY-MM-DD}.md, creating any
// missing directories. An existing file for the same date is overwritten
// unconditionally. Returns the absolute path written.
func Write(repoPath, folder, report string, date time.Time) (string, error) {
	dir := filepath.Join(repoPath, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	day := date.Format("2006-01-02")
	path := filepath.Join(dir, day+".md")

	var b strings.Builder
	fmt.Fprintf(&b, "# Work Log — %s\n\n", day)
	b.WriteString(strings.TrimSpace(report))
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing worklog file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

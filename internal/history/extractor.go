// Package history extracts bounded commit history and diffs from a local
// git repository.
package history

import (
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultMaxCommits bounds how many commits a single run will fetch diffs for.
const DefaultMaxCommits = 10

// DefaultMaxDiffBytes bounds a single captured diff. Large repositories can
// produce multi-megabyte diffs per commit; the limit exists so an oversized
// capture fails loudly instead of being truncated.
const DefaultMaxDiffBytes = 64 << 20

// GitRunner executes a git command inside workDir and returns its stdout.
// This abstraction allows mocking in tests.
type GitRunner func(workDir string, args ...string) (string, error)

// defaultGitRunner runs git as a real subprocess. Arguments are passed as a
// discrete argv, never through a shell.
func defaultGitRunner(workDir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = workDir
	out, err := cmd.Output()
	return string(out), err
}

// Commit is one extracted commit: its full hash and the unified diff text,
// including the author/date header lines git prints before the patch.
type Commit struct {
	Hash string
	Diff string
}

// ShortHash returns the abbreviated form of the commit hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) > 8 {
		return c.Hash[:8]
	}
	return c.Hash
}

// Extractor queries a git repository for commits after a timestamp.
type Extractor struct {
	RepoPath     string
	Runner       GitRunner // if nil, uses the real git subprocess
	MaxCommits   int       // if 0, DefaultMaxCommits
	MaxDiffBytes int       // if 0, DefaultMaxDiffBytes
}

func (e *Extractor) runner() GitRunner {
	if e.Runner != nil {
		return e.Runner
	}
	return defaultGitRunner
}

// ListCommits returns the full hashes of commits at or after since,
// most-recent-first, truncated to the configured cap. The truncation happens
// before any diff retrieval so a huge window never causes a huge run.
func (e *Extractor) ListCommits(since time.Time) ([]string, error) {
	args := []string{"log", "--since=" + since.Format(time.RFC3339), "--pretty=format:%H"}
	out, err := e.runner()(e.RepoPath, args...)
	if err != nil {
		return nil, &QueryError{RepoPath: e.RepoPath, Args: args, Err: err}
	}

	var hashes []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			hashes = append(hashes, line)
		}
	}

	limit := e.MaxCommits
	if limit <= 0 {
		limit = DefaultMaxCommits
	}
	if len(hashes) > limit {
		hashes = hashes[:limit]
	}
	return hashes, nil
}

// FetchDiff retrieves one commit's unified diff (3 lines of context) with
// the hash/author/date header, trimmed of boundary whitespace.
func (e *Extractor) FetchDiff(hash string) (Commit, error) {
	args := []string{"show", "--no-color", "--unified=3", hash}
	out, err := e.runner()(e.RepoPath, args...)
	if err != nil {
		return Commit{}, &QueryError{RepoPath: e.RepoPath, Args: args, Err: err}
	}

	limit := e.MaxDiffBytes
	if limit <= 0 {
		limit = DefaultMaxDiffBytes
	}
	if len(out) > limit {
		return Commit{}, &OutputTooLargeError{Hash: hash, Size: len(out), Limit: limit}
	}

	return Commit{Hash: hash, Diff: strings.TrimSpace(out)}, nil
}

// QueryError is returned when a git query process fails: the path is not a
// repository, git is missing, or the query itself is rejected.
type QueryError struct {
	RepoPath string
	Args     []string
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("git %s in %s: %v", strings.Join(e.Args, " "), e.RepoPath, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// OutputTooLargeError is returned when a captured diff exceeds the configured
// buffer limit. The diff is discarded rather than truncated.
type OutputTooLargeError struct {
	Hash  string
	Size  int
	Limit int
}

func (e *OutputTooLargeError) Error() string {
	return fmt.Sprintf("diff for %s is %d bytes, over the %d byte limit — raise max_diff_bytes in the registry", e.Hash, e.Size, e.Limit)
}

// Package prompt assembles the instruction payload sent to the generation
// backend.
package prompt

import (
	"strings"

	"github.com/asharali-codefied/Worklog-manager-gemini/internal/history"
)

// Separator sits between consecutive commit diffs in the payload.
const Separator = "\n\n---\n\n"

const header = `You are given the recent commit history of a software project as a series of unified diffs, separated by horizontal rules.

Produce two sections:

1. A bulleted developer work log, one bullet per commit, referencing each commit by its short hash and describing what changed.
2. A bulleted progress summary written for a non-engineering audience, with no technical jargon.

Separate the two sections with a horizontal rule (---).

Commit diffs:

`

// Build assembles the full prompt for a batch of commits. It is a pure
// function of its input: the same batch always yields byte-identical output.
func Build(batch []history.Commit) string {
	var b strings.Builder
	b.WriteString(header)

	for i, c := range batch {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(c.Diff)
	}

	return b.String()
}

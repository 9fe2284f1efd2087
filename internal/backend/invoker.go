// Package backend invokes the external text-generation process.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// RunFunc executes the backend with the given stdin payload and returns its
// stdout. This abstraction allows mocking in tests.
type RunFunc func(ctx context.Context, stdin string) (string, error)

// Invoker runs the generation backend as a child process. The prompt goes to
// its stdin, stdout is captured in full, and stderr is passed through to the
// operator's terminal so authentication and runtime errors are visible live.
type Invoker struct {
	Command string
	Args    []string
	Run     RunFunc // if nil, spawns the real backend subprocess
}

// New builds an Invoker from a backend argv. The first element is the
// executable; the rest are its arguments.
func New(argv []string) *Invoker {
	if len(argv) == 0 {
		return &Invoker{Command: "gemini"}
	}
	return &Invoker{Command: argv[0], Args: argv[1:]}
}

// Invoke sends prompt to the backend and returns its trimmed stdout.
// A non-zero exit fails with a *ProcessError carrying the exit code; there
// is no retry and no partial-output salvage.
func (iv *Invoker) Invoke(ctx context.Context, prompt string) (string, error) {
	run := iv.Run
	if run == nil {
		run = iv.runProcess
	}

	out, err := run(ctx, prompt)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ProcessError{Command: iv.Command, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return "", fmt.Errorf("running %s: %w", iv.Command, err)
	}
	return strings.TrimSpace(out), nil
}

// runProcess spawns the real backend. Stdin is closed after the prompt is
// written; the call blocks until the process exits.
func (iv *Invoker) runProcess(ctx context.Context, stdin string) (string, error) {
	cmd := exec.CommandContext(ctx, iv.Command, iv.Args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out

	err := cmd.Run()
	return out.String(), err
}

// ProcessError is returned when the backend exits non-zero.
type ProcessError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s exited code %d", e.Command, e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

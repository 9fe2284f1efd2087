// Package tui provides the terminal progress indicator shown while a
// worklog run is talking to git and the generation backend.
package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

var (
	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Spinner is a progress indicator rendered to stderr. A nil *Spinner is a
// valid no-op, so callers never need to branch on whether a terminal is
// attached.
type Spinner struct {
	prog *tea.Program
	done chan struct{}
}

type labelMsg string

type stopMsg struct{}

type model struct {
	sp    spinner.Model
	label string
}

func (m model) Init() tea.Cmd {
	return m.sp.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case labelMsg:
		m.label = string(msg)
		return m, nil
	case stopMsg:
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	return m.sp.View() + " " + labelStyle.Render(m.label)
}

// Start launches the spinner with an initial label. Returns nil when stderr
// is not an interactive terminal (pipes, tests, CI).
func Start(label string) *Spinner {
	if !term.IsTerminal(os.Stderr.Fd()) {
		return nil
	}

	m := model{
		sp: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(spinnerStyle),
		),
		label: label,
	}
	prog := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	s := &Spinner{prog: prog, done: make(chan struct{})}
	go func() {
		_, _ = prog.Run()
		close(s.done)
	}()
	return s
}

// Update replaces the spinner label.
func (s *Spinner) Update(label string) {
	if s == nil {
		return
	}
	s.prog.Send(labelMsg(label))
}

// Stop halts the spinner and waits for the terminal to be restored. Callers
// must Stop before printing a result or an error so output is not redrawn over.
func (s *Spinner) Stop() {
	if s == nil {
		return
	}
	s.prog.Send(stopMsg{})
	<-s.done
}

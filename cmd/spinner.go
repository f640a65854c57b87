package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type requestDoneMsg struct {
	err error
}

type requestSpinnerModel struct {
	spinner spinner.Model
	label   string
	wait    tea.Cmd
	err     error
	done    bool
}

func newRequestSpinnerModel(label string, wait tea.Cmd) requestSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return requestSpinnerModel{
		spinner: s,
		label:   label,
		wait:    wait,
	}
}

func (m requestSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m requestSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case requestDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m requestSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// withSpinner runs fetch while a spinner is drawn on output. Without a
// terminal it simply runs fetch. fetch always runs to completion before
// withSpinner returns, even when the spinner is stopped early.
func withSpinner(ctx context.Context, output io.Writer, label string, fetch func(context.Context) error) error {
	if !stderrIsTerminal(output) {
		return fetch(ctx)
	}

	var fetchErr error
	finished := make(chan struct{})
	go func() {
		fetchErr = fetch(ctx)
		close(finished)
	}()

	wait := func() tea.Msg {
		<-finished
		return requestDoneMsg{err: fetchErr}
	}

	p := tea.NewProgram(
		newRequestSpinnerModel(label, wait),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	// The program stops early when ctx is cancelled; the request result is
	// still the one that counts.
	_, _ = p.Run()
	<-finished
	return fetchErr
}

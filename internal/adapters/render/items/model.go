package items

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	sections []Section
	styles   styles
	output   string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderSections(m.sections, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out the sections through a one-shot bubbletea program.
func Render(sections ...Section) (string, error) {
	p := tea.NewProgram(
		model{sections: sections, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// String renders the sections directly, for callers that are already
// interacting with the terminal.
func String(sections ...Section) string {
	return renderSections(sections, newStyles())
}

func renderSections(sections []Section, s styles) string {
	blocks := make([]string, 0, len(sections))
	for _, section := range sections {
		if block := section.render(s); block != "" {
			blocks = append(blocks, block)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

package items

import (
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	folder lipgloss.Style
	file   lipgloss.Style
	link   lipgloss.Style
	id     lipgloss.Style
	parent lipgloss.Style
	index  lipgloss.Style
	empty  lipgloss.Style
	border lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		folder: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		file:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		link:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		id:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		parent: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		index:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:  lipgloss.NewStyle().Faint(true),
		border: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

func (s styles) name(t domain.ItemType) lipgloss.Style {
	switch t {
	case domain.ItemTypeFolder:
		return s.folder
	case domain.ItemTypeWebLink:
		return s.link
	default:
		return s.file
	}
}

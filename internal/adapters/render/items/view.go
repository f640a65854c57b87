package items

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/bnema/boxtools-cli/internal/application"
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Section is one block of rendered output.
type Section interface {
	render(s styles) string
}

// Listing is the content of a single folder.
type Listing struct {
	Folder domain.Item
	Items  []domain.Item
}

// ItemList is a flat list of items with their parents, used for search
// results, stat output and the history.
type ItemList struct {
	Title string
	Items []domain.Item
}

// Candidates is the numbered table shown when a token is ambiguous.
type Candidates struct {
	Token string
	Items []domain.Item
}

type Tree struct {
	Entries     []application.TreeEntry
	Interrupted bool
}

type Path struct {
	Items []domain.Item
}

type User struct {
	User ports.User
}

type Aliases struct {
	Aliases []domain.Alias
}

type Recent struct {
	Folders []domain.RecentFolder
}

type Message struct {
	Text string
}

func (l Listing) render(s styles) string {
	title := s.title.Render(Sanitize(l.Folder.Name)+"/") + " " +
		s.header.Render(fmt.Sprintf("(%s, %s)", l.Folder.ID, plural(len(l.Items), "item")))
	if len(l.Items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.empty.Render("(empty)"))
	}

	rows := make([][]string, 0, len(l.Items))
	for _, item := range l.Items {
		rows = append(rows, []string{displayName(item), string(item.ID), string(item.Type)})
	}

	body := renderTable(s, []string{"NAME", "ID", "TYPE"}, rows, func(row, col int) lipgloss.Style {
		switch col {
		case 0:
			return s.name(l.Items[row].Type)
		case 1:
			return s.id
		default:
			return s.header
		}
	})

	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

func (l ItemList) render(s styles) string {
	var lines []string
	if l.Title != "" {
		lines = append(lines, s.title.Render(l.Title)+" "+s.header.Render("("+plural(len(l.Items), "item")+")"))
	}
	if len(l.Items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("(none)"))...)
	}

	lines = append(lines, itemTable(s, l.Items, false))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (c Candidates) render(s styles) string {
	title := s.title.Render(Sanitize(c.Token)) + " " + s.header.Render("matches "+plural(len(c.Items), "item")+":")
	return lipgloss.JoinVertical(lipgloss.Left, title, itemTable(s, c.Items, true))
}

func itemTable(s styles, items []domain.Item, numbered bool) string {
	headers := []string{"NAME", "ID", "PARENT"}
	if numbered {
		headers = append([]string{"#"}, headers...)
	}

	rows := make([][]string, 0, len(items))
	for i, item := range items {
		parent := Sanitize(item.ParentName)
		if parent == "" && item.ParentID != "" {
			parent = string(item.ParentID)
		}
		row := []string{displayName(item), string(item.ID), parent}
		if numbered {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}

	offset := 0
	if numbered {
		offset = 1
	}

	return renderTable(s, headers, rows, func(row, col int) lipgloss.Style {
		switch col - offset {
		case -1:
			return s.index
		case 0:
			return s.name(items[row].Type)
		case 1:
			return s.id
		default:
			return s.parent
		}
	})
}

func (t Tree) render(s styles) string {
	lines := make([]string, 0, len(t.Entries)+1)
	for _, entry := range t.Entries {
		indent := strings.Repeat("  ", entry.Depth)
		lines = append(lines, indent+s.name(entry.Item.Type).Render(displayName(entry.Item))+"  "+s.id.Render(string(entry.Item.ID)))
	}
	if t.Interrupted {
		lines = append(lines, s.empty.Render("(interrupted)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p Path) render(s styles) string {
	if len(p.Items) == 0 {
		return ""
	}

	names := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		names = append(names, Sanitize(item.Name))
	}
	last := p.Items[len(p.Items)-1]
	return s.name(last.Type).Render(strings.Join(names, "/")+last.Type.Suffix()) + "  " + s.id.Render(string(last.ID))
}

func (u User) render(s styles) string {
	title := s.title.Render(Sanitize(u.User.Name))
	if u.User.Login != "" {
		title += " " + s.header.Render("<"+Sanitize(u.User.Login)+">")
	}

	usage := fmt.Sprintf("space: %s used", formatBytes(u.User.SpaceUsed))
	if u.User.SpaceTotal > 0 {
		usage = fmt.Sprintf("space: %s of %s used (%.1f%%)",
			formatBytes(u.User.SpaceUsed), formatBytes(u.User.SpaceTotal),
			float64(u.User.SpaceUsed)*100/float64(u.User.SpaceTotal))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, s.id.Render("id: "+u.User.ID), usage)
}

func (a Aliases) render(s styles) string {
	if len(a.Aliases) == 0 {
		return s.empty.Render("(no aliases)")
	}

	rows := make([][]string, 0, len(a.Aliases))
	for _, alias := range a.Aliases {
		rows = append(rows, []string{alias.Name, string(alias.ID), Sanitize(alias.Comment)})
	}
	return renderTable(s, []string{"ALIAS", "ID", "COMMENT"}, rows, func(_, col int) lipgloss.Style {
		switch col {
		case 0:
			return s.folder
		case 1:
			return s.id
		default:
			return s.header
		}
	})
}

func (r Recent) render(s styles) string {
	if len(r.Folders) == 0 {
		return s.empty.Render("(no recent folders)")
	}

	rows := make([][]string, 0, len(r.Folders))
	for i, folder := range r.Folders {
		rows = append(rows, []string{strconv.Itoa(i + 1), Sanitize(folder.Name) + "/", string(folder.ID), Sanitize(folder.ParentName)})
	}
	return renderTable(s, []string{"#", "FOLDER", "ID", "PARENT"}, rows, func(_, col int) lipgloss.Style {
		switch col {
		case 0:
			return s.index
		case 1:
			return s.folder
		case 2:
			return s.id
		default:
			return s.parent
		}
	})
}

func (m Message) render(_ styles) string {
	return m.Text
}

func renderTable(s styles, headers []string, rows [][]string, cell func(row, col int) lipgloss.Style) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		BorderHeader(true).
		BorderStyle(s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := s.header
			if row != table.HeaderRow {
				style = cell(row, col)
			}
			if col < len(headers)-1 {
				style = style.PaddingRight(2)
			}
			return style
		})

	return t.Render()
}

func displayName(item domain.Item) string {
	return Sanitize(item.Name) + item.Type.Suffix()
}

// Sanitize drops control characters so remote names cannot move the cursor
// or inject escape sequences.
func Sanitize(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	ferrors "github.com/matzehuels/fibernet/pkg/errors"
	"github.com/matzehuels/fibernet/pkg/pipeline"
	"github.com/matzehuels/fibernet/pkg/site"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// FaultyPickerModel - Interactive faulty probe selection
// =============================================================================

// FaultyPickerModel lets the user pick a site, then one of its probes.
// Selected is set once a probe is chosen; quitting leaves it nil.
type FaultyPickerModel struct {
	Sites    []*site.Site
	Results  []pipeline.Result
	Site     int // chosen site, -1 while picking one
	Cursor   int
	Offset   int
	Height   int
	Selected *ferrors.FaultySpec
}

// NewFaultyPickerModel creates a picker over the built sites.
func NewFaultyPickerModel(c *site.Collection, results []pipeline.Result) FaultyPickerModel {
	return FaultyPickerModel{
		Sites:   c.Sites(),
		Results: results,
		Site:    -1,
		Height:  15,
	}
}

func (m FaultyPickerModel) Init() tea.Cmd {
	return nil
}

func (m FaultyPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "backspace":
			if m.Site < 0 {
				return m, tea.Quit
			}
			m.Cursor, m.Offset = m.Site, 0
			m.Site = -1
			m.scroll()
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.scroll()
			}
		case "down", "j":
			if m.Cursor < m.count()-1 {
				m.Cursor++
				m.scroll()
			}
		case "enter":
			if m.count() == 0 {
				return m, nil
			}
			if m.Site < 0 {
				m.Site = m.Cursor
				m.Cursor, m.Offset = 0, 0
				return m, nil
			}
			m.Selected = &ferrors.FaultySpec{Site: m.Site + 1, Probe: m.Cursor + 1}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.scroll()
	}
	return m, nil
}

// count is the number of rows at the current stage.
func (m FaultyPickerModel) count() int {
	if m.Site < 0 {
		return len(m.Sites)
	}
	return m.Sites[m.Site].ProbeCount()
}

func (m *FaultyPickerModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m FaultyPickerModel) View() string {
	var b strings.Builder

	if m.Site < 0 {
		b.WriteString(StyleTitle.Render("Select Site"))
	} else {
		b.WriteString(StyleTitle.Render(fmt.Sprintf("Select Faulty Probe (site %d)", m.Site+1)))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  esc back  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.count())
	var headers []string
	var rows [][]string
	if m.Site < 0 {
		headers = []string{"", "Site", "Probes", "Cable"}
		for i := m.Offset; i < end; i++ {
			cable := "-"
			if i < len(m.Results) && m.Results[i].OK() {
				cable = strconv.Itoa(m.Results[i].Rounded)
			}
			rows = append(rows, []string{m.cursor(i), strconv.Itoa(i + 1), strconv.Itoa(m.Sites[i].ProbeCount()), cable})
		}
	} else {
		s := m.Sites[m.Site]
		headers = []string{"", "Probe", "Position", "Link"}
		for i := m.Offset; i < end; i++ {
			link := "root"
			if p := s.Parent(i); p != site.NoParent {
				link = fmt.Sprintf("%.0f to %d", s.DistanceFromTree(i), p+1)
			}
			rows = append(rows, []string{m.cursor(i), strconv.Itoa(i + 1), s.Probe(i).String(), link})
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 3 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.count())))

	return b.String()
}

func (m FaultyPickerModel) cursor(i int) string {
	if i == m.Cursor {
		return "▸"
	}
	return " "
}

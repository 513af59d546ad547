package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/corpeningc/compare-rows/internal/compare"
)

// ResultsViewerModel shows the result sets in a scrollable viewport.
type ResultsViewerModel struct {
	sections []section
	viewport viewport.Model
	ready    bool

	// Styles
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	rowStyle    lipgloss.Style
	emptyStyle  lipgloss.Style
	helpStyle   lipgloss.Style
}

func NewResultsViewerModel(res compare.Result, pathA, pathB string) ResultsViewerModel {
	return ResultsViewerModel{
		sections: resultSections(res, pathA, pathB),

		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),

		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),

		rowStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true),

		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}

func (m ResultsViewerModel) Init() tea.Cmd {
	return nil
}

func (m ResultsViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 4 // Title + help + borders
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-headerHeight)
			m.viewport.Style = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62"))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - headerHeight
		}
		m.viewport.SetContent(m.formatSections())

	case tea.KeyMsg:
		// Line and page scrolling come from the viewport key map.
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ResultsViewerModel) View() string {
	if !m.ready {
		return "Loading results..."
	}

	var sections []string

	// Title
	sections = append(sections, m.titleStyle.Render("Comparison results"))

	sections = append(sections, m.viewport.View())

	// Help
	help := m.helpStyle.Render("j/k: line by line | d/u: half page | f/b/space: full page | g/G: top/bottom | q: quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ResultsViewerModel) formatSections() string {
	var formatted []string

	for i, s := range m.sections {
		if i > 0 {
			formatted = append(formatted, "")
		}
		formatted = append(formatted, m.headerStyle.Render(s.title))
		if len(s.rows) == 0 {
			formatted = append(formatted, m.emptyStyle.Render("  (none)"))
			continue
		}
		for _, row := range s.rows {
			formatted = append(formatted, m.rowStyle.Render("  "+row))
		}
	}

	return strings.Join(formatted, "\n")
}

// Pager opens the results in a full-screen viewer.
type Pager struct{}

func (Pager) Show(res compare.Result, pathA, pathB string) error {
	m := NewResultsViewerModel(res, pathA, pathB)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

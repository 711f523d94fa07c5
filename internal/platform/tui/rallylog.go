package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tennis/internal/games/tennis"
	"github.com/vovakirdan/tui-tennis/internal/storage"
)

// Rally log layout constants
const (
	maxRallies     = 100 // Max rallies to load
	rallyLogChrome = 9   // Title, summary, borders and help around the table
)

// RallySource provides recorded rallies. Implemented by *storage.Store.
type RallySource interface {
	Rallies(limit int) ([]storage.RallyEntry, error)
	Summary() (*storage.Summary, error)
}

// RallyLog is the overlay listing the rallies of the current session.
// It is shown while the match is idle.
type RallyLog struct {
	table   table.Model
	help    help.Model
	keys    KeyMap
	entries []storage.RallyEntry
	summary *storage.Summary
	err     error
	width   int
	height  int
}

// NewRallyLog creates an empty rally log sized for the given terminal.
func NewRallyLog(keys KeyMap, width, height int) RallyLog {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := RallyLog{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates the table with fixed columns.
func (m *RallyLog) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Point", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Balls", Width: 6},
		{Title: "Hits", Width: 5},
		{Title: "Speed", Width: 6},
		{Title: "Time", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-rallyLogChrome, 3)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Load refreshes the rallies and the summary from src.
func (m *RallyLog) Load(src RallySource) {
	m.entries, m.summary, m.err = nil, nil, nil
	if src == nil {
		m.updateTableRows()
		return
	}

	entries, err := src.Rallies(maxRallies)
	if err != nil {
		m.err = err
		m.updateTableRows()
		return
	}
	summary, err := src.Summary()
	if err != nil {
		m.err = err
	}
	m.entries, m.summary = entries, summary
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rallies.
func (m *RallyLog) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = rallyRow(e)
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// rallyRow formats one rally.
func rallyRow(e storage.RallyEntry) table.Row {
	point := e.Scorer.Team()
	if e.Won {
		point += "*"
	}
	return table.Row{
		fmt.Sprintf("%d", e.Rally),
		point,
		fmt.Sprintf("%d-%d", e.LeftScore, e.RightScore),
		fmt.Sprintf("%d", e.Balls),
		fmt.Sprintf("%d", e.Hits),
		fmt.Sprintf("%.0f", e.Speed),
		fmt.Sprintf("%.1fs", e.Duration.Seconds()),
	}
}

// SetSize adapts the log to a new terminal size.
func (m *RallyLog) SetSize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.table = m.createTable()
	m.updateTableRows()
}

// Update scrolls the table.
func (m RallyLog) Update(msg tea.Msg) (RallyLog, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the rally log centered on the terminal.
func (m RallyLog) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("RALLY LOG"))
	b.WriteString("\n")
	b.WriteString(m.summaryLine())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// summaryLine renders the session totals.
func (m RallyLog) summaryLine() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if m.summary == nil {
		return dim.Render("No summary available")
	}
	s := m.summary
	return dim.Render(fmt.Sprintf(
		"%s %d  %s %d  matches %d-%d  longest %.1fs  top speed %.0f",
		tennis.SideLeft.Team(), s.LeftPoints,
		tennis.SideRight.Team(), s.RightPoints,
		s.LeftWins, s.RightWins,
		s.LongestRally.Seconds(),
		s.TopSpeed,
	))
}

// renderTableContent renders the table or empty message.
func (m RallyLog) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Rally log unavailable:\n" + m.err.Error())
	}
	if len(m.entries) == 0 {
		return emptyStyle.Render("No rallies played yet.\nPress space to serve!")
	}

	return m.table.View()
}

// Rows returns the rendered table rows, newest rally first.
func (m RallyLog) Rows() []table.Row {
	return m.table.Rows()
}

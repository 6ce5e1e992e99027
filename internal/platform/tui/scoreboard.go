package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridrun/lightcycles/internal/storage"
)

// maxHistoryRows caps how many finished matches the scoreboard loads.
const maxHistoryRows = 100

// ScoreboardKeyMap defines the key bindings for the match history screen.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the match history screen.
type ScoreboardModel struct {
	tallies  []storage.Tally
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel loads recent matches and per-mode tallies from the
// store and assembles the history table.
func NewScoreboardModel(store *storage.Store, width, height int) (ScoreboardModel, error) {
	matches, err := store.RecentMatches(maxHistoryRows)
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("load match history: %w", err)
	}
	tallies, err := store.AllTallies()
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("load tallies: %w", err)
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		tallies: tallies,
		help:    h,
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable(matches)
	return m, nil
}

// createTable builds the history table with one row per finished match.
func (m *ScoreboardModel) createTable(matches []storage.MatchRecord) table.Model {
	columns := []table.Column{
		{Title: "Mode", Width: 6},
		{Title: "Result", Width: 14},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 7},
		{Title: "Played", Width: 14},
	}

	rows := make([]table.Row, len(matches))
	for i, rec := range matches {
		result := "Draw"
		if !rec.Draw {
			result = fmt.Sprintf("Player %d wins", rec.Winner)
		}
		rows[i] = table.Row{
			rec.Mode,
			result,
			fmt.Sprintf("%d:%d", rec.Score1, rec.Score2),
			fmt.Sprintf("%d", rec.Ticks),
			rec.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	height := m.height - 8 - len(m.tallies)
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

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

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("MATCH HISTORY"))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	for _, tally := range m.tallies {
		line := fmt.Sprintf("%-6s %d matches  P1 %d / P2 %d / draws %d",
			tally.Mode, tally.Matches, tally.Wins1, tally.Wins2, tally.Draws)
		b.WriteString(dimStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No matches recorded yet.\nPlay a match to fill the board!"))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunScoreboard runs the interactive match history screen.
func RunScoreboard(store *storage.Store, width, height int) error {
	model, err := NewScoreboardModel(store, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

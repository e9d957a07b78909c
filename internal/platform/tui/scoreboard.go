package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bevel/internal/storage"
)

const (
	minWidthForStats = 84  // Below this the stats panel is hidden
	statsWidth       = 26  // Width of the per-difficulty stats panel
	maxScores        = 100 // Max scores to load per tab
)

// variantLabels are the short difficulty names used in tabs and the Mode column.
var variantLabels = map[string]string{
	"bevel_easy":  "Easy",
	"bevel":       "Normal",
	"bevel_hard":  "Hard",
	"bevel_fixed": "Fixed",
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next difficulty"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreTab is one difficulty, or every difficulty when id is empty.
type scoreTab struct {
	id    string
	label string
	best  int
	runs  int
}

// ScoreboardModel shows recorded runs, one tab per difficulty plus a
// combined tab, next to a per-difficulty summary.
type ScoreboardModel struct {
	tabs      []scoreTab
	tab       int
	store     *storage.Store
	scores    []storage.ScoreEntry
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	best      int // All-time best from the kv table
	quitting  bool
	goingBack bool
	embedded  bool // Back returns to the caller instead of quitting the program
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		tabs:   scoreTabs(store),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()

	if store != nil {
		if best, err := store.HistoryMaxScore(); err == nil {
			m.best = best
		}
	}

	m.loadScores()
	return m
}

// newEmbeddedScoreboard creates a scoreboard whose Back key hands control
// back to an enclosing model.
func newEmbeddedScoreboard(store *storage.Store, width, height int) ScoreboardModel {
	m := NewScoreboardModel(store, width, height)
	m.embedded = true
	return m
}

// scoreTabs lists the difficulties in menu order, then the combined tab.
func scoreTabs(store *storage.Store) []scoreTab {
	items := menuItems(store)
	tabs := make([]scoreTab, 0, len(items)+1)
	for _, it := range items {
		t := scoreTab{id: it.GameID, label: variantLabel(it.GameID, it.Title), best: it.Best}
		if store != nil {
			if n, err := store.RunCount(it.GameID); err == nil {
				t.runs = n
			}
		}
		tabs = append(tabs, t)
	}
	return append(tabs, scoreTab{label: "All"})
}

func variantLabel(id, title string) string {
	if l, ok := variantLabels[id]; ok {
		return l
	}
	return title
}

func (m *ScoreboardModel) createTable() table.Model {
	dateWidth := 12
	if m.width >= 100 {
		dateWidth = 18
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Mode", Width: 7},
		{Title: "Run", Width: 8},
		{Title: "Date", Width: dateWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, tabs, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#1a1a1a")).
		Background(lipgloss.Color("#fefe3c")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores fills the table for the current tab.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil && len(m.tabs) > 0 {
		var (
			scores []storage.ScoreEntry
			err    error
		)
		if id := m.tabs[m.tab].id; id == "" {
			scores, err = m.store.TopScoresAll(maxScores)
		} else {
			scores, err = m.store.TopScores(id, maxScores)
		}
		if err == nil {
			m.scores = scores
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			variantLabel(s.GameID, s.GameID),
			shortRunID(s.RunID),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
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
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(m.tabs) - 1) % len(m.tabs)
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadScores()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fefe3c"))
	b.WriteString(titleStyle.Render(centerText("◢◣  HIGH SCORES  ◢◣", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	body := box.Render(m.renderTableContent())
	if m.width >= minWidthForStats {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", box.Width(statsWidth).Render(m.renderStats()))
	} else if m.best > 0 {
		body += "\n" + fmt.Sprintf("All-time best: %d", m.best)
	}
	b.WriteString(body)

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs draws the difficulty tabs with the current one highlighted.
func (m ScoreboardModel) renderTabs() string {
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1a1a1a")).
		Background(lipgloss.Color("#a2d9e9")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tab {
			tabs[i] = active.Render(t.label)
		} else {
			tabs[i] = idle.Render(t.label)
		}
	}
	return strings.Join(tabs, " ")
}

// renderStats summarizes best score and run count per difficulty.
func (m ScoreboardModel) renderStats() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Difficulty  Best  Runs"))
	b.WriteString("\n")
	for _, t := range m.tabs {
		if t.id == "" {
			continue
		}
		fmt.Fprintf(&b, "%-10s %5d %5d\n", t.label, t.best, t.runs)
	}
	b.WriteString("\n")
	bestStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#f8bf2d"))
	b.WriteString(bestStyle.Render(fmt.Sprintf("All-time best: %d", m.best)))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs at this difficulty yet.\nClear a square to get on the board!")
	}

	return m.table.View()
}

// shortRunID trims a run UUID to its first block for display.
func shortRunID(id string) string {
	if id == "" {
		return "-"
	}
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

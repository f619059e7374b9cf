package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/registry"
	"github.com/vovakirdan/flapper/internal/storage"
)

const scoreboardLimit = 100

// difficultyFilters are cycled with D. The empty filter shows every run.
var difficultyFilters = []string{
	"",
	string(config.DifficultyEasy),
	string(config.DifficultyNormal),
	string(config.DifficultyHard),
	string(config.DifficultyFixed),
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Variant     key.Binding
	PrevVariant key.Binding
	Difficulty  key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.Difficulty, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Variant, k.PrevVariant, k.Difficulty},
		{k.Back, k.Quit},
	}
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
		Variant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
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

// ScoreboardModel shows saved runs of one variant at a time, optionally
// narrowed to one difficulty.
type ScoreboardModel struct {
	variants []registry.GameInfo
	variant  int
	filter   int // index into difficultyFilters
	store    *storage.Store

	runs  []storage.ScoreEntry // every loaded run of the variant
	shown []storage.ScoreEntry // runs passing the filter
	stats *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) newTable() table.Model {
	dateW := 14
	if m.width > 60 {
		dateW = min(m.width-40, 20)
	}
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Difficulty", Width: 10},
		{Title: "Date", Width: dateW},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)), // title, tabs, stats, borders, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads runs and stats of the selected variant. A store error leaves
// the board empty.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.variant].ID

		runs, err := m.store.TopScores(id, scoreboardLimit)
		if err != nil {
			log.Warn("cannot load scores", "game", id, "error", err)
		}
		m.runs = runs

		stats, err := m.store.GetGameStats(id)
		if err != nil {
			log.Warn("cannot load stats", "game", id, "error", err)
		}
		m.stats = stats
	}
	m.applyFilter()
}

// applyFilter refreshes the table rows. Ranks stay those of the whole
// variant so a filtered board still shows where each run placed.
func (m *ScoreboardModel) applyFilter() {
	want := difficultyFilters[m.filter]

	m.shown = nil
	rows := make([]table.Row, 0, len(m.runs))
	for i, run := range m.runs {
		if want != "" && run.Difficulty != want {
			continue
		}
		m.shown = append(m.shown, run)

		difficulty := run.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", run.Score),
			difficulty,
			run.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) selectVariant(delta int) {
	if len(m.variants) == 0 {
		return
	}
	m.variant = (m.variant + delta + len(m.variants)) % len(m.variants)
	m.load()
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
			return m, tea.Quit

		case key.Matches(msg, m.keys.Variant):
			m.selectVariant(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			m.selectVariant(-1)
			return m, nil

		case key.Matches(msg, m.keys.Difficulty):
			m.filter = (m.filter + 1) % len(difficultyFilters)
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.applyFilter()
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

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(max(m.width, 1), lipgloss.Center, boxStyle.Render(m.body())))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs lists the variants with the selected one highlighted. When they do
// not fit, only the selected one is shown between arrows.
func (m ScoreboardModel) tabs() string {
	if len(m.variants) == 0 {
		return ""
	}

	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Padding(0, 1)

	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.variant {
			parts[i] = active.Render(v.Title)
		} else {
			parts[i] = idle.Render(v.Title)
		}
	}

	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-2 {
		line = active.Render("< " + m.variants[m.variant].Title + " >")
	}
	return line
}

func (m ScoreboardModel) body() string {
	if len(m.shown) > 0 {
		return m.table.View()
	}

	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)
	if difficultyFilters[m.filter] != "" && len(m.runs) > 0 {
		return empty.Render(fmt.Sprintf("No %s runs yet.\nPress D to change the filter.", difficultyFilters[m.filter]))
	}
	return empty.Render("No scores recorded yet.\nFly a run to set a high score!")
}

// statsLine summarizes the selected variant and names the active filter.
func (m ScoreboardModel) statsLine() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	filter := difficultyFilters[m.filter]
	if filter == "" {
		filter = "all"
	}

	if m.stats == nil || m.stats.GamesCount == 0 {
		return style.Render("no runs yet  |  difficulty: " + filter)
	}
	return style.Render(fmt.Sprintf("runs %d  best %d  avg %.1f  last %s  |  difficulty: %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Format("Jan 02 15:04"), filter))
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
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

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

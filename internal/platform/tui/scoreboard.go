package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shadowFAQs/textagons/internal/storage"
)

const (
	tableMinWidth = 50  // Narrower terminals drop the word columns
	maxScores     = 100 // Games loaded into the table
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle      = mutedStyle.Italic(true).Padding(2, 4)
	frameStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Quit   key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Top, k.Bottom, k.Quit}}
}

func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "best")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "close")),
	}
}

// ScoreboardModel lists the best finished games with a summary line.
type ScoreboardModel struct {
	store    *storage.Store
	games    []storage.GameRecord
	stats    *storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel reads the store once; a nil store shows an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if store != nil {
		m.games, m.loadErr = store.TopGames(maxScores)
		stats, err := store.GetStats()
		if m.loadErr == nil {
			m.loadErr = err
		}
		m.stats = stats
	}
	m.layout()
	return m
}

func (m *ScoreboardModel) wide() bool {
	return m.width-4 >= tableMinWidth
}

func (m *ScoreboardModel) columns() []table.Column {
	cols := []table.Column{{Title: "Rank", Width: 5}, {Title: "Score", Width: 8}}
	if m.wide() {
		cols = append(cols,
			table.Column{Title: "Words", Width: 6},
			table.Column{Title: "Best word", Width: 16},
			table.Column{Title: "Longest", Width: 14},
		)
	}
	return append(cols, table.Column{Title: "Date", Width: 14})
}

func (m *ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.games))
	for i, g := range m.games {
		row := table.Row{fmt.Sprintf("#%d", i+1), strconv.Itoa(g.Score)}
		if m.wide() {
			best := g.BestWord
			if best != "" {
				best = fmt.Sprintf("%s (%d)", best, g.BestScore)
			}
			row = append(row, strconv.Itoa(g.Words), best, g.Longest)
		}
		rows = append(rows, append(row, g.CreatedAt.Format("Jan 02 15:04")))
	}
	return rows
}

// layout rebuilds the table for the current terminal size.
func (m *ScoreboardModel) layout() {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	cols := m.columns()
	width := 0
	for _, c := range cols {
		width += c.Width + 2 // Cell padding
	}

	m.table = table.New(
		table.WithColumns(cols),
		table.WithWidth(width),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)), // Title, stats, border and help
		table.WithStyles(styles),
	)
	m.help.Width = m.width
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{boardTitleStyle.Render(centerText("TEXTAGONS - HIGH SCORES", m.width)), ""}
	if m.stats != nil && m.stats.GamesCount > 0 {
		line := fmt.Sprintf("%d games  |  best %d  |  average %.0f  |  %d words",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalWords)
		parts = append(parts, mutedStyle.Render(centerText(line, m.width)), "")
	}

	var body string
	switch {
	case m.loadErr != nil:
		body = emptyStyle.Render(fmt.Sprintf("Could not read scores:\n%v", m.loadErr))
	case len(m.games) == 0:
		body = emptyStyle.Render("No games recorded yet.\nFinish a game to set a high score!")
	default:
		body = m.table.View()
	}
	parts = append(parts, frameStyle.Render(body), mutedStyle.Render(m.help.View(m.keys)))

	return strings.Join(parts, "\n")
}

// centerText left-pads text to centre it within width.
func centerText(text string, width int) string {
	if w := lipgloss.Width(text); w < width {
		return strings.Repeat(" ", (width-w)/2) + text
	}
	return text
}

// RunScoreboard shows the scoreboard until the player closes it.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}

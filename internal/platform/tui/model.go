package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/shadowFAQs/textagons/internal/core"
	"github.com/shadowFAQs/textagons/internal/game/session"
	"github.com/shadowFAQs/textagons/internal/storage"
)

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	usedKeys   bool // Show the keyboard cursor once the player uses it
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
	err        error
}

// NewModel creates a new Bubble Tea model for the given session.
// A nil store disables the scoreboard; a nil logger discards events.
func NewModel(sess *session.Session, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	w, h := BoardSize(sess)
	return Model{
		session:    sess,
		screen:     core.NewScreen(w, h),
		store:      store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  sess.GameState(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			m.inputFrame.Press(ev.At, ev.Button)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionSelect, core.ActionMark:
		m.usedKeys = true
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.session.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.logEvent(e)
	}

	if result.Err != nil {
		m.err = result.Err
		m.logger.Error("game cannot continue", "error", result.Err)
		m.quitting = true
		return m, tea.Quit
	}

	// Record each game over once
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveGame()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvent(e session.Event) {
	switch e.Kind {
	case session.EventWordAccepted:
		m.logger.Info("word accepted",
			"word", e.Word, "score", e.Score, "total", e.Total,
			"bonus", e.Bonus, "crystal", e.Crystal, "fire", e.Fire)
	case session.EventWordRejected:
		m.logger.Debug("word rejected", "word", e.Word)
	case session.EventBonusWord:
		m.logger.Info("new bonus word", "word", e.Word)
	case session.EventScrambled:
		m.logger.Debug("board scrambled", "fire", e.Fire)
	case session.EventGameOver:
		m.logger.Info("game over", "score", e.Total, "frame", e.Frame)
	case session.EventRestarted:
		m.logger.Info("game restarted", "previous_score", e.Total)
	}
}

func (m Model) saveGame() {
	if m.store == nil {
		return
	}
	sum := m.session.Summary()
	if sum.Score == 0 {
		return
	}
	_, err := m.store.SaveGame(storage.GameRecord{
		Score:     sum.Score,
		Words:     sum.Words,
		Longest:   sum.Longest,
		BestWord:  sum.BestWord,
		BestScore: sum.BestScore,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save game", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	Draw(m.screen, m.session, m.usedKeys)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".textagons", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("textagons_%s.txt", timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.session, m.usedKeys)

	return RenderScreen(m.screen) + "\n" + mutedStyle.Render(m.help.View(m.keys))
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays the session until the player quits.
func Run(sess *session.Session, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(sess, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fmt.Errorf("tui: %w", fm.Err())
	}
	return nil
}

// Package session runs a game of textagons: it routes input to the selection
// chain, panel buttons and menus, submits words, and drives the board each
// frame. It holds all game state; nothing here draws or reads the terminal.
package session

import (
	"fmt"
	"math/rand"

	"github.com/shadowFAQs/textagons/internal/config"
	"github.com/shadowFAQs/textagons/internal/core"
	"github.com/shadowFAQs/textagons/internal/game/board"
	"github.com/shadowFAQs/textagons/internal/game/selection"
	"github.com/shadowFAQs/textagons/internal/game/tile"
	"github.com/shadowFAQs/textagons/internal/game/words"
)

// State is the session's interaction mode.
type State int

const (
	StatePlaying State = iota
	StateHistory
	StateConfirmRestart
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateHistory:
		return "history"
	case StateConfirmRestart:
		return "confirm-restart"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Step.
type StepResult struct {
	core.StepResult
	Events []Event
	Err    error // Fatal; the game cannot continue
}

// Summary describes a finished game.
type Summary struct {
	Score     int
	Words     int
	Longest   string
	BestWord  string
	BestScore int
}

// Session owns one board and everything that happens on it.
type Session struct {
	cfg    config.Config
	dict   words.Dictionary
	rng    *rand.Rand
	board  *board.Board
	chain  selection.Chain
	engine *words.Engine

	history words.History
	score   int
	state   State
	frame   uint64

	panel *panel
	menu  *Menu

	cursorColumn int
	cursorRow    int

	events []Event
	err    error
}

// New creates a session and starts the first game.
func New(cfg config.Config, dict words.Dictionary, rt core.RuntimeConfig) (*Session, error) {
	s := &Session{cfg: cfg, dict: dict}
	if err := s.Reset(rt); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts a fresh game with a new board seeded from rt.
func (s *Session) Reset(rt core.RuntimeConfig) error {
	s.rng = rand.New(rand.NewSource(rt.Seed))
	s.board = board.New(s.cfg, s.rng)

	engine, err := words.NewEngine(s.dict, s.cfg.Words, s.rng)
	if err != nil {
		return err
	}
	s.engine = engine

	s.panel = newPanel(s.board.Width(), uiTiming{
		flashFrames: s.cfg.UI.FlashFrames,
		flashToggle: s.cfg.UI.FlashToggle,
	}, s.cfg.UI.CurrentWordWidth)

	s.chain.Clear()
	s.history.Reset()
	s.score = 0
	s.state = StatePlaying
	s.menu = nil
	s.frame = 0
	s.err = nil
	s.events = nil
	s.cursorColumn = s.board.Columns() / 2
	s.cursorRow = s.cfg.Board.Rows / 2

	return s.nextBonusWord()
}

// Step advances the game by one frame.
func (s *Session) Step(in core.InputFrame) StepResult {
	s.events = nil
	if s.err != nil {
		return s.result()
	}

	s.handleActions(in)
	for _, p := range in.Pointers {
		s.handlePointer(p)
	}

	if s.state != StateGameOver && s.err == nil {
		if s.board.Update() {
			s.state = StateGameOver
			s.chain.Clear()
			s.menu = newGameOverMenu(s.board.Width())
			s.emit(Event{Kind: EventGameOver, Total: s.score})
		}
	}

	for _, f := range s.panel.fields {
		f.Animate()
	}
	s.frame++
	return s.result()
}

func (s *Session) result() StepResult {
	return StepResult{
		StepResult: core.StepResult{State: s.GameState()},
		Events:     s.events,
		Err:        s.err,
	}
}

func (s *Session) emit(e Event) {
	e.Frame = s.frame
	s.events = append(s.events, e)
}

// handleActions maps keyboard actions onto the same paths as pointer clicks.
func (s *Session) handleActions(in core.InputFrame) {
	if s.menu != nil {
		first := s.menu.Buttons[0]
		last := s.menu.Buttons[len(s.menu.Buttons)-1]
		switch {
		case in.Has(core.ActionConfirm), in.Has(core.ActionSelect):
			s.pressButton(first)
		case in.Has(core.ActionBack) && s.menu.Kind != MenuGameOver:
			s.pressButton(last)
		case in.Has(core.ActionHistory) && s.menu.Kind == MenuHistory:
			s.pressButton(first)
		case in.Has(core.ActionRestart) && s.menu.Kind == MenuGameOver:
			s.pressButton(first)
		}
		return
	}

	if in.Has(core.ActionUp) {
		s.moveCursor(0, -1)
	}
	if in.Has(core.ActionDown) {
		s.moveCursor(0, 1)
	}
	if in.Has(core.ActionLeft) {
		s.moveCursor(-1, 0)
	}
	if in.Has(core.ActionRight) {
		s.moveCursor(1, 0)
	}
	if in.Has(core.ActionSelect) {
		if t := s.Cursor(); t != nil {
			s.clickTile(t)
		}
	}
	if in.Has(core.ActionMark) {
		if t := s.Cursor(); t != nil {
			s.markTile(t)
		}
	}

	for _, b := range s.panel.buttons {
		if in.Has(buttonAction(b.Kind)) {
			s.pressButton(b)
		}
	}
}

func buttonAction(k ButtonKind) core.Action {
	switch k {
	case ButtonHistory:
		return core.ActionHistory
	case ButtonUnmark:
		return core.ActionUnmark
	case ButtonScramble:
		return core.ActionScramble
	case ButtonRestart:
		return core.ActionRestart
	default:
		return core.ActionNone
	}
}

// Resolve returns what lies under p. Open menus shadow everything else.
func (s *Session) Resolve(p core.Point) Target {
	if s.menu != nil {
		if b := s.menu.Button(p); b != nil {
			return Target{Kind: TargetButton, Button: b}
		}
		return Target{Kind: TargetNone}
	}
	for _, b := range s.panel.buttons {
		if b.HitTest(p) {
			return Target{Kind: TargetButton, Button: b}
		}
	}
	for _, f := range s.panel.fields {
		if f.HitTest(p) {
			return Target{Kind: TargetField, Field: f}
		}
	}
	if t := s.board.TileAt(p); t != nil {
		return Target{Kind: TargetTile, Tile: t}
	}
	return Target{Kind: TargetNone}
}

func (s *Session) handlePointer(p core.PointerEvent) {
	target := s.Resolve(p.At)
	switch target.Kind {
	case TargetButton:
		if p.Button == core.ButtonPrimary {
			s.pressButton(target.Button)
		}
	case TargetTile:
		s.focus(target.Tile)
		if p.Button == core.ButtonSecondary {
			s.markTile(target.Tile)
		} else {
			s.clickTile(target.Tile)
		}
	}
}

// tilesReady reports whether tile input is accepted this frame.
func (s *Session) tilesReady() bool {
	return s.state == StatePlaying && s.board.Settled()
}

func (s *Session) markTile(t *tile.Tile) {
	if s.tilesReady() {
		t.ToggleMark()
	}
}

func (s *Session) clickTile(t *tile.Tile) {
	if !s.tilesReady() {
		return
	}
	s.panel.current.KillFlash()
	if s.chain.Click(t, s.board) == selection.Submit {
		s.submit()
	}
	s.panel.current.SetText(s.chain.Word())
}

// submit validates the chain's word and resolves it on the board.
func (s *Session) submit() {
	word := s.chain.Word()
	tiles := s.chain.Tiles()

	if !s.engine.Validate(word) {
		s.chain.Clear()
		s.panel.current.FlashAndClear(core.ColorRed)
		s.emit(Event{Kind: EventWordRejected, Word: word})
		return
	}

	isBonus := s.engine.IsBonus(word)
	delta := words.Score(tiles, s.engine.Multiplier(word))
	s.score += delta
	s.history.Add(word, delta, words.Snapshot(tiles, isBonus))

	s.panel.score.SetText(fmt.Sprint(s.score))
	s.panel.delta.KillFlash()
	s.panel.delta.SetText(fmt.Sprintf("+%d", delta))
	s.panel.delta.FlashAndClear(core.ColorGreen)

	if isBonus {
		if err := s.nextBonusWord(); err != nil {
			return
		}
	}

	res := s.board.ResolveSubmission(tiles, len(word), isBonus)
	s.chain.Clear()

	s.emit(Event{
		Kind:    EventWordAccepted,
		Word:    word,
		Score:   delta,
		Total:   s.score,
		Bonus:   isBonus,
		Crystal: res.CrystalIndex != board.NoTile,
		Fire:    res.FireIndex != board.NoTile,
	})
}

// nextBonusWord advances the bonus ratchet. A failure is fatal for the session.
func (s *Session) nextBonusWord() error {
	word, err := s.engine.ChooseNewBonusWord()
	if err != nil {
		s.err = err
		return err
	}
	s.panel.bonus.SetText(word)
	s.panel.bonus.Flash(core.ColorYellow)
	s.emit(Event{Kind: EventBonusWord, Word: word})
	return nil
}

func (s *Session) pressButton(b *Button) {
	switch b.Kind {
	case ButtonHistory:
		if s.state == StatePlaying {
			s.state = StateHistory
			s.menu = newHistoryMenu(s.board.Width())
		}
	case ButtonUnmark:
		if s.state == StatePlaying {
			s.board.Unmark()
		}
	case ButtonScramble:
		if s.tilesReady() {
			s.scramble()
		}
	case ButtonRestart:
		if s.state == StatePlaying {
			s.state = StateConfirmRestart
			s.menu = newRestartMenu(s.board.Width())
		}
	case ButtonClose, ButtonNo:
		s.state = StatePlaying
		s.menu = nil
	case ButtonYes, ButtonNewGame:
		s.restart()
	}
}

func (s *Session) scramble() {
	s.chain.Clear()
	s.panel.current.KillFlash()
	s.panel.current.SetText("")
	fire := s.board.ScrambleAll()
	s.emit(Event{Kind: EventScrambled, Fire: fire != nil})
}

// restart begins a new game on the same board: score, history and the bonus
// ratchet reset and every tile is refreshed.
func (s *Session) restart() {
	final := s.Summary()

	s.chain.Clear()
	s.score = 0
	s.history.Reset()
	s.engine.ResetBonus()
	s.board.Reset()
	s.menu = nil
	s.state = StatePlaying

	for _, f := range s.panel.fields {
		f.KillFlash()
	}
	s.panel.score.SetText("0")
	s.panel.delta.SetText("")
	s.panel.current.SetText("")

	s.emit(Event{Kind: EventRestarted, Total: final.Score})
	//nolint:errcheck // Stored in s.err and reported by Step
	s.nextBonusWord()
}

// moveCursor shifts the keyboard cursor, clamped to the board.
func (s *Session) moveCursor(dc, dr int) {
	s.cursorColumn = core.Clamp(s.cursorColumn+dc, 0, s.board.Columns()-1)
	s.cursorRow = core.Clamp(s.cursorRow+dr, 0, s.cfg.Board.Rows-1)
}

// focus moves the keyboard cursor onto t.
func (s *Session) focus(t *tile.Tile) {
	for row, c := range s.board.ColumnTiles(t.Column) {
		if c == t {
			s.cursorColumn = t.Column
			s.cursorRow = row
			return
		}
	}
}

// Cursor returns the tile under the keyboard cursor.
func (s *Session) Cursor() *tile.Tile {
	column := s.board.ColumnTiles(s.cursorColumn)
	if s.cursorRow < 0 || s.cursorRow >= len(column) {
		return nil
	}
	return column[s.cursorRow]
}

// GameState reports score and status for the platform.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.state == StateGameOver,
		Paused:   s.menu != nil && s.state != StateGameOver,
	}
}

// Summary returns the numbers worth keeping from the current game.
func (s *Session) Summary() Summary {
	return Summary{
		Score:     s.score,
		Words:     s.history.Words,
		Longest:   s.history.Longest.Word,
		BestWord:  s.history.Best.Word,
		BestScore: s.history.Best.Score,
	}
}

// Board returns the board.
func (s *Session) Board() *board.Board { return s.board }

// Chain returns the current selection.
func (s *Session) Chain() []*tile.Tile { return s.chain.Tiles() }

// State returns the interaction mode.
func (s *Session) State() State { return s.state }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Bonus returns the current bonus word.
func (s *Session) Bonus() string { return s.engine.Bonus() }

// History returns the word history.
func (s *Session) History() words.History { return s.history }

// Fields returns the panel text fields.
func (s *Session) Fields() []*Textfield { return s.panel.fields }

// Field returns the panel text field with the given label, or nil.
func (s *Session) Field(label string) *Textfield {
	for _, f := range s.panel.fields {
		if f.Label == label {
			return f
		}
	}
	return nil
}

// Buttons returns the panel buttons.
func (s *Session) Buttons() []*Button { return s.panel.buttons }

// Menu returns the open menu, or nil.
func (s *Session) Menu() *Menu { return s.menu }

// Frame returns the number of steps taken since the last Reset.
func (s *Session) Frame() uint64 { return s.frame }

// Err returns the fatal error that stopped the session, if any.
func (s *Session) Err() error { return s.err }

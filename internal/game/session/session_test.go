package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/shadowFAQs/textagons/internal/config"
	"github.com/shadowFAQs/textagons/internal/core"
	"github.com/shadowFAQs/textagons/internal/dictionary"
	"github.com/shadowFAQs/textagons/internal/game/tile"
	"github.com/shadowFAQs/textagons/internal/game/words"
)

func newTestSession(t *testing.T, seed int64, mutate func(*config.Config)) *Session {
	t.Helper()
	cfg := config.Default()
	// Keep turns deterministic: no random fire.
	cfg.Specials.Fire.Targets = nil
	cfg.Specials.ScrambleFireChance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	dict, err := dictionary.Default()
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(cfg, dict, core.RuntimeConfig{Seed: seed})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func click(s *Session, p core.Point, button core.PointerButton) StepResult {
	in := core.NewInputFrame()
	in.Press(p, button)
	return s.Step(in)
}

func clickTile(s *Session, t *tile.Tile) StepResult {
	return click(s, t.Center(), core.ButtonPrimary)
}

func clickButton(s *Session, b *Button) StepResult {
	return click(s, core.Point{X: b.Box.X + 1, Y: b.Box.Y + 1}, core.ButtonPrimary)
}

func panelButton(t *testing.T, s *Session, kind ButtonKind) *Button {
	t.Helper()
	for _, b := range s.Buttons() {
		if b.Kind == kind {
			return b
		}
	}
	t.Fatalf("no %v button", kind)
	return nil
}

func act(s *Session, actions ...core.Action) StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return s.Step(in)
}

func settle(t *testing.T, s *Session) {
	t.Helper()
	for rep := 0; rep < 2000; rep++ {
		if s.Board().Settled() {
			return
		}
		if res := s.Step(core.NewInputFrame()); res.State.GameOver {
			t.Fatal("unexpected game over while settling")
		}
	}
	t.Fatal("board did not settle")
}

// spell writes a word down column 2 from the top and returns its tiles.
func spell(s *Session, word string) []*tile.Tile {
	var out []*tile.Tile
	for i, l := range tile.SplitWord(word) {
		t := s.Board().Slot(2, i)
		t.SetLetter(l)
		out = append(out, t)
	}
	return out
}

func hasEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func TestNewSessionChoosesBonusWord(t *testing.T) {
	s := newTestSession(t, 1, nil)
	if len(s.Bonus()) != 3 {
		t.Errorf("first bonus word %q should have 3 letters", s.Bonus())
	}
	if s.Field(FieldBonusWord).Text() != s.Bonus() {
		t.Error("bonus field should show the bonus word")
	}
	if s.State() != StatePlaying || s.Score() != 0 {
		t.Error("new session should be playing with no score")
	}
}

func TestSubmitWordEndToEnd(t *testing.T) {
	s := newTestSession(t, 2, nil)

	word := "CAT"
	if s.Bonus() == word {
		word = "DOG"
	}
	tiles := spell(s, word)
	want := words.Score(tiles, 1)

	var events []Event
	for _, tl := range tiles {
		events = append(events, clickTile(s, tl).Events...)
	}
	if got := s.Field(FieldCurrentWord).Text(); got != word {
		t.Errorf("current word = %q, expected %q", got, word)
	}
	if len(s.Chain()) != 3 {
		t.Fatalf("chain has %d tiles, expected 3", len(s.Chain()))
	}

	res := clickTile(s, tiles[2])
	events = append(events, res.Events...)

	e, ok := hasEvent(events, EventWordAccepted)
	if !ok {
		t.Fatal("expected a word-accepted event")
	}
	if e.Word != word || e.Score != want || e.Bonus {
		t.Errorf("event = %+v, expected %s for %d points", e, word, want)
	}
	if s.Score() != want || res.State.Score != want {
		t.Errorf("score = %d, expected %d", s.Score(), want)
	}
	if len(s.Chain()) != 0 {
		t.Error("chain should be empty after a submission")
	}
	if s.Field(FieldCurrentWord).Text() != "" {
		t.Error("current word should be cleared")
	}
	if s.Field(FieldScoreDelta).Text() == "" || !s.Field(FieldScoreDelta).Flashing() {
		t.Error("score delta should flash")
	}
	if s.Board().Settled() {
		t.Error("board should be unsettled right after a submission")
	}
	for _, tl := range tiles {
		if tl.Selected {
			t.Error("submitted tiles should be deselected")
		}
	}

	settle(t, s)
	if s.History().Words != 1 || s.History().Best.Word != word {
		t.Errorf("history = %+v", s.History())
	}
}

func TestClicksIgnoredWhileFalling(t *testing.T) {
	s := newTestSession(t, 3, nil)
	word := "SUN"
	if s.Bonus() == word {
		word = "CAT"
	}
	tiles := spell(s, word)
	for _, tl := range tiles {
		clickTile(s, tl)
	}
	clickTile(s, tiles[2])

	if s.Board().Settled() {
		t.Fatal("expected falling tiles")
	}
	clickTile(s, s.Board().Slot(5, 5))
	if len(s.Chain()) != 0 {
		t.Error("tile clicks must be ignored while tiles fall")
	}
	click(s, s.Board().Slot(5, 5).Center(), core.ButtonSecondary)
	if s.Board().Slot(5, 5).Marked {
		t.Error("marks must be ignored while tiles fall")
	}
}

func TestRejectedWord(t *testing.T) {
	s := newTestSession(t, 4, nil)
	tiles := spell(s, "XZX")

	for _, tl := range tiles {
		clickTile(s, tl)
	}
	res := clickTile(s, tiles[2])

	if _, ok := hasEvent(res.Events, EventWordRejected); !ok {
		t.Fatal("expected a word-rejected event")
	}
	if s.Score() != 0 {
		t.Error("rejected word must not score")
	}
	if len(s.Chain()) != 0 || len(s.Board().Selected()) != 0 {
		t.Error("rejected word should clear the selection")
	}
	if !s.Board().Settled() {
		t.Error("rejected word must not touch the board")
	}

	current := s.Field(FieldCurrentWord)
	if current.Text() != "XZX" || !current.Flashing() {
		t.Error("rejected word should stay visible while flashing")
	}
	for rep := 0; rep < 120; rep++ {
		s.Step(core.NewInputFrame())
	}
	if current.Text() != "" || current.Flashing() {
		t.Errorf("current word after flash = %q, expected cleared", current.Text())
	}
}

func TestBonusWordSubmission(t *testing.T) {
	s := newTestSession(t, 5, nil)
	bonus := s.Bonus()
	tiles := spell(s, bonus)
	want := words.Score(tiles, 3)

	var events []Event
	for _, tl := range tiles {
		events = append(events, clickTile(s, tl).Events...)
	}
	events = append(events, clickTile(s, tiles[len(tiles)-1]).Events...)

	e, ok := hasEvent(events, EventWordAccepted)
	if !ok {
		t.Fatalf("bonus word %q was not accepted", bonus)
	}
	if !e.Bonus || e.Score != want {
		t.Errorf("event = %+v, expected bonus for %d", e, want)
	}
	if _, ok := hasEvent(events, EventBonusWord); !ok {
		t.Error("a new bonus word should be announced")
	}
	if len(s.Bonus()) != 4 {
		t.Errorf("next bonus word %q should have 4 letters", s.Bonus())
	}
	for _, l := range s.History().Best.Letters {
		if l.Color != core.ColorYellow {
			t.Errorf("bonus letters should be recorded yellow, got %v", l.Color)
		}
	}
}

func TestBonusRatchetExhaustedIsFatal(t *testing.T) {
	cfg := config.Default()
	cfg.Specials.Fire.Targets = nil
	cfg.Words.RarityThresholds = []float64{0, 0, 0, 0.16}
	dict, err := dictionary.Load(strings.NewReader("cat,0.19\n"))
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(cfg, dict, core.RuntimeConfig{Seed: 6})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Bonus() != "CAT" {
		t.Fatalf("bonus = %q, expected CAT", s.Bonus())
	}

	tiles := spell(s, "CAT")
	for _, tl := range tiles {
		clickTile(s, tl)
	}
	res := clickTile(s, tiles[2])
	if !errors.Is(res.Err, words.ErrNoBonusWord) {
		t.Fatalf("Err = %v, expected ErrNoBonusWord", res.Err)
	}
	if !errors.Is(s.Step(core.NewInputFrame()).Err, words.ErrNoBonusWord) {
		t.Error("error should persist on later steps")
	}
}

func TestMarkAndUnmark(t *testing.T) {
	s := newTestSession(t, 7, nil)
	target := s.Board().Slot(4, 4)

	click(s, target.Center(), core.ButtonSecondary)
	if !target.Marked {
		t.Fatal("secondary click should mark the tile")
	}
	if len(s.Chain()) != 0 {
		t.Error("marking must not select")
	}

	clickButton(s, panelButton(t, s, ButtonUnmark))
	if target.Marked {
		t.Error("UNMARK should clear marks")
	}
}

func TestScrambleButton(t *testing.T) {
	s := newTestSession(t, 8, nil)
	clickTile(s, s.Board().Slot(1, 1))

	res := clickButton(s, panelButton(t, s, ButtonScramble))
	if _, ok := hasEvent(res.Events, EventScrambled); !ok {
		t.Fatal("expected a scrambled event")
	}
	if len(s.Chain()) != 0 {
		t.Error("scramble should clear the selection")
	}
	if s.Board().Settled() {
		t.Error("scramble should bump the board")
	}

	res = clickButton(s, panelButton(t, s, ButtonScramble))
	if _, ok := hasEvent(res.Events, EventScrambled); ok {
		t.Error("scramble must wait for the board to settle")
	}
	settle(t, s)
}

func TestRestartConfirmation(t *testing.T) {
	s := newTestSession(t, 9, nil)
	word := "CAT"
	if s.Bonus() == word {
		word = "DOG"
	}
	tiles := spell(s, word)
	for _, tl := range tiles {
		clickTile(s, tl)
	}
	clickTile(s, tiles[2])
	settle(t, s)
	if s.Score() == 0 {
		t.Fatal("setup word did not score")
	}

	res := clickButton(s, panelButton(t, s, ButtonRestart))
	if s.State() != StateConfirmRestart || s.Menu() == nil || !res.State.Paused {
		t.Fatal("RESTART should open the confirmation menu")
	}

	clickTile(s, s.Board().Slot(3, 3))
	if len(s.Chain()) != 0 {
		t.Error("tiles must not be clickable behind a menu")
	}

	act(s, core.ActionBack)
	if s.State() != StatePlaying || s.Menu() != nil {
		t.Fatal("NO should close the menu")
	}

	clickButton(s, panelButton(t, s, ButtonRestart))
	var yes *Button
	for _, b := range s.Menu().Buttons {
		if b.Kind == ButtonYes {
			yes = b
		}
	}
	res = clickButton(s, yes)

	e, ok := hasEvent(res.Events, EventRestarted)
	if !ok {
		t.Fatal("expected a restarted event")
	}
	if e.Total == 0 {
		t.Error("restarted event should carry the final score")
	}
	if s.Score() != 0 || s.History().Words != 0 || s.State() != StatePlaying {
		t.Error("restart should reset score, history and state")
	}
	if len(s.Bonus()) != 3 {
		t.Errorf("bonus ratchet should restart at 3 letters, got %q", s.Bonus())
	}
	if s.Field(FieldScore).Text() != "0" {
		t.Errorf("score field = %q, expected 0", s.Field(FieldScore).Text())
	}
}

func TestHistoryMenu(t *testing.T) {
	s := newTestSession(t, 10, nil)

	act(s, core.ActionHistory)
	if s.State() != StateHistory || s.Menu() == nil || s.Menu().Kind != MenuHistory {
		t.Fatal("history action should open the history menu")
	}
	if !s.GameState().Paused {
		t.Error("open menu should report paused")
	}

	clickButton(s, s.Menu().Buttons[0])
	if s.State() != StatePlaying || s.Menu() != nil {
		t.Error("CLOSE should return to play")
	}
}

func TestGameOver(t *testing.T) {
	s := newTestSession(t, 11, nil)
	fire := s.Board().Slot(3, 6)
	fire.SetType(tile.Fire)
	fire.BurnReady = true

	res := s.Step(core.NewInputFrame())
	if !res.State.GameOver || s.State() != StateGameOver {
		t.Fatal("armed fire on the floor should end the game")
	}
	if _, ok := hasEvent(res.Events, EventGameOver); !ok {
		t.Error("expected a game-over event")
	}
	if s.Menu() == nil || s.Menu().Kind != MenuGameOver {
		t.Fatal("game over should open its menu")
	}

	act(s, core.ActionBack)
	if s.State() != StateGameOver {
		t.Error("back must not dismiss the game over menu")
	}

	res = clickButton(s, s.Menu().Buttons[0])
	if _, ok := hasEvent(res.Events, EventRestarted); !ok {
		t.Error("game over RESTART should start a new game")
	}
	if s.State() != StatePlaying || res.State.GameOver {
		t.Error("new game should be playing")
	}
	if fire.Type != tile.Normal {
		t.Error("restart should clear fire tiles")
	}
}

func TestKeyboardCursor(t *testing.T) {
	s := newTestSession(t, 12, nil)

	for rep := 0; rep < 10; rep++ {
		act(s, core.ActionUp, core.ActionLeft)
	}
	if s.Cursor() != s.Board().Slot(0, 0) {
		t.Fatal("cursor should clamp to the top-left tile")
	}

	act(s, core.ActionSelect)
	act(s, core.ActionDown)
	act(s, core.ActionSelect)
	chain := s.Chain()
	if len(chain) != 2 || chain[0] != s.Board().Slot(0, 0) || chain[1] != s.Board().Slot(0, 1) {
		t.Errorf("keyboard selection built %d tiles", len(chain))
	}

	act(s, core.ActionRight, core.ActionMark)
	if !s.Board().Slot(1, 1).Marked {
		t.Error("mark action should mark the cursor tile")
	}

	clickTile(s, s.Board().Slot(5, 2))
	if s.Cursor() != s.Board().Slot(5, 2) {
		t.Error("clicking a tile should move the cursor to it")
	}
}

func TestResolveTargets(t *testing.T) {
	s := newTestSession(t, 13, nil)

	tl := s.Board().Slot(2, 2)
	if got := s.Resolve(tl.Center()); got.Kind != TargetTile || got.Tile != tl {
		t.Errorf("Resolve(tile) = %+v", got)
	}
	b := panelButton(t, s, ButtonHistory)
	if got := s.Resolve(core.Point{X: b.Box.X + 5, Y: b.Box.Y + 5}); got.Kind != TargetButton || got.Button != b {
		t.Errorf("Resolve(button) = %+v", got)
	}
	f := s.Field(FieldScore)
	if got := s.Resolve(core.Point{X: f.Box.X + 1, Y: f.Box.Y + 1}); got.Kind != TargetField || got.Field != f {
		t.Errorf("Resolve(field) = %+v", got)
	}
	if got := s.Resolve(core.Point{X: 2000, Y: 2000}); got.Kind != TargetNone {
		t.Errorf("Resolve(nowhere) = %+v", got)
	}
}

func TestTextfieldFlash(t *testing.T) {
	f := newTextfield("test", "HELLO", core.Box{W: 10, H: 10}, core.ColorLightGray, uiTiming{flashFrames: 120, flashToggle: 5})

	f.Flash(core.ColorYellow)
	colors := make(map[core.Color]bool)
	for rep := 0; rep < 119; rep++ {
		f.Animate()
		colors[f.Color()] = true
	}
	if !colors[core.ColorYellow] || !colors[core.ColorLightGray] {
		t.Error("flash should alternate colors")
	}
	f.Animate()
	if f.Flashing() || f.Color() != core.ColorLightGray || f.Text() != "HELLO" {
		t.Error("plain flash should end on the default color and keep its text")
	}

	f.FlashAndClear(core.ColorRed)
	f.SetText("WORLD")
	if f.Text() != "HELLO" {
		t.Error("text set during flash-and-clear should wait for the flash")
	}
	for rep := 0; rep < 120; rep++ {
		f.Animate()
	}
	if f.Text() != "WORLD" {
		t.Errorf("text after flash = %q, expected WORLD", f.Text())
	}

	f.FlashAndClear(core.ColorRed)
	f.KillFlash()
	f.SetText("NEXT")
	if f.Text() != "NEXT" || f.Flashing() {
		t.Error("KillFlash should drop the pending clear")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		text string
		max  int
		want string
	}{
		{"CRYSTAL", 8, "CRYSTAL"},
		{"ABCDEFGH", 8, "ABCDEFGH"},
		{"ABCDEFGHI", 8, "ABC...GHI"},
		{"ANYTHING", 0, "ANYTHING"},
	}
	for _, tc := range tests {
		if got := Truncate(tc.text, tc.max); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, expected %q", tc.text, tc.max, got, tc.want)
		}
	}
}

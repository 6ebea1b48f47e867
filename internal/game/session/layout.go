package session

import "github.com/shadowFAQs/textagons/internal/core"

// Panel geometry in board units. One panel row is as tall as a text line.
const (
	panelGap    = 10
	panelWidth  = 140
	rowHeight   = 28
	buttonWidth = 100
)

// Field labels.
const (
	FieldScoreLabel   = "score_label"
	FieldScore        = "score"
	FieldScoreDelta   = "score_delta"
	FieldBonusLabel   = "bonus_label"
	FieldBonusWord    = "bonus_word"
	FieldCurrentLabel = "current_label"
	FieldCurrentWord  = "current_word"
)

// panel holds the side panel to the right of the board.
type panel struct {
	fields  []*Textfield
	buttons []*Button

	score   *Textfield
	delta   *Textfield
	bonus   *Textfield
	current *Textfield
}

func panelRow(x float64, row int, width float64) core.Box {
	return core.Box{X: x, Y: float64(row * rowHeight), W: width, H: rowHeight}
}

func newPanel(boardWidth float64, ui uiTiming, currentWidth int) *panel {
	x := boardWidth + panelGap
	p := &panel{}

	add := func(label, text string, row int, dx, width float64, color core.Color) *Textfield {
		f := newTextfield(label, text, panelRow(x+dx, row, width), color, ui)
		p.fields = append(p.fields, f)
		return f
	}

	add(FieldScoreLabel, "SCORE", 0, 0, panelWidth, core.ColorGray)
	p.score = add(FieldScore, "0", 1, 0, 60, core.ColorLightGray)
	p.delta = add(FieldScoreDelta, "", 1, 68, 72, core.ColorGreen)
	add(FieldBonusLabel, "BONUS WORD", 2, 0, panelWidth, core.ColorGray)
	p.bonus = add(FieldBonusWord, "", 3, 0, panelWidth, core.ColorLightGray)
	add(FieldCurrentLabel, "CURRENT WORD", 4, 0, panelWidth, core.ColorGray)
	p.current = add(FieldCurrentWord, "", 5, 0, panelWidth, core.ColorLightGray)
	p.current.maxLen = currentWidth

	buttons := []struct {
		kind  ButtonKind
		text  string
		row   int
		color core.Color
	}{
		{ButtonHistory, "HISTORY", 8, core.ColorLightGray},
		{ButtonUnmark, "UNMARK", 10, core.ColorLightGray},
		{ButtonScramble, "SCRAMBLE", 12, core.ColorLightGray},
		{ButtonRestart, "RESTART", 14, core.ColorRed},
	}
	for _, b := range buttons {
		p.buttons = append(p.buttons, &Button{
			Kind:  b.kind,
			Text:  b.text,
			Box:   panelRow(x, b.row, buttonWidth),
			Color: b.color,
		})
	}
	return p
}

// Menu boxes are centred horizontally over the board.
func menuBox(boardWidth, width, y, height float64) core.Box {
	return core.Box{X: (boardWidth - width) / 2, Y: y, W: width, H: height}
}

func menuButton(menu core.Box, kind ButtonKind, text string, dx, width float64, color core.Color) *Button {
	return &Button{
		Kind:  kind,
		Text:  text,
		Box:   core.Box{X: menu.X + dx, Y: menu.Y + menu.H - 2*rowHeight, W: width, H: rowHeight},
		Color: color,
	}
}

func newHistoryMenu(boardWidth float64) *Menu {
	box := menuBox(boardWidth, 300, 84, 9*rowHeight)
	return &Menu{
		Kind:    MenuHistory,
		Title:   "Word history",
		Box:     box,
		Buttons: []*Button{menuButton(box, ButtonClose, "CLOSE", box.W-90, 70, core.ColorLightGray)},
	}
}

func newRestartMenu(boardWidth float64) *Menu {
	box := menuBox(boardWidth, 260, 140, 5*rowHeight)
	return &Menu{
		Kind:  MenuConfirmRestart,
		Title: "Restart game?",
		Box:   box,
		Buttons: []*Button{
			menuButton(box, ButtonYes, "YES", 60, 50, core.ColorRed),
			menuButton(box, ButtonNo, "NO", 150, 50, core.ColorLightGray),
		},
	}
}

func newGameOverMenu(boardWidth float64) *Menu {
	box := menuBox(boardWidth, 260, 140, 5*rowHeight)
	return &Menu{
		Kind:    MenuGameOver,
		Title:   "Game over",
		Box:     box,
		Buttons: []*Button{menuButton(box, ButtonNewGame, "RESTART", 85, 90, core.ColorLightGray)},
	}
}

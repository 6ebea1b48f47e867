package session

import (
	"github.com/shadowFAQs/textagons/internal/core"
	"github.com/shadowFAQs/textagons/internal/game/tile"
)

// Element is anything on screen that can be clicked.
type Element interface {
	HitTest(p core.Point) bool
}

var (
	_ Element = (*tile.Tile)(nil)
	_ Element = (*Textfield)(nil)
	_ Element = (*Button)(nil)
	_ Element = (*Menu)(nil)
)

// Textfield is a line of panel text that can flash between its own color
// and a highlight color.
type Textfield struct {
	Label string
	Box   core.Box

	text         string
	buffer       *string // Replaces text when the current flash ends
	defaultColor core.Color
	color        core.Color
	flashColor   core.Color
	timer        int
	flashFrames  int
	flashToggle  int
	maxLen       int // 0 disables truncation
}

func newTextfield(label, text string, box core.Box, color core.Color, ui uiTiming) *Textfield {
	return &Textfield{
		Label:        label,
		Box:          box,
		text:         text,
		defaultColor: color,
		color:        color,
		flashFrames:  ui.flashFrames,
		flashToggle:  ui.flashToggle,
	}
}

// uiTiming carries the flash settings shared by every text field.
type uiTiming struct {
	flashFrames int
	flashToggle int
}

// HitTest reports whether p is on the field.
func (f *Textfield) HitTest(p core.Point) bool {
	return f.Box.Contains(p)
}

// Text returns the displayed text.
func (f *Textfield) Text() string {
	return f.text
}

// Color returns the current text color, which alternates while flashing.
func (f *Textfield) Color() core.Color {
	return f.color
}

// Flashing reports whether a flash is running.
func (f *Textfield) Flashing() bool {
	return f.timer > 0
}

// SetText shows new text. While a flash-and-clear is running the text is
// held back until the flash ends.
func (f *Textfield) SetText(text string) {
	text = Truncate(text, f.maxLen)
	if f.buffer != nil {
		f.buffer = &text
		return
	}
	f.text = text
}

// Flash starts alternating the text color with c.
func (f *Textfield) Flash(c core.Color) {
	f.timer = f.flashFrames
	f.flashColor = c
}

// FlashAndClear flashes the current text, then blanks it.
func (f *Textfield) FlashAndClear(c core.Color) {
	f.Flash(c)
	empty := ""
	f.buffer = &empty
}

// KillFlash stops any flash and drops pending text.
func (f *Textfield) KillFlash() {
	f.timer = 0
	f.buffer = nil
	f.color = f.defaultColor
}

// Animate advances the flash by one frame.
func (f *Textfield) Animate() {
	if f.timer == 0 {
		f.color = f.defaultColor
		return
	}
	f.timer--
	if f.timer%f.flashToggle == 0 {
		if f.color == f.defaultColor {
			f.color = f.flashColor
		} else {
			f.color = f.defaultColor
		}
	}
	if f.timer == 0 {
		if f.buffer != nil {
			f.text = *f.buffer
			f.buffer = nil
		}
		f.color = f.defaultColor
	}
}

// Truncate shortens text longer than maxLen to "ABC...XYZ".
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 || len(text) <= maxLen {
		return text
	}
	return text[:3] + "..." + text[len(text)-3:]
}

// ButtonKind identifies what a button does.
type ButtonKind int

const (
	ButtonHistory ButtonKind = iota
	ButtonUnmark
	ButtonScramble
	ButtonRestart
	ButtonClose   // History menu
	ButtonYes     // Restart confirmation
	ButtonNo      // Restart confirmation
	ButtonNewGame // Game over menu
)

func (k ButtonKind) String() string {
	switch k {
	case ButtonHistory:
		return "history"
	case ButtonUnmark:
		return "unmark"
	case ButtonScramble:
		return "scramble"
	case ButtonRestart:
		return "restart"
	case ButtonClose:
		return "close"
	case ButtonYes:
		return "yes"
	case ButtonNo:
		return "no"
	case ButtonNewGame:
		return "new-game"
	default:
		return "unknown"
	}
}

// Button is a clickable label with a border.
type Button struct {
	Kind  ButtonKind
	Text  string
	Box   core.Box
	Color core.Color
}

// HitTest reports whether p is on the button.
func (b *Button) HitTest(p core.Point) bool {
	return b.Box.Contains(p)
}

// MenuKind identifies a modal menu.
type MenuKind int

const (
	MenuHistory MenuKind = iota
	MenuConfirmRestart
	MenuGameOver
)

// Menu is a modal box with a title and buttons. While a menu is open, only
// its buttons receive clicks.
type Menu struct {
	Kind    MenuKind
	Title   string
	Box     core.Box
	Buttons []*Button
}

// HitTest reports whether p is inside the menu box.
func (m *Menu) HitTest(p core.Point) bool {
	return m.Box.Contains(p)
}

// Button returns the menu's button under p, or nil.
func (m *Menu) Button(p core.Point) *Button {
	for _, b := range m.Buttons {
		if b.HitTest(p) {
			return b
		}
	}
	return nil
}

// TargetKind tags what a click landed on.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetTile
	TargetButton
	TargetField
)

// Target is the resolved destination of a click.
type Target struct {
	Kind   TargetKind
	Tile   *tile.Tile
	Button *Button
	Field  *Textfield
}

package tui

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shadowFAQs/textagons/internal/core"
	"github.com/shadowFAQs/textagons/internal/game/session"
	"github.com/shadowFAQs/textagons/internal/game/tile"
	"github.com/shadowFAQs/textagons/internal/game/words"
)

// Board units per terminal cell. A column stride of 51 units is six cells
// and a row stride of 56 units is two lines, so hexes interlock on screen.
const (
	unitsPerCell = 8.5
	unitsPerLine = 28.0
	boardTop     = 1 // Screen row of board y = 0; row 0 holds the top edges
	hexWidth     = 7
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorLightGray: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorTeal:      lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// CellAt returns the screen cell holding board point p.
func CellAt(p core.Point) (x, y int) {
	return int(math.Floor(p.X / unitsPerCell)), int(math.Round(p.Y/unitsPerLine)) + boardTop
}

// PointAt returns the board point a click on screen cell (x, y) stands for.
// The vertical offset puts both lines of a hex glyph inside its hit area.
func PointAt(x, y int) core.Point {
	return core.Point{
		X: (float64(x) + 0.5) * unitsPerCell,
		Y: float64(y-boardTop)*unitsPerLine + 18,
	}
}

// boxRect returns the cells fully inside a box, so that PointAt of any of
// them lands back in the box.
func boxRect(b core.Box) core.Rect {
	x0 := int(math.Ceil(b.X / unitsPerCell))
	x1 := int(math.Floor((b.X + b.W) / unitsPerCell))
	_, y := CellAt(core.Point{X: b.X, Y: b.Y})
	h := max(1, int(math.Round(b.H/unitsPerLine)))
	return core.NewRect(x0, y, x1-x0, h)
}

// Draw renders the whole game into s.
func Draw(s *core.Screen, sess *session.Session, showCursor bool) {
	s.Clear()

	tiles := slices.Clone(sess.Board().Tiles())
	// Highlighted borders are drawn last so they win shared edges.
	slices.SortStableFunc(tiles, func(a, b *tile.Tile) int {
		return highlight(a) - highlight(b)
	})
	for _, t := range tiles {
		drawTile(s, t)
	}

	if showCursor && sess.State() == session.StatePlaying {
		if t := sess.Cursor(); t != nil {
			drawCursor(s, t)
		}
	}

	for _, f := range sess.Fields() {
		r := boxRect(f.Box)
		s.DrawTextColored(r.X, r.Y, f.Text(), f.Color())
	}
	for _, b := range sess.Buttons() {
		drawButton(s, b)
	}

	if m := sess.Menu(); m != nil {
		drawMenu(s, sess, m)
	}
}

func highlight(t *tile.Tile) int {
	switch {
	case t.Selected:
		return 2
	case t.Marked:
		return 1
	default:
		return 0
	}
}

// drawTile draws a flat-top hexagon:
//
//	 _____
//	/  A  \
//	\_____/
//
// Lines above the board are clipped so recycled tiles appear to fall in.
func drawTile(s *core.Screen, t *tile.Tile) {
	x, y := CellAt(core.Point{X: t.X, Y: t.Y})
	border := t.BorderColor()

	if y-1 >= 0 && y >= boardTop {
		for i := 1; i < hexWidth-1; i++ {
			s.SetColored(x+i, y-1, '_', border)
		}
	}
	if y >= boardTop {
		s.SetColored(x, y, '/', border)
		s.DrawTextColored(x+1, y, centre(t.Display(), hexWidth-2), t.TextColor())
		s.SetColored(x+hexWidth-1, y, '\\', border)
	}
	if y+1 >= boardTop {
		s.SetColored(x, y+1, '\\', border)
		for i := 1; i < hexWidth-1; i++ {
			s.SetColored(x+i, y+1, '_', border)
		}
		s.SetColored(x+hexWidth-1, y+1, '/', border)
	}
}

func drawCursor(s *core.Screen, t *tile.Tile) {
	x, y := CellAt(core.Point{X: t.X, Y: t.Y})
	if y < boardTop {
		return
	}
	s.SetColored(x+1, y, '>', core.ColorWhite)
	s.SetColored(x+hexWidth-2, y, '<', core.ColorWhite)
}

func drawButton(s *core.Screen, b *session.Button) {
	r := boxRect(b.Box)
	s.DrawTextColored(r.X, r.Y, "["+b.Text+"]", b.Color)
}

func drawMenu(s *core.Screen, sess *session.Session, m *session.Menu) {
	r := boxRect(m.Box)
	s.ClearRect(r)
	s.DrawBox(r, core.ColorLightGray)

	title := m.Title
	if m.Kind == session.MenuGameOver {
		title = fmt.Sprintf("%s  Score: %d", m.Title, sess.Score())
	}
	s.DrawTextColored(r.X+(r.W-len(title))/2, r.Y+1, title, core.ColorWhite)

	if m.Kind == session.MenuHistory {
		h := sess.History()
		drawRecord(s, r.X+2, r.Y+3, "Longest", h.Longest)
		drawRecord(s, r.X+2, r.Y+5, "Best   ", h.Best)
	}

	for _, b := range m.Buttons {
		drawButton(s, b)
	}
}

// drawRecord prints a frozen word with each letter in its recorded color.
func drawRecord(s *core.Screen, x, y int, label string, rec words.Record) {
	s.DrawTextColored(x, y, label+": ", core.ColorGray)
	x += len(label) + 2
	if rec.Empty() {
		s.DrawTextColored(x, y, "-", core.ColorGray)
		return
	}
	for _, l := range rec.Letters {
		s.DrawTextColored(x, y, l.Text, l.Color)
		x += len(l.Text)
	}
	s.DrawTextColored(x+1, y, fmt.Sprintf("(%d)", rec.Score), core.ColorLightGray)
}

// centre pads text to width, left-biased.
func centre(text string, width int) string {
	pad := width - len(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	if pad%2 == 1 {
		left++
	}
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}

// BoardSize returns the screen cells needed to draw a session.
func BoardSize(sess *session.Session) (width, height int) {
	var right core.Point
	grow := func(b core.Box) {
		right.X = max(right.X, b.X+b.W)
		right.Y = max(right.Y, b.Y+b.H)
	}
	for _, f := range sess.Fields() {
		grow(f.Box)
	}
	for _, b := range sess.Buttons() {
		grow(b.Box)
	}
	right.Y = max(right.Y, sess.Board().Height())
	x, y := CellAt(right)
	return x + 1, y + 1
}

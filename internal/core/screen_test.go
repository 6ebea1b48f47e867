package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(" ", 12) {
			t.Errorf("row %d = %q, expected blanks", y, s.Row(y))
		}
	}
}

func TestSetColoredAndGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'A', ColorTeal)
	if got := s.GetCell(5, 5); got != (Cell{Rune: 'A', Color: ColorTeal}) {
		t.Errorf("GetCell(5, 5) = %+v", got)
	}
	if s.Get(5, 5) != 'A' {
		t.Errorf("Get(5, 5) = %q, expected 'A'", s.Get(5, 5))
	}

	// Off-screen writes are dropped, reads are blank
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if got := s.GetCell(p[0], p[1]); got != (Cell{Rune: ' '}) {
			t.Errorf("GetCell%v = %+v, expected blank", p, got)
		}
	}
}

func TestClearRect(t *testing.T) {
	s := NewScreen(6, 3)
	for y := 0; y < 3; y++ {
		s.DrawTextColored(0, y, "XXXXXX", ColorRed)
	}

	s.ClearRect(NewRect(1, 1, 3, 5)) // Runs off the bottom

	want := []string{"XXXXXX", "X   XX", "X   XX"}
	for y, w := range want {
		if s.Row(y) != w {
			t.Errorf("row %d = %q, expected %q", y, s.Row(y), w)
		}
	}
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("cleared cells should lose their color")
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("Clear left %q", s.String())
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(8, 2)

	s.DrawTextColored(5, 0, "Qu\u00e9bec", ColorYellow) // Clipped after three runes
	if s.Row(0) != "     Qu\u00e9" {
		t.Errorf("row 0 = %q", s.Row(0))
	}
	if s.GetCell(7, 0).Color != ColorYellow {
		t.Error("text should carry its color")
	}

	s.DrawTextColored(-2, 1, "ABCD", ColorDefault)
	if s.Row(1) != "CD      " {
		t.Errorf("row 1 = %q, expected left clipping", s.Row(1))
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorLightGray)

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, w := range want {
		if s.Row(y) != w {
			t.Errorf("row %d = %q, expected %q", y, s.Row(y), w)
		}
	}
	if s.GetCell(0, 0).Color != ColorLightGray {
		t.Error("box should carry its color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "/A\\", ColorDefault)
	s.DrawTextColored(0, 1, "\\_/", ColorDefault)

	if got := s.String(); got != "/A\\\n\\_/" {
		t.Errorf("String() = %q", got)
	}
	if s.Row(5) != "   " {
		t.Errorf("Row off screen = %q, expected blanks", s.Row(5))
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, expected 12x4", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '▲', ColorBrightRed)
	got := s.GetCell(3, 4)
	if got.Rune != '▲' || got.Color != ColorBrightRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red spike", got)
	}

	// Plain Set resets the color
	s.Set(3, 4, 'x')
	if got := s.GetCell(3, 4); got.Color != ColorDefault {
		t.Errorf("Set should use the default color, got %v", got.Color)
	}

	// Out of bounds writes are ignored, reads return blank
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.GetCell(-1, 0) != blank || s.Get(100, 0) != ' ' {
		t.Error("out of bounds access should read as blank")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRectColored(NewRect(0, 0, 4, 4), '#', ColorCyan)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s.GetCell(x, y) != blank {
				t.Fatalf("cell (%d, %d) not cleared", x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Score", ColorYellow)

	for i, ch := range "Score" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("cell %d = %+v, expected %q yellow", i, c, ch)
		}
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "●x")

	if s.Get(0, 0) != '●' || s.Get(1, 0) != 'x' {
		t.Errorf("multibyte runes should occupy one cell each, row = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, '═', ColorCyan)
	s.DrawVLine(8, 1, 3, '|', ColorGray)

	for x := 2; x < 7; x++ {
		if c := s.GetCell(x, 2); c.Rune != '═' || c.Color != ColorCyan {
			t.Errorf("hline cell %d = %+v", x, c)
		}
	}
	for y := 1; y < 4; y++ {
		if s.Get(8, y) != '|' {
			t.Errorf("vline cell %d missing", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawTextColored(0, 1, "def", ColorRed)

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Dash", ColorMagenta)

	s.Resize(6, 3)
	if !strings.HasPrefix(s.Row(0), "Dash") {
		t.Errorf("row 0 after shrink = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorMagenta {
		t.Error("color should survive resize")
	}

	s.Resize(20, 8)
	if !strings.HasPrefix(s.Row(0), "Dash") {
		t.Errorf("row 0 after grow = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 20) {
		t.Error("out of bounds row should be spaces")
	}
}

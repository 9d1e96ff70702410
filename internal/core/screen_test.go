package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default color")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColor(0, 0, "abcd", ColorBlue)
	s.Clear()

	for y := range 2 {
		for x := range 4 {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); got != "  Hello   " {
		t.Errorf("Row(1) = %q, expected %q", got, "  Hello   ")
	}

	// Clipped at right edge
	s.DrawText(8, 2, "World")
	if got := s.Row(2); got != "        Wo" {
		t.Errorf("Row(2) = %q, expected clipped text", got)
	}

	// Multi-byte runes advance one column each
	s.DrawText(0, 0, "·⚑·")
	if s.Get(1, 0) != '⚑' || s.Get(2, 0) != '·' {
		t.Errorf("Row(0) = %q, expected runes in consecutive columns", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3))

	want := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, strings.Join(want, "\n"))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'X')
	s.Resize(20, 8)

	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("after Resize got %dx%d, expected 20x8", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear content")
	}

	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative Resize got %dx%d, expected 0x0", s.Width(), s.Height())
	}
}

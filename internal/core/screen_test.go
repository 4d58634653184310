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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5) = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}
	if s.GetCell(5, 5).Color != ColorDefault {
		t.Errorf("Set should leave the cell uncolored, got %v", s.GetCell(5, 5).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' || s.GetCell(0, 100).Rune != ' ' {
		t.Error("GetCell out of bounds should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '@', ColorPink)

	want := Cell{Rune: '@', Color: ColorPink}
	if got := s.GetCell(1, 1); got != want {
		t.Errorf("GetCell(1, 1) = %+v, expected %+v", got, want)
	}

	s.Clear()
	if got := s.GetCell(1, 1); got != blank {
		t.Errorf("after Clear: %+v", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "héllo")

	if got := s.Row(1); got != "  héllo   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawTextColored(8, 0, "abc", ColorGray)
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(8, 0).Color != ColorGray {
		t.Errorf("color = %v, expected gray", s.GetCell(8, 0).Color)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorWhite)
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(NewRect(1, 1, 3, 2), '#')

	expected := []string{
		"     ",
		" ### ",
		" ### ",
		"     ",
		"     ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorBrightBlue)

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(0, 0).Color != ColorBrightBlue {
		t.Error("box should be colored")
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 4), ColorWhite)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("1-wide box should not draw")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.SetColored(2, 1, 'b', ColorRed)

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'X', ColorOrange)
	s.Set(3, 3, 'Y')

	s.Resize(2, 6)
	if s.Width() != 2 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 2x6", s.Width(), s.Height())
	}
	if got := s.GetCell(1, 1); got != (Cell{Rune: 'X', Color: ColorOrange}) {
		t.Errorf("content not preserved: %+v", got)
	}
	if s.GetCell(1, 5).Rune != ' ' {
		t.Error("new rows should be blank")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q", got)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(7, 3)
	if got := s.Bounds(); got != NewRect(0, 0, 7, 3) {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestScreenBoundsFollowResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(3, 2)

	s.Set(5, 1, 'X')
	s.Set(2, 2, 'X')
	s.Set(2, 1, 'Y')
	if got := s.String(); got != "   \n  Y" {
		t.Errorf("String() = %q, expected only the in-bounds write", got)
	}
}

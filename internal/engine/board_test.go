package engine

import (
	"errors"
	"testing"
)

func TestBoardPlace(t *testing.T) {
	b := NewBoard(6, 7)

	if !b.place(2, 3, Red) {
		t.Fatal("place on empty cell should succeed")
	}
	if b.At(2, 3) != Red {
		t.Errorf("At(2, 3) = %q, expected red", b.At(2, 3))
	}
	if b.place(2, 3, Yellow) {
		t.Error("place on occupied cell should fail")
	}
	if b.At(2, 3) != Red {
		t.Error("occupied cell must keep its color")
	}
	if b.place(-1, 0, Red) || b.place(0, 7, Red) || b.place(6, 0, Red) {
		t.Error("place out of bounds should fail")
	}
	if b.place(0, 0, NoColor) {
		t.Error("placing NoColor should fail")
	}
	if b.Filled() != 1 {
		t.Errorf("Filled() = %d, expected 1", b.Filled())
	}
}

func TestBoardRunLength(t *testing.T) {
	b := NewBoard(6, 7)
	for c := 1; c <= 4; c++ {
		b.place(3, c, Blue)
	}
	b.place(2, 2, Blue)
	b.place(4, 4, Blue)

	tests := []struct {
		name     string
		row, col int
		axis     Axis
		expected int
	}{
		{"horizontal from left end", 3, 1, Axes[0], 4},
		{"horizontal from middle", 3, 3, Axes[0], 4},
		{"vertical single", 3, 1, Axes[1], 1},
		{"diagonal down through middle", 3, 3, Axes[2], 3},
		{"empty cell", 0, 0, Axes[0], 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.RunLength(tc.row, tc.col, tc.axis)
			if got != tc.expected {
				t.Errorf("RunLength(%d, %d, %v) = %d, expected %d", tc.row, tc.col, tc.axis, got, tc.expected)
			}
		})
	}
}

func TestBoardWinsAt(t *testing.T) {
	b := NewBoard(6, 7)
	b.place(0, 6, Green)
	b.place(1, 5, Green)
	b.place(2, 4, Green)

	if b.WinsAt(2, 4, 4) {
		t.Error("three in a row should not win with length 4")
	}
	if !b.WinsAt(2, 4, 3) {
		t.Error("three in a row should win with length 3")
	}

	b.place(3, 3, Green)
	for _, cell := range [][2]int{{0, 6}, {1, 5}, {2, 4}, {3, 3}} {
		if !b.WinsAt(cell[0], cell[1], 4) {
			t.Errorf("WinsAt(%d, %d) should detect the anti-diagonal run", cell[0], cell[1])
		}
	}
}

func TestBoardFull(t *testing.T) {
	b := NewBoard(2, 2)
	colors := []Color{Red, Yellow, Yellow, Red}
	for i, c := range colors {
		if b.Full() {
			t.Fatalf("board reported full after %d moves", i)
		}
		b.place(i/2, i%2, c)
	}
	if !b.Full() {
		t.Error("board should be full")
	}
}

func TestBoardCloneAndGrid(t *testing.T) {
	b := NewBoard(2, 3)
	b.place(1, 2, Purple)

	clone := b.Clone()
	clone.place(0, 0, Red)
	if b.At(0, 0) != NoColor {
		t.Error("mutating a clone must not touch the original")
	}

	grid := b.Grid()
	grid[1][2] = Red
	if b.At(1, 2) != Purple {
		t.Error("mutating Grid() output must not touch the board")
	}

	if got := clone.String(); got != "R..\n..P" {
		t.Errorf("String() = %q", got)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		valid  bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"zero rows", func(s *Settings) { s.Rows = 0 }, false},
		{"win length too long", func(s *Settings) { s.WinLength = 8 }, false},
		{"win length one", func(s *Settings) { s.WinLength = 1 }, false},
		{"no time", func(s *Settings) { s.RoundSeconds = 0 }, false},
		{"no levels", func(s *Settings) { s.MaxLevel = 0 }, false},
		{"one color", func(s *Settings) { s.Palette = []Color{Red} }, false},
		{"duplicate color", func(s *Settings) { s.Palette = []Color{Red, Red} }, false},
		{"empty color", func(s *Settings) { s.Palette = []Color{Red, NoColor} }, false},
		{"negative delay", func(s *Settings) { s.DrawDelay = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.modify(&s)
			err := s.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() = %v, expected ErrInvalidSettings", err)
			}
		})
	}
}

func TestSettingsRosterSize(t *testing.T) {
	s := DefaultSettings()
	expected := []int{2, 3, 4, 5, 5, 5, 5, 5, 5, 5}
	for i, want := range expected {
		if got := s.RosterSize(i + 1); got != want {
			t.Errorf("RosterSize(%d) = %d, expected %d", i+1, got, want)
		}
	}
}

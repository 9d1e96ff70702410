package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/board"
)

func TestPrintBoard(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	b, err := board.New(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.PlaceMines(0, []int{5}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printBoard(&buf, b, false)
	if got, want := buf.String(), ". 1 1\n. 1 *\n"; got != want {
		t.Errorf("full board:\n%q\nwant\n%q", got, want)
	}

	if _, err := b.Uncover(0); err != nil {
		t.Fatal(err)
	}
	if _, err := b.FloodReveal(0); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	printBoard(&buf, b, true)
	if got, want := buf.String(), ". 1 #\n. 1 #\n"; got != want {
		t.Errorf("opened board:\n%q\nwant\n%q", got, want)
	}
}

func TestGameID(t *testing.T) {
	tests := map[string]string{
		"expert":       "mines_expert",
		"Expert":       "mines_expert",
		"mines_expert": "mines_expert",
	}
	for in, want := range tests {
		if got := gameID(in); got != want {
			t.Errorf("gameID(%q) = %q, want %q", in, got, want)
		}
	}
}

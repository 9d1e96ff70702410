package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-mines/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "12", core.ColorBrightBlue)
	s.DrawTextColor(2, 0, "F", core.ColorBrightYellow)
	s.DrawText(0, 1, "[.]")

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "12F   " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "[.]   " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for _, c := range append(core.Colors(), core.ColorDefault) {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{30, time.Second / 30},
		{60, time.Second / 60},
		{0, time.Second / defaultTickRate},
		{-5, time.Second / defaultTickRate},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.want {
			t.Errorf("frameInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

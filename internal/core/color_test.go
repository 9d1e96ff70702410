package core

import "testing"

func TestColorsPalette(t *testing.T) {
	colors := Colors()
	if len(colors) != int(numColors)-1 {
		t.Fatalf("Colors() returned %d colors, want %d", len(colors), numColors-1)
	}

	seen := map[uint8]Color{}
	for _, c := range colors {
		code, ok := c.ANSI256()
		if !ok {
			t.Errorf("color %d has no palette index", c)
			continue
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("colors %d and %d share index %d", prev, c, code)
		}
		seen[code] = c
	}

	if _, ok := ColorDefault.ANSI256(); ok {
		t.Error("default color reported a palette index")
	}
	if _, ok := numColors.ANSI256(); ok {
		t.Error("out-of-range color reported a palette index")
	}
	if code, _ := ColorTeal.ANSI256(); code != 30 {
		t.Errorf("teal = %d, want 30", code)
	}
}

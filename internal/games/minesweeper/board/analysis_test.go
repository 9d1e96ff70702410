package board

import "testing"

func TestOpeningsAndBBBV(t *testing.T) {
	tests := []struct {
		name     string
		h, w     int
		safe     int
		mines    []int
		openings int
		bbbv     int
	}{
		{"centre mine", 3, 3, 0, []int{4}, 0, 8},
		{"corner mine", 3, 3, 8, []int{0}, 1, 1},
		{"single row", 1, 5, 4, []int{0}, 1, 1},
		{"two openings", 1, 7, 0, []int{3}, 2, 2},
		{"no mines", 2, 2, 0, nil, 1, 1},
		{"isolated numbers", 1, 3, 0, []int{1}, 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustNew(t, tc.h, tc.w)
			if err := b.PlaceMines(tc.safe, tc.mines); err != nil {
				t.Fatal(err)
			}
			if got := Openings(b); got != tc.openings {
				t.Errorf("Openings() = %d, want %d", got, tc.openings)
			}
			if got := BBBV(b); got != tc.bbbv {
				t.Errorf("BBBV() = %d, want %d", got, tc.bbbv)
			}
		})
	}
}

func TestAnalysisIgnoresCoverState(t *testing.T) {
	b := mustNew(t, 16, 30, seeded(7))
	if err := b.Initialize(0, 99); err != nil {
		t.Fatal(err)
	}
	before := BBBV(b)

	b.Uncover(0)
	b.FloodReveal(0)

	if after := BBBV(b); after != before {
		t.Errorf("BBBV changed after reveal: %d -> %d", before, after)
	}
}

func TestAnalysisUninitialized(t *testing.T) {
	b := mustNew(t, 3, 3)
	if Openings(b) != 0 {
		t.Error("uninitialized board should report no openings")
	}
}

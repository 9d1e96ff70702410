package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/storage"
)

func openScoresStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestShowResult(t *testing.T) {
	store := openScoresStore(t)
	id, err := store.SaveResult(storage.Result{GameID: "mines_beginner", Won: true, Score: 420, Duration: 75, Revealed: 71})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := showResult(&buf, store, id); err != nil {
		t.Fatalf("showResult() error = %v", err)
	}
	for _, want := range []string{"Outcome:   won", "Time:      1:15", "Score:     420", "Revealed:  71"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}

	if err := showResult(&buf, store, id+100); err == nil {
		t.Error("showResult() on a missing ID should fail")
	}
}

func TestClearResults(t *testing.T) {
	store := openScoresStore(t)
	for _, r := range []storage.Result{
		{GameID: "mines_beginner", Won: true, Duration: 30},
		{GameID: "mines_beginner", Won: true, Duration: 40},
		{GameID: "mines_expert", Won: true, Duration: 300},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := clearResults(&buf, store, "mines_beginner"); err != nil {
		t.Fatalf("clearResults() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Cleared results for ") {
		t.Errorf("output = %q", buf.String())
	}

	if got, err := store.BestTimes("mines_beginner", 10); err != nil || len(got) != 0 {
		t.Errorf("beginner after clear = %v, %v; want none", got, err)
	}
	if got, err := store.BestTimes("mines_expert", 10); err != nil || len(got) != 1 {
		t.Errorf("expert after clear = %v, %v; want 1 result", got, err)
	}
}

package registry

import (
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("Exists() = false for registered game")
	}
	if Exists("zz_missing") {
		t.Error("Exists() = true for unknown game")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	if Title("zz_stub_a") != "Stub zz_stub_a" {
		t.Errorf("Title() = %q", Title("zz_stub_a"))
	}
	if Title("zz_missing") != "zz_missing" {
		t.Errorf("Title() of unknown game = %q", Title("zz_missing"))
	}

	// Registration order, not ID order.
	var order []string
	for _, info := range List() {
		if info.ID == "zz_stub_a" || info.ID == "zz_stub_b" {
			order = append(order, info.ID)
		}
	}
	if len(order) != 2 || order[0] != "zz_stub_b" {
		t.Errorf("List() order = %v, want [zz_stub_b zz_stub_a]", order)
	}
}

type describedGame struct{ stubGame }

func (describedGame) Description() string { return "3x3, 1 mine" }

func TestLookupDescription(t *testing.T) {
	Register("zz_described", func() Game { return describedGame{stubGame{id: "zz_described"}} })

	info, ok := Lookup("zz_described")
	if !ok {
		t.Fatal("Lookup() = false for registered game")
	}
	if info.Description != "3x3, 1 mine" {
		t.Errorf("Description = %q", info.Description)
	}

	info, _ = Lookup("zz_stub_a")
	if info.Description != "" {
		t.Errorf("stub Description = %q, want empty", info.Description)
	}
	if _, ok := Lookup("zz_missing"); ok {
		t.Error("Lookup() = true for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}

package registry

import (
	"testing"

	"github.com/vovakirdan/tui-arena/internal/core"
)

type stubGame struct{ id, title string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_test_b", func() Game { return &stubGame{"zz_test_b", "B"} })
	Register("zz_test_a", func() Game { return &stubGame{"zz_test_a", "A"} })

	if !Exists("zz_test_a") {
		t.Fatal("Exists(zz_test_a) = false")
	}
	g, err := Create("zz_test_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "B" {
		t.Errorf("Title = %q, want B", g.Title())
	}

	list := List()
	ia, ib := -1, -1
	for i, m := range list {
		switch m.ID {
		case "zz_test_a":
			ia = i
		case "zz_test_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List order wrong: %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_mode"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if Exists("no_such_mode") {
		t.Error("Exists reported an unknown mode")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_test_dup", func() Game { return &stubGame{"zz_test_dup", "D"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_test_dup", func() Game { return &stubGame{"zz_test_dup", "D"} })
}

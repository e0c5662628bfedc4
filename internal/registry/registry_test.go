package registry

import (
	"testing"

	"github.com/vovakirdan/periodic2048/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Resize(int, int)                      {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }
func (g stubGame) Controls() string                     { return "" }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("missing") {
		t.Fatalf("Exists reports wrong membership")
	}

	g, err := Create("stub_a")
	if err != nil || g.ID() != "stub_a" {
		t.Fatalf("Create(stub_a) = %v, %v", g, err)
	}
	if _, err := Create("missing"); err == nil {
		t.Errorf("expected error for unknown game")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub_b" && info.Title != "Stub stub_b" {
			t.Errorf("title not recorded: %+v", info)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("List not sorted: %v", ids)
		}
	}

	defer func() {
		if recover() == nil {
			t.Errorf("duplicate registration should panic")
		}
	}()
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })
}

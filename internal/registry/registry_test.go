package registry

import (
	"testing"

	"github.com/vovakirdan/rockdodge/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Description() string      { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(*core.Screen)   {}
func (g *stubGame) State() core.GameState { return g.state }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") || !Exists("aa-stub") {
		t.Fatal("registered games should exist")
	}
	if Exists("missing") {
		t.Error("unregistered game should not exist")
	}

	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d games, expected at least 2", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	for _, info := range list {
		if info.ID == "aa-stub" {
			if info.Title != "Stub aa-stub" || info.Description != "a stub" {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}

package systems

import (
	"testing"

	"tabletop-server/internal/domain"
)

func TestFindOpenPositionScanOrder(t *testing.T) {
	// Empty grid: scan starts at the top-right corner
	got := FindOpenPosition(nil, nil)
	want := domain.Position{X: 15, Y: 0}
	if got != want {
		t.Errorf("open position on empty grid = %v, want %v", got, want)
	}

	// Occupied corner pushes the result one cell left
	monsters := []domain.Monster{{Name: "Goblin", Position: want}}
	got = FindOpenPosition(nil, monsters)
	if (got != domain.Position{X: 14, Y: 0}) {
		t.Errorf("open position = %v, want (14,0)", got)
	}
}

func TestFindOpenPositionSkipsParty(t *testing.T) {
	party := []domain.Character{{Name: "Fighter", Position: domain.Position{X: 15, Y: 0}}}
	got := FindOpenPosition(party, nil)
	if (got == domain.Position{X: 15, Y: 0}) {
		t.Error("party-occupied cell must not be returned")
	}
}

func TestFindOpenPositionFullGrid(t *testing.T) {
	var monsters []domain.Monster
	for y := 0; y < domain.GridSize; y++ {
		for x := 0; x < domain.GridSize; x++ {
			monsters = append(monsters, domain.Monster{Position: domain.Position{X: x, Y: y}})
		}
	}
	got := FindOpenPosition(nil, monsters)
	if (got != domain.Position{X: 8, Y: 8}) {
		t.Errorf("full grid fallback = %v, want (8,8)", got)
	}
}

func TestSpawnName(t *testing.T) {
	var monsters []domain.Monster

	if name := SpawnName("Goblin", monsters); name != "Goblin" {
		t.Errorf("first spawn = %q, want %q", name, "Goblin")
	}

	monsters = append(monsters, domain.Monster{Name: "Goblin"})
	if name := SpawnName("Goblin", monsters); name != "Goblin 2" {
		t.Errorf("second spawn = %q, want %q", name, "Goblin 2")
	}

	monsters = append(monsters, domain.Monster{Name: "Goblin 2"})
	if name := SpawnName("Goblin", monsters); name != "Goblin 3" {
		t.Errorf("third spawn = %q, want %q", name, "Goblin 3")
	}

	// Unrelated monsters do not affect the counter
	monsters = append(monsters, domain.Monster{Name: "Orc"})
	if name := SpawnName("Wolf", monsters); name != "Wolf" {
		t.Errorf("unrelated spawn = %q, want %q", name, "Wolf")
	}
}

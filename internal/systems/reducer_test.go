package systems

import (
	"reflect"
	"testing"

	"tabletop-server/internal/domain"
	"tabletop-server/pkg/bestiary"
)

func combatWith(monsters ...domain.Monster) *domain.CombatState {
	var order []domain.InitiativeEntry
	order = append(order, domain.InitiativeEntry{Name: "Fighter", Initiative: 15, IsParty: true})
	for _, m := range monsters {
		order = append(order, domain.InitiativeEntry{Name: m.Name, Initiative: 10})
	}
	return &domain.CombatState{
		InitiativeOrder: order,
		CurrentTurn:     0,
		Round:           1,
		Monsters:        monsters,
	}
}

func goblin(name string) domain.Monster {
	return bestiary.Presets["Goblin"].Spawn(name, domain.Position{X: 15, Y: 0})
}

func TestDamageMonsterClamping(t *testing.T) {
	state := domain.NewGameState()
	state = Reduce(state, SetCombat{Combat: combatWith(goblin("Goblin"), goblin("Goblin 2"))})

	state = Reduce(state, DamageMonster{Name: "Goblin", Amount: 3})
	if got := state.Combat.Monsters[0].HP.Current; got != 4 {
		t.Errorf("hp after 3 damage = %d, want 4", got)
	}

	// Overkill clamps to 0 and removes the monster
	state = Reduce(state, DamageMonster{Name: "Goblin", Amount: 100})
	if len(state.Combat.Monsters) != 1 || state.Combat.Monsters[0].Name != "Goblin 2" {
		t.Fatalf("dead monster must leave the roster, got %+v", state.Combat.Monsters)
	}
	for _, e := range state.Combat.InitiativeOrder {
		if e.Name == "Goblin" && !e.IsParty {
			t.Error("dead monster must leave the initiative order")
		}
	}

	// Non-positive damage is a no-op
	before := state
	state = Reduce(state, DamageMonster{Name: "Goblin 2", Amount: 0})
	if !reflect.DeepEqual(before, state) {
		t.Error("zero damage must not change state")
	}
}

func TestHealMonsterClamping(t *testing.T) {
	state := domain.NewGameState()
	state = Reduce(state, SetCombat{Combat: combatWith(goblin("Goblin"))})
	state = Reduce(state, DamageMonster{Name: "Goblin", Amount: 5})

	state = Reduce(state, HealMonster{Name: "Goblin", Amount: 100})
	if got := state.Combat.Monsters[0]; got.HP.Current != got.HP.Max {
		t.Errorf("heal overflow: hp = %d/%d", got.HP.Current, got.HP.Max)
	}
}

func TestDamageUnknownMonsterIsNoop(t *testing.T) {
	state := domain.NewGameState()
	state = Reduce(state, SetCombat{Combat: combatWith(goblin("Goblin"))})

	before := state
	state = Reduce(state, DamageMonster{Name: "Beholder", Amount: 5})
	if !reflect.DeepEqual(before, state) {
		t.Error("damage to an unknown monster must be a no-op")
	}
}

func TestTerrainUpsert(t *testing.T) {
	state := domain.NewGameState()
	pos := domain.Position{X: 4, Y: 4}

	state = Reduce(state, PlaceTerrain{Feature: domain.TerrainFeature{Type: "tree", Position: pos}})
	state = Reduce(state, PlaceTerrain{Feature: domain.TerrainFeature{Type: "rock", Position: pos}})

	count := 0
	for _, f := range state.Scene.Terrain {
		if f.Position == pos {
			count++
			if f.Type != "rock" {
				t.Errorf("cell holds %q, want the most recent %q", f.Type, "rock")
			}
		}
	}
	if count != 1 {
		t.Errorf("cell holds %d features, want 1", count)
	}

	state = Reduce(state, RemoveTerrain{Pos: pos})
	if len(state.Scene.Terrain) != 0 {
		t.Error("remove must clear the cell")
	}

	// Out-of-bounds placement is rejected
	state = Reduce(state, PlaceTerrain{Feature: domain.TerrainFeature{Type: "wall", Position: domain.Position{X: 99, Y: 0}}})
	if len(state.Scene.Terrain) != 0 {
		t.Error("out-of-bounds placement must be a no-op")
	}
}

func TestModeTransitions(t *testing.T) {
	// Spec'd end-to-end scenario: spawn into exploration, overkill, revert
	state := domain.NewGameState()
	state.Mode = domain.ModeExploration

	state = Reduce(state, AddMonster{Monster: goblin("Goblin")})
	if state.Mode != domain.ModeCombat {
		t.Fatalf("mode after spawn = %q, want %q", state.Mode, domain.ModeCombat)
	}
	if state.Combat == nil || len(state.Combat.Monsters) != 1 {
		t.Fatal("spawn must open combat with one monster")
	}
	if hp := state.Combat.Monsters[0].HP; hp.Current != 7 || hp.Max != 7 {
		t.Errorf("goblin hp = %d/%d, want 7/7", hp.Current, hp.Max)
	}

	state = Reduce(state, DamageMonster{Name: "Goblin", Amount: 10})
	if state.Combat != nil {
		t.Error("killing the last monster must end combat")
	}
	if state.Mode != domain.ModeExploration {
		t.Errorf("mode after last kill = %q, want %q", state.Mode, domain.ModeExploration)
	}
}

func TestRemoveMonsterAdjustsTurn(t *testing.T) {
	state := domain.NewGameState()
	combat := combatWith(goblin("Goblin"), goblin("Orc"))
	combat.CurrentTurn = 2 // Orc's turn
	state = Reduce(state, SetCombat{Combat: combat})

	// Removing an earlier entry shifts the current turn index down
	state = Reduce(state, RemoveMonster{Name: "Goblin"})
	if state.Combat.CurrentTurn != 1 {
		t.Errorf("currentTurn = %d, want 1", state.Combat.CurrentTurn)
	}
	if state.Combat.InitiativeOrder[state.Combat.CurrentTurn].Name != "Orc" {
		t.Error("turn must still point at the Orc")
	}
}

func TestReducerPurity(t *testing.T) {
	original := domain.NewGameState()
	original = Reduce(original, SetParty{
		SessionID: "s1",
		Party: []domain.Character{
			{Name: "Fighter", Position: domain.Position{X: 1, Y: 1}},
		},
		Scene: domain.Scene{MapID: "tavern"},
	})
	original = Reduce(original, SetCombat{Combat: combatWith(goblin("Goblin"))})

	snapshot := original
	partyBefore := original.Party[0]
	monstersBefore := original.Combat.Monsters[0]

	_ = Reduce(original, MoveCharacter{Name: "Fighter", Pos: domain.Position{X: 5, Y: 5}})
	_ = Reduce(original, DamageMonster{Name: "Goblin", Amount: 3})
	_ = Reduce(original, AddNarrative{Entry: domain.NarrativeEntry{ID: "n1", Content: "hi"}})
	_ = Reduce(original, ClearTerrain{})
	_ = Reduce(original, Reset{})

	if !reflect.DeepEqual(snapshot, original) {
		t.Fatal("input state was mutated by Reduce")
	}
	if !reflect.DeepEqual(original.Party[0], partyBefore) {
		t.Error("party subtree was mutated")
	}
	if !reflect.DeepEqual(original.Combat.Monsters[0], monstersBefore) {
		t.Error("combat subtree was mutated")
	}
}

func TestUntouchedSubtreesShared(t *testing.T) {
	// Copy-on-write: operations on one subtree leave others structurally equal
	state := domain.NewGameState()
	state = Reduce(state, SetParty{
		SessionID: "s1",
		Party:     []domain.Character{{Name: "Wizard"}},
		Scene:     domain.Scene{MapID: "tavern", Terrain: []domain.TerrainFeature{{Type: "table", Position: domain.Position{X: 3, Y: 3}}}},
	})

	next := Reduce(state, AddNarrative{Entry: domain.NarrativeEntry{ID: "n1"}})
	if !reflect.DeepEqual(next.Party, state.Party) {
		t.Error("narrative append must not rebuild the party")
	}
	if !reflect.DeepEqual(next.Scene, state.Scene) {
		t.Error("narrative append must not rebuild the scene")
	}
}

func TestMovementClampsToGrid(t *testing.T) {
	state := domain.NewGameState()
	state = Reduce(state, SetParty{
		SessionID: "s1",
		Party:     []domain.Character{{Name: "Rogue", Position: domain.Position{X: 0, Y: 0}}},
	})

	state = Reduce(state, MoveCharacter{Name: "Rogue", Pos: domain.Position{X: 40, Y: -3}})
	got := state.Party[0].Position
	if (got != domain.Position{X: 15, Y: 0}) {
		t.Errorf("clamped position = %v, want (15,0)", got)
	}
}

func TestResetKeepsSessionID(t *testing.T) {
	state := domain.NewGameState()
	state = Reduce(state, SetParty{SessionID: "s1", Party: []domain.Character{{Name: "Bard"}}})
	state = Reduce(state, ToggleAudio{})

	state = Reduce(state, Reset{})
	if state.SessionID != "s1" {
		t.Error("reset must keep the session id")
	}
	if state.Mode != domain.ModeSetup || len(state.Party) != 0 || !state.AudioEnabled {
		t.Error("reset must restore the initial state")
	}
}

func TestTerrainEditModeClearsSelection(t *testing.T) {
	state := domain.NewGameState()
	state = Reduce(state, SetTerrainEditMode{Enabled: true})
	state = Reduce(state, SetSelectedTerrain{Type: "wall"})

	state = Reduce(state, SetTerrainEditMode{Enabled: false})
	if state.SelectedTerrainType != "" {
		t.Error("disabling the terrain editor must clear the selected type")
	}
}

package engine

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"tabletop-server/internal/domain"
	"tabletop-server/internal/infrastructure/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(Config{
		SaveDir:            t.TempDir(),
		ScenePromptTimeout: time.Second,
	})
}

// cmd builds an internal command the way ProcessCommand would,
// so tests can drive execute without running the loop goroutine.
func cmd(action domain.ActionType, payload string) domain.InternalCommand {
	return domain.InternalCommand{Action: action, Payload: json.RawMessage(payload)}
}

func TestSpawnAndKillMonster(t *testing.T) {
	s := newTestService(t)
	s.State.Mode = domain.ModeExploration

	s.execute(cmd(domain.ActionSpawnMonster, `{"preset":"Goblin"}`))

	if s.State.Mode != domain.ModeCombat {
		t.Fatalf("mode after spawn = %q, want combat", s.State.Mode)
	}
	if s.State.Combat == nil || len(s.State.Combat.Monsters) != 1 {
		t.Fatal("spawned monster missing from combat state")
	}
	m := s.State.Combat.Monsters[0]
	if m.Name != "Goblin" || m.HP.Current != 7 {
		t.Errorf("spawned monster = %s hp %d, want Goblin hp 7", m.Name, m.HP.Current)
	}
	if m.Position != (domain.Position{X: 15, Y: 0}) {
		t.Errorf("spawn position = %v, want first open cell (15,0)", m.Position)
	}

	// Overkill damage removes the monster and ends combat.
	s.execute(cmd(domain.ActionDamageMonster, `{"name":"Goblin","amount":10}`))

	if s.State.Combat != nil {
		t.Error("combat must end when the last monster dies")
	}
	if s.State.Mode != domain.ModeExploration {
		t.Errorf("mode after kill = %q, want exploration", s.State.Mode)
	}
}

func TestRejectedCommandLeavesStateUntouched(t *testing.T) {
	s := newTestService(t)
	before := s.State

	// Zero amount fails payload validation.
	s.execute(cmd(domain.ActionDamageMonster, `{"name":"Goblin","amount":0}`))

	if s.State.Mode != before.Mode || s.State.Combat != before.Combat {
		t.Error("rejected command must not change state")
	}
	if snap := s.Snapshot(); snap.Error != "" {
		t.Error("rejection must not leak into the shared snapshot")
	}
}

func TestRejectedCommandNotifiesOnlySender(t *testing.T) {
	s := newTestService(t)
	sender := s.Hub.Register("sender")
	other := s.Hub.Register("other")

	bad := cmd(domain.ActionDamageMonster, `{"name":"Goblin","amount":0}`)
	bad.ClientID = "sender"
	s.execute(bad)

	select {
	case resp := <-sender:
		if resp.Error == "" {
			t.Error("sender must receive the rejection error")
		}
	default:
		t.Fatal("sender received no response")
	}
	if n := len(other); n != 0 {
		t.Errorf("other client received %d responses, want 0", n)
	}
}

func TestUnknownPresetRejected(t *testing.T) {
	s := newTestService(t)
	updates := s.Hub.Register("dm")

	bad := cmd(domain.ActionSpawnMonster, `{"preset":"Tarrasque"}`)
	bad.ClientID = "dm"
	s.execute(bad)

	if s.State.Combat != nil {
		t.Error("unknown preset must not spawn anything")
	}
	select {
	case resp := <-updates:
		if !strings.Contains(resp.Error, "unknown monster preset") {
			t.Errorf("published error = %q", resp.Error)
		}
	default:
		t.Fatal("no response delivered to the sender")
	}
}

func TestResetClearsSavedSession(t *testing.T) {
	s := newTestService(t)
	if err := s.Store.Save(storage.SessionBlob{
		SessionID: "s1",
		Party:     []domain.Character{{Name: "Fighter"}},
	}); err != nil {
		t.Fatal(err)
	}
	s.State.SessionID = "s1"
	s.State.Mode = domain.ModeExploration

	s.execute(cmd(domain.ActionReset, `{}`))

	if s.State.Mode != domain.ModeSetup {
		t.Errorf("mode after reset = %q, want setup", s.State.Mode)
	}
	if s.State.SessionID != "s1" {
		t.Error("reset must keep the session id")
	}
	if _, ok := s.Store.Load(); ok {
		t.Error("reset must delete the saved session blob")
	}
}

func TestAsyncErrorClearsLoading(t *testing.T) {
	s := newTestService(t)
	s.State.IsLoading = true

	s.execute(domain.InternalCommand{
		Action: domain.ActionApplyNarrative,
		Data:   errors.New("engine overloaded"),
	})

	if s.State.IsLoading {
		t.Error("engine error must clear the loading flag")
	}
	if n := len(s.State.NarrativeLog); n != 1 {
		t.Fatalf("log entries = %d, want 1 system entry", n)
	}
	entry := s.State.NarrativeLog[0]
	if entry.Type != domain.EntrySystem || !strings.Contains(entry.Content, "engine overloaded") {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestTerrainEditingFlow(t *testing.T) {
	s := newTestService(t)

	s.execute(cmd(domain.ActionTerrainEdit, `{"enabled":true}`))
	s.execute(cmd(domain.ActionSelectTerrain, `{"type":"wall"}`))
	s.execute(cmd(domain.ActionPlaceTerrain, `{"type":"wall","position":[3,4]}`))

	if !s.State.TerrainEditMode || s.State.SelectedTerrainType != "wall" {
		t.Error("edit mode state not applied")
	}
	if len(s.State.Scene.Terrain) != 1 {
		t.Fatalf("terrain features = %d, want 1", len(s.State.Scene.Terrain))
	}
	f := s.State.Scene.Terrain[0]
	if f.Type != "wall" || !f.BlocksMovement || !f.BlocksSight {
		t.Errorf("placed feature = %+v", f)
	}

	// Disabling the editor drops the selection.
	s.execute(cmd(domain.ActionTerrainEdit, `{"enabled":false}`))
	if s.State.SelectedTerrainType != "" {
		t.Error("disabling edit mode must clear the selected type")
	}
}

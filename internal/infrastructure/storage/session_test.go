package storage

import (
	"os"
	"path/filepath"
	"testing"

	"tabletop-server/internal/domain"
)

func TestSessionRoundTrip(t *testing.T) {
	store := NewSessionStore(t.TempDir())

	blob := SessionBlob{
		SessionID: "s1",
		Party: []domain.Character{
			{Name: "Fighter", Position: domain.Position{X: 2, Y: 3}, Color: "#3B82F6"},
		},
		Scene:            domain.Scene{Description: "a tavern", MapID: "tavern"},
		VoiceAssignments: map[string]string{"Fighter": "voice-1"},
		EpisodeNumber:    2,
	}
	if err := store.Save(blob); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok := store.Load()
	if !ok {
		t.Fatal("saved session must load")
	}
	if got.SessionID != "s1" || len(got.Party) != 1 || got.Party[0].Name != "Fighter" {
		t.Errorf("loaded blob = %+v", got)
	}
	if got.Party[0].Position != (domain.Position{X: 2, Y: 3}) {
		t.Errorf("position survived as %v", got.Party[0].Position)
	}
	if got.EpisodeNumber != 2 {
		t.Errorf("episodeNumber = %d", got.EpisodeNumber)
	}
}

func TestLoadMissingSession(t *testing.T) {
	store := NewSessionStore(t.TempDir())
	if _, ok := store.Load(); ok {
		t.Error("missing file must read as no session")
	}
}

func TestLoadMalformedSession(t *testing.T) {
	dir := t.TempDir()
	store := NewSessionStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	// A broken blob means no session, not an error
	if _, ok := store.Load(); ok {
		t.Error("malformed blob must read as no session")
	}
}

func TestClear(t *testing.T) {
	store := NewSessionStore(t.TempDir())
	if err := store.Save(SessionBlob{SessionID: "s1", Party: []domain.Character{{Name: "X"}}}); err != nil {
		t.Fatal(err)
	}

	store.Clear()
	if _, ok := store.Load(); ok {
		t.Error("cleared session must not load")
	}
}

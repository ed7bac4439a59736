package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tabletop-server/pkg/api"
)

func TestCallWithoutURL(t *testing.T) {
	c := NewClient("")
	_, err := c.RollDice("1d20", "")
	if !errors.Is(err, ErrWebhookUnset) {
		t.Errorf("expected ErrWebhookUnset, got %v", err)
	}
}

func TestCallNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "engine overloaded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.DMInput(api.DmInputRequest{SessionID: "s1", Message: "hi"})
	if err == nil {
		t.Fatal("non-2xx must surface as an error")
	}
}

func TestDMInputRoundTrip(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(api.DmInputResponse{
			SessionID: "s1",
			Mode:      "exploration",
			Narrative: "The tavern falls silent.",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.DMInput(api.DmInputRequest{SessionID: "s1", Message: "I look around"})
	if err != nil {
		t.Fatalf("DMInput: %v", err)
	}

	if gotBody["action"] != "dm_input" {
		t.Errorf("request action = %v, want dm_input", gotBody["action"])
	}
	if gotBody["message"] != "I look around" {
		t.Errorf("request message = %v", gotBody["message"])
	}
	if resp.Narrative != "The tavern falls silent." {
		t.Errorf("narrative = %q", resp.Narrative)
	}
}

func TestLookupContract(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(api.LookupResponse{
			Resource: api.LookupMonster,
			Items:    []interface{}{map[string]any{"name": "Goblin"}},
			Count:    1,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Lookup(api.LookupMonster, "goblin")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if gotBody["action"] != "lookup" {
		t.Errorf("request action = %v, want lookup", gotBody["action"])
	}
	if gotBody["resource"] != api.LookupMonster {
		t.Errorf("request resource = %v", gotBody["resource"])
	}
	if resp.Count != 1 {
		t.Errorf("count = %d, want 1", resp.Count)
	}
}

func TestCampaignLoreContract(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(api.CampaignLoreResponse{
			Answer: "The duke vanished in episode three.",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.CampaignLore("s1", "What happened to the duke?", 1, 4)
	if err != nil {
		t.Fatalf("CampaignLore: %v", err)
	}

	if gotBody["action"] != "campaign_lore" {
		t.Errorf("request action = %v, want campaign_lore", gotBody["action"])
	}
	if gotBody["question"] != "What happened to the duke?" {
		t.Errorf("request question = %v", gotBody["question"])
	}
	if resp.Answer == "" {
		t.Error("answer must not be empty")
	}
}

func TestGenerateMapContract(t *testing.T) {
	var gotBody struct {
		Action                string   `json:"action"`
		AvailableTerrainTypes []string `json:"availableTerrainTypes"`
		GridSize              int      `json:"gridSize"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(api.GenerateMapResponse{MapID: "dungeon"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.GenerateMap("s1", "a dark dungeon"); err != nil {
		t.Fatalf("GenerateMap: %v", err)
	}

	if gotBody.Action != "generate_map" {
		t.Errorf("action = %q", gotBody.Action)
	}
	if len(gotBody.AvailableTerrainTypes) != 27 {
		t.Errorf("availableTerrainTypes count = %d, want 27", len(gotBody.AvailableTerrainTypes))
	}
	if gotBody.GridSize != 16 {
		t.Errorf("gridSize = %d, want 16", gotBody.GridSize)
	}
}

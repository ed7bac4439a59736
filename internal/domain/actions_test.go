package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"DM_INPUT", ActionDMInput},
		{"dm_input", ActionDMInput},
		{"Dm_Input", ActionDMInput},
		{"SPAWN_MONSTER", ActionSpawnMonster},
		{"ACCEPT_SCENE", ActionAcceptScene},
		{"RESET", ActionReset},
		{"UNKNOWN_ACTION", ActionUnknown},
		{"", ActionUnknown},
		// Internal commands must not be reachable from the wire.
		{"APPLY_NARRATIVE", ActionUnknown},
		{"SCENE_TIMEOUT", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionDMInput, "DM_INPUT"},
		{ActionDamageMonster, "DAMAGE_MONSTER"},
		{ActionApplyNarrative, "APPLY_NARRATIVE"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

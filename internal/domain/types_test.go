package domain

import "testing"

func TestMonsterBloodied(t *testing.T) {
	cases := []struct {
		current, max int
		want         bool
	}{
		{7, 7, false},
		{4, 7, false},
		{3, 7, true},
		{0, 7, true},
		{5, 10, true}, // exactly half counts
		{6, 10, false},
		{0, 0, false}, // empty statblock is never bloodied
	}

	for _, c := range cases {
		m := Monster{HP: HitPoints{Current: c.current, Max: c.max}}
		if got := m.Bloodied(); got != c.want {
			t.Errorf("Bloodied at %d/%d = %v, want %v", c.current, c.max, got, c.want)
		}
	}
}

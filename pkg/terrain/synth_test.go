package terrain

import (
	"reflect"
	"testing"

	"tabletop-server/internal/domain"
)

func countByType(fs []domain.TerrainFeature) map[domain.TerrainType]int {
	out := make(map[domain.TerrainType]int)
	for _, f := range fs {
		out[f.Type]++
	}
	return out
}

func TestSynthesizeDeterminism(t *testing.T) {
	// Identical descriptions always produce identical feature sets
	a := Synthesize("a cozy tavern")
	b := Synthesize("a cozy tavern")

	if !reflect.DeepEqual(a, b) {
		t.Fatal("tavern synthesis is not deterministic")
	}

	fallback1 := Synthesize("xyzzy nonsense")
	fallback2 := Synthesize("xyzzy nonsense")
	if !reflect.DeepEqual(fallback1, fallback2) {
		t.Fatal("generic fallback is not deterministic")
	}
	if len(fallback1) == 0 {
		t.Fatal("generic fallback must not be empty")
	}
}

func TestSynthesizePriorityOrder(t *testing.T) {
	// The tavern group is checked before the dungeon group
	got := Synthesize("an inn above a crypt")
	want := Synthesize("tavern")
	if !reflect.DeepEqual(got, want) {
		t.Error("tavern keywords must win over dungeon keywords")
	}
}

func TestDungeonLayoutContents(t *testing.T) {
	counts := countByType(Synthesize("you step into a dark dungeon corridor"))

	if counts[Wall] == 0 {
		t.Error("dungeon layout must contain walls")
	}
	if counts[Door] == 0 {
		t.Error("dungeon layout must contain a door")
	}
	if counts[Trap]+counts[Pit] == 0 {
		t.Error("dungeon layout must contain a hazard (trap or pit)")
	}
	if counts[Chest] == 0 {
		t.Error("dungeon layout must contain treasure chests")
	}
	if counts[StairsUp] == 0 || counts[StairsDown] == 0 {
		t.Error("dungeon layout must contain stairs")
	}
}

func TestCaveLayoutBoundary(t *testing.T) {
	fs := Synthesize("a damp cavern")
	walls := make(map[domain.Position]bool)
	for _, f := range fs {
		if f.Type == Wall {
			walls[f.Position] = true
		}
	}

	// Boundary follows the noise formula
	for _, c := range []struct {
		x, y int
	}{{0, 0}, {15, 0}, {0, 15}, {15, 15}} {
		if !walls[domain.Position{X: c.x, Y: c.y}] {
			t.Errorf("cave corner (%d,%d) must be a wall", c.x, c.y)
		}
	}

	// Center stays open
	if walls[domain.Position{X: 7, Y: 7}] {
		t.Error("cave center must be open")
	}

	// Carved entrance from the south
	for _, c := range [][2]int{{7, 14}, {8, 14}, {7, 15}, {8, 15}} {
		if walls[domain.Position{X: c[0], Y: c[1]}] {
			t.Errorf("cave entrance cell (%d,%d) must be cleared", c[0], c[1])
		}
	}
}

func TestRiverCenterline(t *testing.T) {
	// round(7 + sin(y*0.4)*2.5) from the river generator
	cases := map[int]int{0: 7, 4: 9, 8: 7, 12: 5}
	for y, want := range cases {
		if got := riverX(y); got != want {
			t.Errorf("riverX(%d) = %d, want %d", y, got, want)
		}
	}

	fs := Synthesize("crossing the river")
	byPos := make(map[domain.Position]domain.TerrainType)
	for _, f := range fs {
		byPos[f.Position] = f.Type
	}

	for y := 0; y < domain.GridSize; y++ {
		pos := domain.Position{X: riverX(y), Y: y}
		got := byPos[pos]
		if got != DeepWater && got != Bridge {
			t.Errorf("centerline cell (%d,%d) = %q, want deep_water or bridge", pos.X, pos.Y, got)
		}
	}

	if byPos[domain.Position{X: riverX(7), Y: 7}] != Bridge {
		t.Error("river must have a bridge crossing at y=7")
	}
}

func TestForestStream(t *testing.T) {
	counts := countByType(Synthesize("a quiet forest glade"))

	if counts[Tree] < 30 {
		t.Errorf("forest must have a perimeter tree line, got %d trees", counts[Tree])
	}
	if counts[Water] == 0 {
		t.Error("forest must contain a stream")
	}
	if counts[Bridge] == 0 {
		t.Error("forest stream must have a bridge crossing")
	}
}

func TestSynthesizeOneFeaturePerCell(t *testing.T) {
	for _, desc := range []string{
		"tavern", "dungeon", "forest", "cave", "town",
		"castle", "temple", "camp", "river", "???",
	} {
		seen := make(map[domain.Position]bool)
		for _, f := range Synthesize(desc) {
			if seen[f.Position] {
				t.Errorf("%s: duplicate feature at (%d,%d)", desc, f.Position.X, f.Position.Y)
			}
			seen[f.Position] = true
			if !f.Position.InBounds() {
				t.Errorf("%s: feature out of bounds at (%d,%d)", desc, f.Position.X, f.Position.Y)
			}
		}
	}
}

func TestDetectMapID(t *testing.T) {
	cases := []struct {
		text string
		want string
		ok   bool
	}{
		{"You arrive at the Rusty Flagon inn", "tavern", true},
		{"a forgotten CRYPT below the chapel", "dungeon", true},
		{"deep in the jungle", "forest", true},
		{"an abandoned mine shaft", "cave", true},
		{"the market square bustles", "town", true},
		{"somewhere unremarkable", "", false},
	}

	for _, c := range cases {
		got, ok := DetectMapID(c.text)
		if got != c.want || ok != c.ok {
			t.Errorf("DetectMapID(%q) = (%q, %v), want (%q, %v)", c.text, got, ok, c.want, c.ok)
		}
	}
}

package gamedata

import (
	"math"
	"testing"
)

func TestLoadUnits(t *testing.T) {
	units, err := LoadUnits()
	if err != nil {
		t.Fatalf("Failed to load units: %v", err)
	}

	if len(units) != 3 {
		t.Fatalf("Expected 3 units, got %d", len(units))
	}

	tests := []struct {
		id     string
		price  float64
		damage int
		flee   int
	}{
		{"warrior", 10.0, 3, 2},
		{"hunter", 8.0, 2, 4},
		{"wizard", 12.0, 4, 3},
	}

	for i, tt := range tests {
		u := units[i]
		if u.ID != tt.id {
			t.Errorf("units[%d].ID = %q, want %q", i, u.ID, tt.id)
		}
		if u.Price != tt.price {
			t.Errorf("%s price = %v, want %v", tt.id, u.Price, tt.price)
		}
		if u.Damage != tt.damage {
			t.Errorf("%s damage = %d, want %d", tt.id, u.Damage, tt.damage)
		}
		if u.Flee != tt.flee {
			t.Errorf("%s flee = %d, want %d", tt.id, u.Flee, tt.flee)
		}
	}
}

func TestUnitRegistry(t *testing.T) {
	registry, err := LoadUnitRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 unit types, got %d", registry.Count())
	}

	hunter := registry.GetByID("hunter")
	if hunter == nil {
		t.Fatal("Hunter not found by ID")
	}
	if hunter.Name != "Hunter" {
		t.Errorf("Expected name 'Hunter', got %q", hunter.Name)
	}

	if registry.GetByID("paladin") != nil {
		t.Error("GetByID(paladin) should return nil")
	}

	ids := registry.IDs()
	want := []string{"warrior", "hunter", "wizard"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	if Units() != Units() {
		t.Error("Units() should return the same shared registry")
	}
}

func TestLoadEncounters(t *testing.T) {
	def, err := LoadEncounters()
	if err != nil {
		t.Fatalf("Failed to load encounters: %v", err)
	}

	if def.ReinforcementUnit != "warrior" {
		t.Errorf("ReinforcementUnit = %q, want warrior", def.ReinforcementUnit)
	}
	if len(def.EnemyFleeScores) != 4 {
		t.Errorf("EnemyFleeScores length = %d, want 4", len(def.EnemyFleeScores))
	}

	tests := []struct {
		band   string
		chance int
		want   float64
	}{
		{BandLoot, 0, 0},
		{BandLoot, 10, 0.02},
		{BandLoot, 100, 0.20},
		{BandLoot, 1000, 0.20},
		{BandReinforcement, 10, 0.01},
		{BandReinforcement, 500, 0.10},
		{BandEnemy, 8, 0.02},
		{BandEnemy, 80, 0.20},
	}

	for _, tt := range tests {
		b, ok := def.Band(tt.band)
		if !ok {
			t.Fatalf("Band(%q) not found", tt.band)
		}
		if got := b.Probability(tt.chance); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Band(%q).Probability(%d) = %v, want %v", tt.band, tt.chance, got, tt.want)
		}
	}
}

func TestEncounterDefValidate(t *testing.T) {
	def := EncounterDef{
		Bands:             []BandDef{{ID: BandLoot, Divisor: 500, Cap: 0.2}},
		LootRewards:       []int{5},
		ReinforcementUnit: "warrior",
		EnemyUnitCounts:   []int{0},
		EnemyLootRewards:  []int{5},
		EnemyFleeScores:   []int{1},
	}
	if err := def.Validate(); err == nil {
		t.Error("Validate() should fail when bands are missing")
	}

	def.Bands = append(def.Bands,
		BandDef{ID: BandReinforcement, Divisor: 1000, Cap: 0.1},
		BandDef{ID: BandEnemy, Divisor: 400, Cap: 0.2},
	)
	if err := def.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	def.EnemyFleeScores = nil
	if err := def.Validate(); err == nil {
		t.Error("Validate() should fail on an empty pool")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#8E44AD", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestUnitDefMethods(t *testing.T) {
	def := UnitDef{
		ID:     "test",
		Name:   "Test Unit",
		Symbol: "T",
		Color:  "#FF0000",
	}

	if def.SymbolRune() != 'T' {
		t.Errorf("Expected symbol 'T', got %c", def.SymbolRune())
	}

	r, g, b := def.TCellColor().RGB()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("TCellColor().RGB() = (%d,%d,%d), want (255,0,0)", r, g, b)
	}

	def.Color = "bogus"
	if def.TCellColor() == 0 {
		t.Error("TCellColor should fall back to a non-zero color")
	}
}

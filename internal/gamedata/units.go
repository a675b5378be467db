package gamedata

import "github.com/gdamore/tcell/v2"

// UnitDef defines a recruitable unit type loaded from JSON.
type UnitDef struct {
	ID     string  `json:"id"`     // Unique identifier (e.g., "warrior")
	Name   string  `json:"name"`   // Display name (e.g., "Warrior")
	Symbol string  `json:"symbol"` // Single character for rendering (e.g., "W")
	Color  string  `json:"color"`  // Hex color code (e.g., "#D35400")
	Price  float64 `json:"price"`  // Loot cost to recruit one unit
	Damage int     `json:"damage"` // Damage contributed to the side's total
	Flee   int     `json:"flee"`   // Flee score contributed to the side's total
}

// SymbolRune returns the symbol as a rune for rendering.
func (u *UnitDef) SymbolRune() rune {
	if len(u.Symbol) == 0 {
		return '?'
	}
	return rune(u.Symbol[0])
}

// TCellColor returns the color as a tcell.Color.
func (u *UnitDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(u.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// UnitsFile represents the structure of units.json.
type UnitsFile struct {
	Units []UnitDef `json:"units"`
}

// LoadUnits loads unit definitions from the embedded units.json file.
func LoadUnits() ([]UnitDef, error) {
	file, err := Load[UnitsFile]("units.json")
	if err != nil {
		return nil, err
	}
	return file.Units, nil
}

package gamedata

import (
	"errors"
	"sync"
)

// UnitRegistry holds loaded unit definitions and provides lookup utilities.
type UnitRegistry struct {
	units map[string]*UnitDef
	all   []UnitDef
}

// NewUnitRegistry creates a registry from loaded unit definitions.
func NewUnitRegistry(units []UnitDef) *UnitRegistry {
	registry := &UnitRegistry{
		units: make(map[string]*UnitDef, len(units)),
		all:   units,
	}
	for i := range units {
		registry.units[units[i].ID] = &units[i]
	}
	return registry
}

// LoadUnitRegistry loads and creates a registry from the embedded units.json.
func LoadUnitRegistry() (*UnitRegistry, error) {
	units, err := LoadUnits()
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, errors.New("no units loaded from units.json")
	}
	return NewUnitRegistry(units), nil
}

// MustLoadUnitRegistry loads a registry, panicking on error.
func MustLoadUnitRegistry() *UnitRegistry {
	registry, err := LoadUnitRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

var (
	unitsOnce      = sync.OnceValue(MustLoadUnitRegistry)
	encountersOnce = sync.OnceValue(MustLoadEncounters)
)

// Units returns the shared registry built from the embedded unit table.
func Units() *UnitRegistry { return unitsOnce() }

// Encounters returns the shared encounter table.
func Encounters() *EncounterDef { return encountersOnce() }

// GetByID returns the unit definition with the given ID, or nil if not found.
func (r *UnitRegistry) GetByID(id string) *UnitDef {
	return r.units[id]
}

// IDs returns unit IDs in table order.
func (r *UnitRegistry) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, u := range r.all {
		ids = append(ids, u.ID)
	}
	return ids
}

// All returns all unit definitions.
func (r *UnitRegistry) All() []UnitDef {
	return r.all
}

// Count returns the number of unit types in the registry.
func (r *UnitRegistry) Count() int {
	return len(r.all)
}

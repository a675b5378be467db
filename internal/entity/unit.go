// Package entity provides unit rosters and the combat stats each side carries.
package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/warband/internal/gamedata"
)

var (
	// ErrUnknownUnit is returned for a unit kind outside warrior/hunter/wizard.
	ErrUnknownUnit = errors.New("unknown unit type")
	// ErrInsufficientLoot is returned when a purchase costs more than the loot held.
	ErrInsufficientLoot = errors.New("insufficient loot")
)

// Kind represents a recruitable unit type.
type Kind int

const (
	KindWarrior Kind = iota
	KindHunter
	KindWizard

	numKinds
)

// Kinds returns every unit kind in roster order.
func Kinds() []Kind {
	return []Kind{KindWarrior, KindHunter, KindWizard}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= KindWarrior && k < numKinds
}

// ID returns the kind identifier used in data files and snapshots.
func (k Kind) ID() string {
	switch k {
	case KindWarrior:
		return "warrior"
	case KindHunter:
		return "hunter"
	case KindWizard:
		return "wizard"
	default:
		return "unknown"
	}
}

// String returns the display name.
func (k Kind) String() string {
	if def := k.Def(); def != nil {
		return def.Name
	}
	return "Unknown"
}

// Def returns the unit table entry for k, or nil for an invalid kind.
func (k Kind) Def() *gamedata.UnitDef {
	if !k.Valid() {
		return nil
	}
	return gamedata.Units().GetByID(k.ID())
}

// Price returns the loot cost of one unit.
func (k Kind) Price() float64 {
	if def := k.Def(); def != nil {
		return def.Price
	}
	return 0
}

// Damage returns the damage one unit adds to its side.
func (k Kind) Damage() int {
	if def := k.Def(); def != nil {
		return def.Damage
	}
	return 0
}

// Flee returns the flee score one unit adds to its side.
func (k Kind) Flee() int {
	if def := k.Def(); def != nil {
		return def.Flee
	}
	return 0
}

// ParseKind maps a unit name such as " Wizard" to its Kind.
func ParseKind(s string) (Kind, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if k.ID() == id {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

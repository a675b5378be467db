package entity

import "fmt"

// Stats holds a side's aggregate combat values. For the player they are
// stored and updated as units join; for an enemy they are rolled once.
type Stats struct {
	Damage int
	Loot   int
	Flee   int
}

// NewStats returns the stats of an empty player warband.
func NewStats() Stats {
	return Stats{Flee: 1}
}

// WithUnit returns s plus the contribution of one unit of kind k.
func (s Stats) WithUnit(k Kind) Stats {
	s.Damage += k.Damage()
	s.Flee += k.Flee()
	return s
}

// Recomputed rebuilds damage and flee from scratch for roster r.
// Flee starts at 1 so it can never reach zero. Loot is kept as is.
func (s Stats) Recomputed(r Roster) Stats {
	s.Damage = DamageOf(r)
	s.Flee = 1
	for _, k := range Kinds() {
		s.Flee += r.Count(k) * k.Flee()
	}
	return s
}

// FleeScore returns the flee value floored at 1.
func (s Stats) FleeScore() int {
	return max(1, s.Flee)
}

func (s Stats) String() string {
	return fmt.Sprintf("damage=%d, loot=%d, flee=%d", s.Damage, s.Loot, s.Flee)
}

// DamageOf sums the per-unit damage of every unit in r.
func DamageOf(r Roster) int {
	total := 0
	for _, k := range Kinds() {
		total += r.Count(k) * k.Damage()
	}
	return total
}

// Recruit buys one unit of kind k. It fails without changing anything when
// the kind is unknown or loot is below the unit's price.
func Recruit(r Roster, s Stats, k Kind, loot float64) (Roster, Stats, float64, error) {
	if !k.Valid() {
		return r, s, loot, fmt.Errorf("%w: %d", ErrUnknownUnit, int(k))
	}
	price := k.Price()
	if loot < price {
		return r, s, loot, fmt.Errorf("%w: %s costs %.1f, have %.1f", ErrInsufficientLoot, k.ID(), price, loot)
	}
	r, s = Reinforce(r, s, k)
	return r, s, loot - price, nil
}

// Reinforce adds one unit of kind k free of charge.
func Reinforce(r Roster, s Stats, k Kind) (Roster, Stats) {
	if !k.Valid() {
		return r, s
	}
	return r.Add(k, 1), s.WithUnit(k)
}

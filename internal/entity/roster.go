package entity

import (
	"fmt"
	"iter"
)

// Roster counts the units of each kind on one side. It is a value type:
// every mutating helper returns a new Roster.
type Roster struct {
	counts [numKinds]int
}

// NewRoster creates a roster with the given counts.
func NewRoster(warriors, hunters, wizards int) Roster {
	return Roster{counts: [numKinds]int{warriors, hunters, wizards}}
}

// Count returns the number of units of kind k.
func (r Roster) Count(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return r.counts[k]
}

func (r Roster) Warriors() int { return r.counts[KindWarrior] }
func (r Roster) Hunters() int  { return r.counts[KindHunter] }
func (r Roster) Wizards() int  { return r.counts[KindWizard] }

// WithCount returns a copy of r with kind k set to n.
func (r Roster) WithCount(k Kind, n int) Roster {
	if k.Valid() {
		r.counts[k] = n
	}
	return r
}

// Add returns a copy of r with n more units of kind k.
func (r Roster) Add(k Kind, n int) Roster {
	return r.WithCount(k, r.Count(k)+n)
}

// Len returns the total number of units.
func (r Roster) Len() int {
	total := 0
	for _, n := range r.counts {
		total += n
	}
	return total
}

// Chance is the exploration luck signal: the total unit count.
func (r Roster) Chance() int {
	return r.Len()
}

// IsEmpty reports whether the roster has no units.
func (r Roster) IsEmpty() bool {
	return r.Len() == 0
}

// Units yields one kind tag per unit, warriors first, then hunters, then wizards.
func (r Roster) Units() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for _, k := range Kinds() {
			for range r.counts[k] {
				if !yield(k) {
					return
				}
			}
		}
	}
}

// Validate reports a negative count.
func (r Roster) Validate() error {
	for _, k := range Kinds() {
		if r.counts[k] < 0 {
			return fmt.Errorf("roster has %d %ss", r.counts[k], k.ID())
		}
	}
	return nil
}

// String returns a compact summary like "warriors=1, hunters=0, wizards=2".
func (r Roster) String() string {
	return fmt.Sprintf("warriors=%d, hunters=%d, wizards=%d", r.Warriors(), r.Hunters(), r.Wizards())
}

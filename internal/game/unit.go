package game

import "slices"

// disableDuration is how many of its owner's turns a fully hit plane stays down.
const disableDuration = 2

// Unit is one player's instance of a catalog entry.
type Unit struct {
	UnitSpec
	Placed        bool
	Cells         []int // absolute indices, set when placed
	DisabledTurns int   // planes only; counts down at the end of the owner's turns
}

func newUnit(spec UnitSpec) *Unit {
	return &Unit{UnitSpec: spec}
}

// AllHit reports whether every cell of a placed unit is hit on ls.
func (u *Unit) AllHit(ls *LayerState) bool {
	if !u.Placed || len(u.Cells) == 0 {
		return false
	}
	for _, idx := range u.Cells {
		if !ls.IsHit(idx) {
			return false
		}
	}
	return true
}

// Disabled reports whether a plane is currently grounded.
func (u *Unit) Disabled() bool { return u.Kind == UnitPlane && u.DisabledTurns > 0 }

// Covers reports whether idx is one of the unit's cells.
func (u *Unit) Covers(idx int) bool { return slices.Contains(u.Cells, idx) }

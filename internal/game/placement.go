package game

import (
	"fmt"
	"math/rand"
	"slices"
)

// maxPlacementAttempts bounds the random samples tried per unit.
const maxPlacementAttempts = 800

// placeUnit moves u onto cells, vacating its previous cells first.
// Callers validate cells beforehand.
func (p *Player) placeUnit(u *Unit, cells []int) {
	ls := p.LayerState(u.Layer)
	if u.Placed {
		for _, idx := range u.Cells {
			ls.vacate(idx, u.ID)
		}
	}
	for _, idx := range cells {
		ls.occupy(idx, u.ID)
	}
	u.Placed = true
	u.Cells = slices.Clone(cells)
	u.DisabledTurns = 0
}

// clear wipes both layers and returns every unit to unplaced.
func (p *Player) clear() {
	p.Sea = NewLayerState(LayerSea)
	p.Air = NewLayerState(LayerAir)
	for _, spec := range Catalog() {
		p.Units[spec.ID] = newUnit(spec)
	}
}

// placeAt computes u's footprint at origin and places it if legal.
func (p *Player) placeAt(u *Unit, origin Coord, o Orientation) ([]int, error) {
	cells, err := u.Footprint(origin, o)
	if err != nil {
		return nil, err
	}
	if err := canPlaceAs(p.LayerState(u.Layer), cells, u.ID); err != nil {
		return nil, err
	}
	p.placeUnit(u, cells)
	return cells, nil
}

// randomPlace clears p and places every catalog unit by rejection sampling.
// Running out of attempts means the catalog cannot fit the grid, which is a
// programming error rather than a player-facing condition.
func (p *Player) randomPlace(rng *rand.Rand) {
	p.clear()
	for _, spec := range catalog {
		u := p.Units[spec.ID]
		placed := false
		for try := 0; try < maxPlacementAttempts && !placed; try++ {
			o := Horizontal
			if rng.Intn(2) == 1 {
				o = Vertical
			}
			origin := Coord{X: rng.Intn(GridSize), Y: rng.Intn(GridSize)}
			cells, err := u.Footprint(origin, o)
			if err != nil {
				continue
			}
			if CanPlace(p.LayerState(u.Layer), cells) == nil {
				p.placeUnit(u, cells)
				placed = true
			}
		}
		if !placed {
			panic(fmt.Sprintf("game: failed to place %s after %d attempts", spec.ID, maxPlacementAttempts))
		}
	}
}

package game

// Player holds one side's grids and units.
type Player struct {
	Name   string
	Locked bool // setup finished
	Sea    *LayerState
	Air    *LayerState
	Units  map[UnitID]*Unit
}

// NewPlayer builds a player with empty grids and every catalog unit unplaced.
func NewPlayer(name string) *Player {
	p := &Player{
		Name:  name,
		Sea:   NewLayerState(LayerSea),
		Air:   NewLayerState(LayerAir),
		Units: make(map[UnitID]*Unit, len(catalog)),
	}
	for _, spec := range Catalog() {
		p.Units[spec.ID] = newUnit(spec)
	}
	return p
}

// LayerState returns the player's grid for layer.
func (p *Player) LayerState(layer Layer) *LayerState {
	if layer == LayerAir {
		return p.Air
	}
	return p.Sea
}

// Unit returns the player's unit with the given ID, or nil.
func (p *Player) Unit(id UnitID) *Unit { return p.Units[id] }

// UnitAt returns the unit occupying index on layer, or nil.
func (p *Player) UnitAt(layer Layer, index int) *Unit {
	id := p.LayerState(layer).Owner(index)
	if id == "" {
		return nil
	}
	return p.Units[id]
}

// UnitsOf returns the player's units of one kind in catalog order.
func (p *Player) UnitsOf(kind UnitKind) []*Unit {
	var out []*Unit
	for _, spec := range catalog {
		if spec.Kind == kind {
			out = append(out, p.Units[spec.ID])
		}
	}
	return out
}

// IsComplete reports whether every catalog unit has been placed.
func (p *Player) IsComplete() bool {
	for _, u := range p.Units {
		if !u.Placed {
			return false
		}
	}
	return true
}

// NextUnplaced returns the first unplaced unit on layer in catalog order, or nil.
func (p *Player) NextUnplaced(layer Layer) *Unit {
	for _, spec := range catalog {
		if u := p.Units[spec.ID]; spec.Layer == layer && !u.Placed {
			return u
		}
	}
	return nil
}

// RemainingShipCount counts placed ships that still have an unhit cell.
// Sunk status is derived from the Sea layer every time.
func (p *Player) RemainingShipCount() int {
	n := 0
	for _, u := range p.UnitsOf(UnitShip) {
		if u.Placed && !u.AllHit(p.Sea) {
			n++
		}
	}
	return n
}

// ActivePlaneCount counts placed planes that are not disabled.
func (p *Player) ActivePlaneCount() int {
	n := 0
	for _, u := range p.UnitsOf(UnitPlane) {
		if u.Placed && u.DisabledTurns <= 0 {
			n++
		}
	}
	return n
}

// View snapshots one of the player's layers.
func (p *Player) View(layer Layer) LayerView {
	ls := p.LayerState(layer)
	v := LayerView{Layer: layer}
	for i, c := range ls.Cells {
		cv := CellView{
			Owner: c.Owner,
			Hit:   c.Flags&CellHit != 0,
			Miss:  c.Flags&CellMiss != 0,
			Fog:   c.Flags&CellFog != 0,
		}
		if u := p.Units[c.Owner]; u != nil {
			cv.Kind = u.Kind
		}
		v.Cells[i] = cv
	}
	return v
}

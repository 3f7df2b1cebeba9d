package game

// Layer identifies one of a player's two grids.
type Layer uint8

const (
	LayerSea Layer = iota // ships
	LayerAir              // planes
	layerCount            // sentinel
)

func (l Layer) String() string {
	switch l {
	case LayerSea:
		return "sea"
	case LayerAir:
		return "air"
	default:
		return "unknown"
	}
}

// Valid reports whether l names a real layer.
func (l Layer) Valid() bool { return l < layerCount }

// CellFlags is a bitfield of strike and scan marks on a cell.
type CellFlags uint8

const (
	CellHit  CellFlags = 1 << iota // struck and occupied
	CellMiss                       // struck and empty
	CellFog                        // obscured until a recon clears it
)

// Cell is one grid square of a LayerState.
type Cell struct {
	Owner UnitID    // "" when empty
	Flags CellFlags // hit / miss / fog
}

// LayerState is the authoritative per-cell state of one player's layer.
// A cell never carries both CellHit and CellMiss, and never CellFog with CellHit.
type LayerState struct {
	Layer Layer
	Cells [CellCount]Cell // row-major: index = y*GridSize + x
}

// NewLayerState creates an empty, unmarked layer.
func NewLayerState(layer Layer) *LayerState {
	return &LayerState{Layer: layer}
}

// Owner returns the unit occupying index, or "" if empty or out of range.
func (ls *LayerState) Owner(index int) UnitID {
	if !ValidIndex(index) {
		return ""
	}
	return ls.Cells[index].Owner
}

// Occupied reports whether any unit sits on index.
func (ls *LayerState) Occupied(index int) bool { return ls.Owner(index) != "" }

func (ls *LayerState) has(index int, f CellFlags) bool {
	return ValidIndex(index) && ls.Cells[index].Flags&f != 0
}

// IsHit reports whether index carries a hit mark.
func (ls *LayerState) IsHit(index int) bool { return ls.has(index, CellHit) }

// IsMiss reports whether index carries a miss mark.
func (ls *LayerState) IsMiss(index int) bool { return ls.has(index, CellMiss) }

// HasFog reports whether index is fogged.
func (ls *LayerState) HasFog(index int) bool { return ls.has(index, CellFog) }

// Targeted reports whether index has already been struck.
func (ls *LayerState) Targeted(index int) bool { return ls.has(index, CellHit|CellMiss) }

func (ls *LayerState) occupy(index int, id UnitID) { ls.Cells[index].Owner = id }

// vacate clears index only if id still owns it.
func (ls *LayerState) vacate(index int, id UnitID) {
	if ls.Cells[index].Owner == id {
		ls.Cells[index].Owner = ""
	}
}

func (ls *LayerState) markHit(index int) {
	ls.Cells[index].Flags |= CellHit
	ls.Cells[index].Flags &^= CellFog
}

func (ls *LayerState) markMiss(index int) {
	ls.Cells[index].Flags |= CellMiss | CellFog
}

func (ls *LayerState) clearHit(index int) { ls.Cells[index].Flags &^= CellHit }

// clearFog removes fog from index and reports whether there was any.
func (ls *LayerState) clearFog(index int) bool {
	if ls.Cells[index].Flags&CellFog == 0 {
		return false
	}
	ls.Cells[index].Flags &^= CellFog
	return true
}

// CountFlag returns how many cells carry f.
func (ls *LayerState) CountFlag(f CellFlags) int {
	n := 0
	for _, c := range ls.Cells {
		if c.Flags&f != 0 {
			n++
		}
	}
	return n
}

// CountOccupied returns how many cells are owned by a unit.
func (ls *LayerState) CountOccupied() int {
	n := 0
	for _, c := range ls.Cells {
		if c.Owner != "" {
			n++
		}
	}
	return n
}

// CellView is the read-only presentation of one cell.
type CellView struct {
	Owner UnitID
	Kind  UnitKind
	Hit   bool
	Miss  bool
	Fog   bool
}

// Occupied reports whether the viewer can see a unit on the cell.
func (c CellView) Occupied() bool { return c.Owner != "" }

// LayerView is a snapshot of a LayerState. Mutating it has no effect on the game.
type LayerView struct {
	Layer Layer
	Cells [CellCount]CellView
}

// Masked hides the owners of cells that have not been hit, which is what an
// attacker is allowed to see of the defender's grid.
func (v LayerView) Masked() LayerView {
	for i := range v.Cells {
		if !v.Cells[i].Hit {
			v.Cells[i].Owner = ""
			v.Cells[i].Kind = UnitKindNone
		}
	}
	return v
}

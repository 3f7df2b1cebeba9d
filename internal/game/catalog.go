package game

import (
	"fmt"
	"slices"
)

// UnitKind distinguishes fleet units from air units.
type UnitKind uint8

const (
	UnitKindNone UnitKind = iota
	UnitShip
	UnitPlane
)

func (k UnitKind) String() string {
	switch k {
	case UnitShip:
		return "ship"
	case UnitPlane:
		return "plane"
	default:
		return "none"
	}
}

// UnitID names a catalog entry. Each player owns exactly one unit per ID.
type UnitID string

const (
	UnitCarrier    UnitID = "carrier"
	UnitBattleship UnitID = "battleship"
	UnitSubmarine  UnitID = "submarine"
	UnitDestroyer  UnitID = "destroyer"
	UnitPatrol     UnitID = "patrol"
	UnitFighter    UnitID = "fighter"
	UnitBomber     UnitID = "bomber"
	UnitRecon      UnitID = "recon"
)

// Offset is a footprint cell relative to the unit's origin.
type Offset struct {
	DX int
	DY int
}

// Rotate90 turns an offset by 90°: (dx, dy) → (dy, −dx).
// Only the unrotated and 90° poses exist; 180° and 270° are not offered.
func Rotate90(o Offset) Offset {
	return Offset{DX: o.DY, DY: -o.DX}
}

// Orientation is the placement pose. For ships it is the axis of the hull;
// for planes Vertical means the shape is rotated by 90°.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// UnitSpec is an immutable catalog entry.
type UnitSpec struct {
	ID    UnitID
	Name  string
	Kind  UnitKind
	Layer Layer
	Shape []Offset // ships: a straight line from (0,0); planes: a polyomino
}

// Size returns the number of cells the unit covers.
func (s UnitSpec) Size() int { return len(s.Shape) }

func line(n int) []Offset {
	out := make([]Offset, n)
	for i := range out {
		out[i] = Offset{DX: i}
	}
	return out
}

var catalog = []UnitSpec{
	{ID: UnitCarrier, Name: "Carrier", Kind: UnitShip, Layer: LayerSea, Shape: line(5)},
	{ID: UnitBattleship, Name: "Battleship", Kind: UnitShip, Layer: LayerSea, Shape: line(4)},
	{ID: UnitSubmarine, Name: "Submarine", Kind: UnitShip, Layer: LayerSea, Shape: line(3)},
	{ID: UnitDestroyer, Name: "Destroyer", Kind: UnitShip, Layer: LayerSea, Shape: line(3)},
	{ID: UnitPatrol, Name: "Patrol Boat", Kind: UnitShip, Layer: LayerSea, Shape: line(2)},
	{ID: UnitFighter, Name: "Fighter Jet", Kind: UnitPlane, Layer: LayerAir, Shape: []Offset{{0, 0}, {1, 0}, {0, 1}}},
	{ID: UnitBomber, Name: "Bomber", Kind: UnitPlane, Layer: LayerAir, Shape: line(4)},
	{ID: UnitRecon, Name: "Recon Plane", Kind: UnitPlane, Layer: LayerAir, Shape: line(2)},
}

// Catalog returns the fixed unit list in placement order: ships, then planes.
func Catalog() []UnitSpec {
	out := make([]UnitSpec, len(catalog))
	for i, s := range catalog {
		s.Shape = slices.Clone(s.Shape)
		out[i] = s
	}
	return out
}

// LookupSpec finds a catalog entry by ID.
func LookupSpec(id UnitID) (UnitSpec, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return UnitSpec{}, false
}

// ComputeLinearCells lays a straight hull of size cells from origin.
func ComputeLinearCells(origin Coord, size int, o Orientation) ([]int, error) {
	cells := make([]int, 0, size)
	for k := 0; k < size; k++ {
		x, y := origin.X, origin.Y
		if o == Horizontal {
			x += k
		} else {
			y += k
		}
		if !InBounds(x, y) {
			return nil, fmt.Errorf("%w: %d-cell hull at (%d,%d) %s", ErrOutOfBounds, size, origin.X, origin.Y, o)
		}
		cells = append(cells, ToIndex(x, y))
	}
	return cells, nil
}

// ComputeShapeCells offsets shape by origin, optionally rotated by 90° first.
func ComputeShapeCells(origin Coord, shape []Offset, rotated90 bool) ([]int, error) {
	cells := make([]int, 0, len(shape))
	for _, off := range shape {
		if rotated90 {
			off = Rotate90(off)
		}
		x, y := origin.X+off.DX, origin.Y+off.DY
		if !InBounds(x, y) {
			return nil, fmt.Errorf("%w: shape at (%d,%d) rotated=%t", ErrOutOfBounds, origin.X, origin.Y, rotated90)
		}
		cells = append(cells, ToIndex(x, y))
	}
	return cells, nil
}

// Footprint returns the absolute cells the unit would cover at origin.
func (s UnitSpec) Footprint(origin Coord, o Orientation) ([]int, error) {
	if s.Kind == UnitShip {
		return ComputeLinearCells(origin, s.Size(), o)
	}
	return ComputeShapeCells(origin, s.Shape, o == Vertical)
}

// MatchesFootprint reports whether cells, in any order, are exactly the
// unit's footprint in some orientation.
func MatchesFootprint(s UnitSpec, cells []int) bool {
	_, ok := canonicalFootprint(s, cells)
	return ok
}

// canonicalFootprint returns cells in footprint order, origin first, if they
// form the unit's footprint around any of them.
func canonicalFootprint(s UnitSpec, cells []int) ([]int, bool) {
	if len(cells) != s.Size() {
		return nil, false
	}
	got := slices.Clone(cells)
	slices.Sort(got)
	for _, idx := range got {
		if !ValidIndex(idx) {
			return nil, false
		}
	}
	for _, idx := range got {
		for _, o := range []Orientation{Horizontal, Vertical} {
			want, err := s.Footprint(ToCoord(idx), o)
			if err != nil {
				continue
			}
			sorted := slices.Clone(want)
			slices.Sort(sorted)
			if slices.Equal(sorted, got) {
				return want, true
			}
		}
	}
	return nil, false
}

// CanPlace succeeds iff every cell is on the grid and unoccupied.
func CanPlace(ls *LayerState, cells []int) error {
	return canPlaceAs(ls, cells, "")
}

// canPlaceAs is CanPlace treating cells owned by self as free, so a placed
// unit can be moved onto part of its own old position.
func canPlaceAs(ls *LayerState, cells []int, self UnitID) error {
	for _, idx := range cells {
		if !ValidIndex(idx) {
			return fmt.Errorf("%w: index %d", ErrOutOfBounds, idx)
		}
	}
	for _, idx := range cells {
		if owner := ls.Owner(idx); owner != "" && owner != self {
			return fmt.Errorf("%w: %s holds %s", ErrOverlap, owner, CellName(idx))
		}
	}
	return nil
}

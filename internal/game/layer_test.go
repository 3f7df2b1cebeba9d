package game

import "testing"

func TestLayerState_MarksKeepInvariants(t *testing.T) {
	ls := NewLayerState(LayerAir)
	ls.occupy(5, UnitRecon)

	ls.markMiss(4)
	if !ls.IsMiss(4) || !ls.HasFog(4) || ls.IsHit(4) {
		t.Fatalf("miss flags=%03b", ls.Cells[4].Flags)
	}
	ls.markHit(5)
	if !ls.IsHit(5) || ls.HasFog(5) || ls.IsMiss(5) {
		t.Fatalf("hit flags=%03b", ls.Cells[5].Flags)
	}
	if !ls.Targeted(4) || !ls.Targeted(5) || ls.Targeted(6) {
		t.Fatal("Targeted wrong")
	}

	if !ls.clearFog(4) {
		t.Fatal("clearFog should report removed fog")
	}
	if ls.clearFog(4) {
		t.Fatal("second clearFog should report nothing")
	}
	if !ls.IsMiss(4) {
		t.Fatal("clearing fog must keep the miss")
	}

	ls.clearHit(5)
	if ls.Targeted(5) || !ls.Occupied(5) {
		t.Fatal("clearHit should leave an untargeted occupied cell")
	}
}

func TestLayerState_VacateOnlyOwnCells(t *testing.T) {
	ls := NewLayerState(LayerSea)
	ls.occupy(10, UnitPatrol)
	ls.vacate(10, UnitCarrier)
	if ls.Owner(10) != UnitPatrol {
		t.Fatal("vacate removed another unit's cell")
	}
	ls.vacate(10, UnitPatrol)
	if ls.Occupied(10) {
		t.Fatal("vacate should clear own cell")
	}
	if ls.Owner(-1) != "" || ls.IsHit(CellCount) {
		t.Fatal("out of range reads should be empty")
	}
}

func TestLayerState_Counts(t *testing.T) {
	ls := NewLayerState(LayerSea)
	for _, idx := range []int{1, 2, 3} {
		ls.occupy(idx, UnitSubmarine)
	}
	ls.markHit(2)
	ls.markMiss(50)
	ls.markMiss(51)
	if ls.CountOccupied() != 3 {
		t.Fatalf("occupied=%d", ls.CountOccupied())
	}
	if ls.CountFlag(CellHit) != 1 || ls.CountFlag(CellMiss) != 2 || ls.CountFlag(CellFog) != 2 {
		t.Fatalf("hit=%d miss=%d fog=%d", ls.CountFlag(CellHit), ls.CountFlag(CellMiss), ls.CountFlag(CellFog))
	}
}

func TestLayerView_IsACopy(t *testing.T) {
	p := NewPlayer("x")
	if _, err := p.placeAt(p.Unit(UnitPatrol), Coord{0, 0}, Horizontal); err != nil {
		t.Fatal(err)
	}
	v := p.View(LayerSea)
	v.Cells[0].Owner = ""
	v.Cells[0].Hit = true
	if p.Sea.Owner(0) != UnitPatrol || p.Sea.IsHit(0) {
		t.Fatal("mutating a view changed the layer")
	}
	if p.View(LayerSea).Cells[1].Kind != UnitShip {
		t.Fatal("view should carry the unit kind")
	}
}
